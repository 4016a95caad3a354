package usecase

import (
	"github.com/google/uuid"

	"stamppass/internal/domain/user"
	"stamppass/internal/pkg/errs"
	"stamppass/internal/pkg/jwt"
)

var ErrInvalidAccessToken = errs.New("invalid access token")

// TokenValidator verifies an access token and yields the caller's identity.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidAccessToken)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrInvalidAccessToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidAccessToken)
	}
	return claims.UserID, role, nil
}
