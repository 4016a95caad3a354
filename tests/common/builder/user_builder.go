//go:build unit || e2e

package builder

import (
	reqdto "stamppass/internal/handler/dto/request"
	"stamppass/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Role     string
	StoreID  *uuid.UUID
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "customer@example.com",
		Role:     "customer",
		IsActive: true,
	}
}

func (b *UserBuilder) AsStaff(storeID uuid.UUID) *UserBuilder {
	b.Role = "staff"
	b.Email = "staff@example.com"
	b.StoreID = &storeID
	return b
}

func (b *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       b.ID,
		Email:    b.Email,
		Role:     b.Role,
		StoreID:  b.StoreID,
		IsActive: b.IsActive,
	}
}

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "customer@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
