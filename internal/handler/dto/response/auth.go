package response

import (
	"github.com/google/uuid"

	"stamppass/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type CurrentUserResponse struct {
	ID      uuid.UUID  `json:"id"`
	Email   string     `json:"email"`
	Role    string     `json:"role"`
	StoreID *uuid.UUID `json:"storeId,omitempty"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:      view.ID,
		Email:   view.Email,
		Role:    view.Role,
		StoreID: view.StoreID,
	}
}
