package response

import (
	"github.com/google/uuid"

	"cuponera/internal/usecase/queries"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	*queries.AccountView
}
