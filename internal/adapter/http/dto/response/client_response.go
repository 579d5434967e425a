package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type ClientResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id,omitempty"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	ClientType       string    `json:"client_type"`
	AlternativePhone string    `json:"alternative_phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Register         string    `json:"register,omitempty"`
	ClientNumber     string    `json:"client_number"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		UserID:           c.UserID,
		Name:             c.Name,
		Phone:            c.Phone,
		ClientType:       string(c.ClientType),
		AlternativePhone: c.AlternativePhone,
		Email:            c.Email,
		Register:         c.Register,
		ClientNumber:     c.ClientNumber,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
