package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type AddressResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id,omitempty"`
	OfficerID   string    `json:"officer_id,omitempty"`
	AddressType string    `json:"address_type"`
	Street      string    `json:"street"`
	Number      int       `json:"number"`
	Complement  string    `json:"complement,omitempty"`
	District    string    `json:"district"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postal_code"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		OfficerID:   a.OfficerID,
		AddressType: string(a.AddressType),
		Street:      a.Street,
		Number:      a.Number,
		Complement:  a.Complement,
		District:    a.District,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Coordinates: a.Coordinates,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromAddresses(addresses []entities.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, FromAddress(a))
	}
	return out
}
