package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type OfficerResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Register      string    `json:"register"`
	Phone         string    `json:"phone"`
	OfficerNumber string    `json:"officer_number"`
	OfficerType   string    `json:"officer_type"`
	OfficerLevel  string    `json:"officer_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOfficer(o entities.Officer) OfficerResponse {
	return OfficerResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Register:      o.Register,
		Phone:         o.Phone,
		OfficerNumber: o.OfficerNumber,
		OfficerType:   string(o.OfficerType),
		OfficerLevel:  string(o.OfficerLevel),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOfficers(officers []entities.Officer) []OfficerResponse {
	out := make([]OfficerResponse, 0, len(officers))
	for _, o := range officers {
		out = append(out, FromOfficer(o))
	}
	return out
}
