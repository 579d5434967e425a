package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type ServiceResponse struct {
	ID                 string    `json:"id"`
	ServiceType        string    `json:"service_type"`
	ServiceName        string    `json:"service_name"`
	ServiceDescription string    `json:"service_description,omitempty"`
	ServicePrice       float64   `json:"service_price"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID,
		ServiceType:        string(s.ServiceType),
		ServiceName:        s.ServiceName,
		ServiceDescription: s.ServiceDescription,
		ServicePrice:       s.ServicePrice,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}
