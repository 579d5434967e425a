package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID                    string    `json:"id"`
	ClientID              string    `json:"client_id"`
	AddressID             string    `json:"address_id"`
	EnvironmentID         string    `json:"environment_id,omitempty"`
	EnvID                 string    `json:"env_id,omitempty"`
	RequestType           string    `json:"request_type"`
	RequestStatus         string    `json:"request_status"`
	Services              []string  `json:"services,omitempty"`
	MaintenanceProblem    string    `json:"maintenance_problem,omitempty"`
	InstallationEquipment string    `json:"installation_equipment,omitempty"`
	RequestNumber         string    `json:"request_number"`
	RequestDate           string    `json:"request_date"`
	DateVisit             string    `json:"date_visit,omitempty"`
	TimeVisit             string    `json:"time_visit,omitempty"`
	Feedback              string    `json:"feedback,omitempty"`
	OfficerID             string    `json:"officer_id,omitempty"`
	BudgetID              string    `json:"budget_id,omitempty"`
	OrderID               string    `json:"order_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromRequest(r entities.Request) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:                    r.ID,
		ClientID:              r.ClientID,
		AddressID:             r.AddressID,
		EnvironmentID:         r.EnvironmentID,
		EnvID:                 r.EnvID,
		RequestType:           string(r.RequestType),
		RequestStatus:         string(r.RequestStatus),
		Services:              r.ServiceIDs,
		MaintenanceProblem:    r.MaintenanceProblem,
		InstallationEquipment: r.InstallationEquipment,
		RequestNumber:         r.RequestNumber,
		RequestDate:           r.RequestDate,
		DateVisit:             r.DateVisit,
		TimeVisit:             r.TimeVisit,
		Feedback:              r.Feedback,
		OfficerID:             r.OfficerID,
		BudgetID:              r.BudgetID,
		OrderID:               r.OrderID,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func FromRequests(requests []entities.Request) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRequest(r))
	}
	return out
}
