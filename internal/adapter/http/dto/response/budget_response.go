package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type BudgetResponse struct {
	ID                     string    `json:"id"`
	RequestID              string    `json:"request_id"`
	Services               []string  `json:"services,omitempty"`
	ServiceType            string    `json:"service_type,omitempty"`
	ServicePrice           float64   `json:"service_price"`
	Equipment              string    `json:"equipment,omitempty"`
	EquipmentPrice         float64   `json:"equipment_price"`
	BudgetNumber           string    `json:"budget_number"`
	BudgetRebate           float64   `json:"budget_rebate"`
	BudgetPrice            float64   `json:"budget_price"`
	BudgetStatus           string    `json:"budget_status"`
	Feedback               string    `json:"feedback,omitempty"`
	NameClient             string    `json:"name_client,omitempty"`
	CnpjCpfClient          string    `json:"cnpj_cpf_client,omitempty"`
	PhoneClient            string    `json:"phone_client,omitempty"`
	PhoneAlternativeClient string    `json:"phone_alternative_client,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:                     b.ID,
		RequestID:              b.RequestID,
		Services:               b.ServiceIDs,
		ServiceType:            b.ServiceType,
		ServicePrice:           b.ServicePrice,
		Equipment:              b.Equipment,
		EquipmentPrice:         b.EquipmentPrice,
		BudgetNumber:           b.BudgetNumber,
		BudgetRebate:           b.BudgetRebate,
		BudgetPrice:            b.BudgetPrice,
		BudgetStatus:           string(b.BudgetStatus),
		Feedback:               b.Feedback,
		NameClient:             b.NameClient,
		CnpjCpfClient:          b.CnpjCpfClient,
		PhoneClient:            b.PhoneClient,
		PhoneAlternativeClient: b.PhoneAlternativeClient,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}
