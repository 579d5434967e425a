package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id"`
	OfficerID     string    `json:"officer_id"`
	OrderStatus   string    `json:"order_status"`
	Services      []string  `json:"services"`
	OrderNumber   string    `json:"order_number"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Feedback      string    `json:"feedback,omitempty"`
	BudgetID      string    `json:"budget_id"`
	EnvironmentID string    `json:"environment_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		RequestID:     o.RequestID,
		OfficerID:     o.OfficerID,
		OrderStatus:   string(o.OrderStatus),
		Services:      o.ServiceIDs,
		OrderNumber:   o.OrderNumber,
		Date:          o.Date,
		Time:          o.Time,
		Feedback:      o.Feedback,
		BudgetID:      o.BudgetID,
		EnvironmentID: o.EnvironmentID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
