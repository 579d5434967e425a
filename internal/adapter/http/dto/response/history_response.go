package response

import (
	"time"

	"gta_clima/internal/domain/entities"
)

type MaintenanceItemResponse struct {
	Service string `json:"service"`
	Obs     string `json:"obs,omitempty"`
}

type HistoryResponse struct {
	ID            string                    `json:"id"`
	EnvironmentID string                    `json:"environment_id"`
	RequestID     string                    `json:"request_id,omitempty"`
	OrderID       string                    `json:"order_id,omitempty"`
	Maintenance   []MaintenanceItemResponse `json:"maintenance"`
	Date          time.Time                 `json:"date"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func FromHistory(h entities.HistoryMaintenance) HistoryResponse {
	items := make([]MaintenanceItemResponse, 0, len(h.Maintenance))
	for _, it := range h.Maintenance {
		items = append(items, MaintenanceItemResponse{Service: it.Service, Obs: it.Obs})
	}
	return HistoryResponse{
		ID:            h.ID,
		EnvironmentID: h.EnvironmentID,
		RequestID:     h.RequestID,
		OrderID:       h.OrderID,
		Maintenance:   items,
		Date:          h.Date,
		CreatedAt:     h.CreatedAt,
	}
}

func FromHistories(histories []entities.HistoryMaintenance) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(histories))
	for _, h := range histories {
		out = append(out, FromHistory(h))
	}
	return out
}
