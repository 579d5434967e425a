package entities

import "time"

// OrderStatus is the execution state of a service order. The only transition,
// Programado -> Realizado, happens when a maintenance history entry
// referencing the order is recorded — never through a direct status edit.
type OrderStatus string

const (
	OrderStatusProgramado OrderStatus = "Programado"
	OrderStatusRealizado  OrderStatus = "Realizado"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusProgramado || s == OrderStatusRealizado
}

// Order is a scheduled execution of approved work against a request.
// RequestID is the owning reference to the parent request.
type Order struct {
	ID                  string
	RequestID           string
	OfficerID           string
	OrderStatus         OrderStatus
	ServiceIDs          []string
	OrderNumber         string
	Date                string
	Time                string
	Feedback            string
	BudgetID            string
	EnvironmentID       string
	CreatedBy           CreatedBy
	ModificationHistory []ModificationEntry
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
}

func (o Order) TrackedFields() map[string]any {
	return map[string]any{
		"orderStatus": string(o.OrderStatus),
		"officerId":   o.OfficerID,
		"date":        o.Date,
		"time":        o.Time,
		"feedback":    o.Feedback,
	}
}

// ScheduledFeedback renders the request feedback set when an order is created.
func (o Order) ScheduledFeedback() string {
	return "Ordem de Serviço " + o.OrderNumber + " programada para " + o.Date + " as " + o.Time
}
