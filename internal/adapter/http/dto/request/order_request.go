package request

type CreateOrderRequest struct {
	RequestID string   `json:"request_id" binding:"required"`
	OfficerID string   `json:"officer_id" binding:"required"`
	Services  []string `json:"services" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time" binding:"required"`
}

// UpdateOrderRequest reschedules an order. Status "Realizado" is never
// accepted here; completion only happens through a maintenance history entry.
type UpdateOrderRequest struct {
	OrderStatus string `json:"order_status"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Feedback    string `json:"feedback"`
}
