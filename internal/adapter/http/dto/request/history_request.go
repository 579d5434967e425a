package request

type MaintenanceItemRequest struct {
	Service string `json:"service" binding:"required"`
	Obs     string `json:"obs"`
}

// RegisterHistoryRequest records executed maintenance on an environment.
// RequestID and OrderID are optional; when present they are finalized in the
// same commit as the history record.
type RegisterHistoryRequest struct {
	EnvironmentID string                   `json:"environment_id" binding:"required"`
	RequestID     string                   `json:"request_id"`
	OrderID       string                   `json:"order_id"`
	Maintenance   []MaintenanceItemRequest `json:"maintenance" binding:"required"`
	Date          string                   `json:"date"`
}
