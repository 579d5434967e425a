package entities

import "time"

// MaintenanceItem is one executed service inside a history record.
type MaintenanceItem struct {
	Service string `json:"service"`
	Obs     string `json:"obs,omitempty"`
}

// HistoryMaintenance is the immutable closing record of work performed on an
// environment. It optionally references the request and/or order it closes.
// There is no update path: records are append-only.
type HistoryMaintenance struct {
	ID            string
	EnvironmentID string
	RequestID     string
	OrderID       string
	Maintenance   []MaintenanceItem
	Date          time.Time
	CreatedBy     CreatedBy
	CreatedAt     time.Time
}
