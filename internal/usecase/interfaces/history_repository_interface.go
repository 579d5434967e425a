package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IHistoryRepository abstracts DynamoDB persistence for maintenance history.
// Entries are append-only: there is no update or delete path.

type IHistoryRepository interface {
	GetByID(ctx context.Context, id string) (entities.HistoryMaintenance, error)
	ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.HistoryMaintenance, error)
	InsertTx(h entities.HistoryMaintenance) (TxItem, error)
}
