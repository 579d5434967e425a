package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IOfficerRepository abstracts DynamoDB persistence for staff officers
// (technicians, secretaries and managers).

type IOfficerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Officer, error)
	GetByUserID(ctx context.Context, userID string) (entities.Officer, error)
	ListAll(ctx context.Context) ([]entities.Officer, error)
	InsertTx(o entities.Officer) (TxItem, error)
}
