package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for work orders.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Order, error)
	ListByOfficerID(ctx context.Context, officerID string) ([]entities.Order, error)
	InsertTx(o entities.Order) (TxItem, error)
	SaveTx(o entities.Order) (TxItem, error)
	DeleteTx(id string) TxItem
}
