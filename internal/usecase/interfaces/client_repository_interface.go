package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for clients.

type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByUserID(ctx context.Context, userID string) (entities.Client, error)
	InsertTx(c entities.Client) (TxItem, error)
	SaveTx(c entities.Client) (TxItem, error)
	DeleteTx(id string) TxItem
}
