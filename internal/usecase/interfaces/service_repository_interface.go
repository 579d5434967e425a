package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for the service catalog.

type IServiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	ListAll(ctx context.Context) ([]entities.Service, error)
	InsertTx(s entities.Service) (TxItem, error)
}
