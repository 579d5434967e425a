package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IAddressRepository abstracts DynamoDB persistence for service addresses.

type IAddressRepository interface {
	GetByID(ctx context.Context, id string) (entities.Address, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Address, error)
	ListByOfficerID(ctx context.Context, officerID string) ([]entities.Address, error)
	InsertTx(a entities.Address) (TxItem, error)
	SaveTx(a entities.Address) (TxItem, error)
	DeleteTx(id string) TxItem
}
