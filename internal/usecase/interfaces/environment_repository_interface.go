package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IEnvironmentRepository abstracts DynamoDB persistence for environments
// (the climatized rooms and their installed equipment).

type IEnvironmentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Environment, error)
	ListByAddressID(ctx context.Context, addressID string) ([]entities.Environment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Environment, error)
	InsertTx(e entities.Environment) (TxItem, error)
	SaveTx(e entities.Environment) (TxItem, error)
	DeleteTx(id string) TxItem
}
