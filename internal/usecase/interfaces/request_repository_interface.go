package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IRequestRepository abstracts DynamoDB persistence for service requests.
//
// Reads go straight to the table; every write is returned as a TxItem so the
// caller can compose it with sibling writes into one atomic unit. SaveTx
// carries an optimistic version check and fails the whole unit on a stale
// snapshot.

type IRequestRepository interface {
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Request, error)
	ListByAddressID(ctx context.Context, addressID string) ([]entities.Request, error)
	ListOpenByAddressID(ctx context.Context, addressID string) ([]entities.Request, error)
	InsertTx(r entities.Request) (TxItem, error)
	SaveTx(r entities.Request) (TxItem, error)
	DeleteTx(id string) TxItem
}
