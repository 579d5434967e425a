package interfaces

import (
	"context"

	"gta_clima/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for budgets.
//
// GetByRequestID is the authoritative budget lookup: the request's budgetId
// back-reference is a convenience field and is never trusted for existence
// checks.

type IBudgetRepository interface {
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Budget, error)
	InsertTx(b entities.Budget) (TxItem, error)
	SaveTx(b entities.Budget) (TxItem, error)
	DeleteTx(id string) TxItem
}
