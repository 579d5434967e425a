package interfaces

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrTransactionConflict is returned when an atomic unit is cancelled by a
// condition check or by a concurrent transaction — the single-winner outcome
// of racing creations. Callers classify it as a data conflict, never retry it
// automatically.
var ErrTransactionConflict = errors.New("transaction cancelled by conflicting write")

// TxItem is a single write inside an atomic unit. Repositories build items;
// the transaction writer commits them as one.
type TxItem = types.TransactWriteItem

// ITransactionWriter executes a set of writes as a single atomic unit:
// either every item is applied or none is.
type ITransactionWriter interface {
	Execute(ctx context.Context, items ...TxItem) error
}
