package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTransactionWriter commits a workflow step's writes as one
// TransactWriteItems call. Condition failures and write races surface as
// TransactionCanceledException; those are mapped to ErrTransactionConflict so
// callers can answer with a conflict instead of a server error.

type DynamoTransactionWriter struct {
	ddb *dynamodb.Client
}

var _ interfaces.ITransactionWriter = (*DynamoTransactionWriter)(nil)

func NewDynamoTransactionWriter(ddb *dynamodb.Client) *DynamoTransactionWriter {
	return &DynamoTransactionWriter{ddb: ddb}
}

func (w *DynamoTransactionWriter) Execute(ctx context.Context, items ...interfaces.TxItem) error {
	if len(items) == 0 {
		return nil
	}

	_, err := w.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err == nil {
		return nil
	}

	var canceled *types.TransactionCanceledException
	if errors.As(err, &canceled) {
		for _, reason := range canceled.CancellationReasons {
			if reason.Code == nil {
				continue
			}
			switch *reason.Code {
			case "ConditionalCheckFailed", "TransactionConflict":
				log.Printf("[repository][tx] cancelled: %s", *reason.Code)
				return fmt.Errorf("%w: %s", interfaces.ErrTransactionConflict, *reason.Code)
			}
		}
	}
	return err
}
