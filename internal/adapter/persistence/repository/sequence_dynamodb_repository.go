package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository hands out per-prefix, per-month codes through an
// atomic counter item (UpdateItem ADD), so concurrent allocations never
// observe the same value.
//
// Table requirements:
//   - PK: id (string) — prefix plus yyyyMM, e.g. "REQ-202405"
//
// Numbers are allocated before the caller's transaction commits; an aborted
// transaction burns its number. Gaps are expected and harmless.

type sequenceCounterAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type SequenceDynamoRepository struct {
	ddb       sequenceCounterAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISequenceGenerator = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
		now:       time.Now,
	}
}

func (r *SequenceDynamoRepository) Allocate(ctx context.Context, prefix string) (string, error) {
	month := r.now().UTC().Format("200601")

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: prefix + month},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return "", err
	}

	attr, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return "", fmt.Errorf("sequence %s%s: counter attribute missing", prefix, month)
	}
	n, err := strconv.ParseInt(attr.Value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("sequence %s%s: %w", prefix, month, err)
	}
	return fmt.Sprintf("%s%s-%05d", prefix, month, n), nil
}
