package repository

import (
	"context"
	"time"

	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClaimsTableName = "uniqueness_claims"

// UniquenessClaimDynamoRepository backs composite uniqueness rules with claim
// items keyed by normalized scope. The claim put is conditional on the scope
// being free, so when it rides inside a transaction the whole unit loses to
// an earlier holder.
//
// Table requirements:
//   - PK: scope (string)

type UniquenessClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUniquenessClaimRepository = (*UniquenessClaimDynamoRepository)(nil)

func NewUniquenessClaimDynamoRepository(ddb *dynamodb.Client) *UniquenessClaimDynamoRepository {
	return &UniquenessClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *UniquenessClaimDynamoRepository) Exists(ctx context.Context, scope string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"scope": &types.AttributeValueMemberS{Value: scope},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *UniquenessClaimDynamoRepository) ClaimTx(scope string) interfaces.TxItem {
	return interfaces.TxItem{Put: &types.Put{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"scope":     &types.AttributeValueMemberS{Value: scope},
			"claimedAt": &types.AttributeValueMemberS{Value: fmtTime(time.Now())},
		},
		ConditionExpression: aws.String("attribute_not_exists(#scope)"),
		ExpressionAttributeNames: map[string]string{
			"#scope": "scope",
		},
	}}
}

func (r *UniquenessClaimDynamoRepository) ReleaseTx(scope string) interfaces.TxItem {
	return interfaces.TxItem{Delete: &types.Delete{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"scope": &types.AttributeValueMemberS{Value: scope},
		},
	}}
}
