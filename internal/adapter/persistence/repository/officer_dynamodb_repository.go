package repository

import (
	"context"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOfficersTableName = "officers"

type officerItem struct {
	ID            string        `dynamodbav:"id"`
	UserID        string        `dynamodbav:"userId"`
	Register      string        `dynamodbav:"register,omitempty"`
	Phone         string        `dynamodbav:"phone,omitempty"`
	OfficerNumber string        `dynamodbav:"officerNumber"`
	OfficerType   string        `dynamodbav:"officerType"`
	OfficerLevel  string        `dynamodbav:"officerLevel,omitempty"`
	CreatedBy     createdByItem `dynamodbav:"createdBy"`
	CreatedAt     string        `dynamodbav:"created_at"`
	UpdatedAt     string        `dynamodbav:"updated_at"`
}

// OfficerDynamoRepository persists staff records in DynamoDB. Phone and
// register uniqueness is enforced through the claims table, not here.
//
// Table requirements:
//   - PK: id (string)
//   - GSI userId-index: PK userId

type OfficerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOfficerRepository = (*OfficerDynamoRepository)(nil)

func NewOfficerDynamoRepository(ddb *dynamodb.Client) *OfficerDynamoRepository {
	return &OfficerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFICERS_TABLE", defaultOfficersTableName),
	}
}

func (r *OfficerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Officer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Officer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Officer{}, nil
	}

	var it officerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Officer{}, err
	}
	return fromOfficerItem(it), nil
}

func (r *OfficerDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Officer, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "userId-index", "userId", userID)
	if err != nil {
		return entities.Officer{}, err
	}
	if len(raw) == 0 {
		return entities.Officer{}, nil
	}

	var it officerItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Officer{}, err
	}
	return fromOfficerItem(it), nil
}

func (r *OfficerDynamoRepository) ListAll(ctx context.Context) ([]entities.Officer, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Officer, 0, len(raw))
	for _, item := range raw {
		var it officerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromOfficerItem(it))
	}
	return out, nil
}

func (r *OfficerDynamoRepository) InsertTx(o entities.Officer) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toOfficerItem(o))
}

func toOfficerItem(o entities.Officer) officerItem {
	return officerItem{
		ID:            o.ID,
		UserID:        o.UserID,
		Register:      o.Register,
		Phone:         o.Phone,
		OfficerNumber: o.OfficerNumber,
		OfficerType:   string(o.OfficerType),
		OfficerLevel:  string(o.OfficerLevel),
		CreatedBy:     toCreatedByItem(o.CreatedBy),
		CreatedAt:     fmtTime(o.CreatedAt),
		UpdatedAt:     fmtTime(o.UpdatedAt),
	}
}

func fromOfficerItem(it officerItem) entities.Officer {
	return entities.Officer{
		ID:            it.ID,
		UserID:        it.UserID,
		Register:      it.Register,
		Phone:         it.Phone,
		OfficerNumber: it.OfficerNumber,
		OfficerType:   entities.OfficerType(it.OfficerType),
		OfficerLevel:  entities.OfficerLevel(it.OfficerLevel),
		CreatedBy:     fromCreatedByItem(it.CreatedBy),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
