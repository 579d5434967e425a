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

const defaultClientsTableName = "clients"

type clientItem struct {
	ID                  string             `dynamodbav:"id"`
	UserID              string             `dynamodbav:"userId"`
	Name                string             `dynamodbav:"name"`
	Phone               string             `dynamodbav:"phone"`
	ClientType          string             `dynamodbav:"clientType"`
	AlternativePhone    string             `dynamodbav:"alternativePhone,omitempty"`
	Email               string             `dynamodbav:"email,omitempty"`
	Register            string             `dynamodbav:"register,omitempty"`
	ClientNumber        string             `dynamodbav:"clientNumber"`
	CreatedBy           createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
	Version             int64              `dynamodbav:"version"`
}

// ClientDynamoRepository persists clients in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI userId-index: PK userId

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Client, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "userId-index", "userId", userID)
	if err != nil {
		return entities.Client{}, err
	}
	if len(raw) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) InsertTx(c entities.Client) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toClientItem(c))
}

func (r *ClientDynamoRepository) SaveTx(c entities.Client) (interfaces.TxItem, error) {
	it := toClientItem(c)
	it.Version = c.Version + 1
	return saveTx(r.tableName, it, c.Version)
}

func (r *ClientDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:                  c.ID,
		UserID:              c.UserID,
		Name:                c.Name,
		Phone:               c.Phone,
		ClientType:          string(c.ClientType),
		AlternativePhone:    c.AlternativePhone,
		Email:               c.Email,
		Register:            c.Register,
		ClientNumber:        c.ClientNumber,
		CreatedBy:           toCreatedByItem(c.CreatedBy),
		ModificationHistory: toModificationItems(c.ModificationHistory),
		CreatedAt:           fmtTime(c.CreatedAt),
		UpdatedAt:           fmtTime(c.UpdatedAt),
		Version:             c.Version,
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:                  it.ID,
		UserID:              it.UserID,
		Name:                it.Name,
		Phone:               it.Phone,
		ClientType:          entities.ClientType(it.ClientType),
		AlternativePhone:    it.AlternativePhone,
		Email:               it.Email,
		Register:            it.Register,
		ClientNumber:        it.ClientNumber,
		CreatedBy:           fromCreatedByItem(it.CreatedBy),
		ModificationHistory: fromModificationItems(it.ModificationHistory),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
