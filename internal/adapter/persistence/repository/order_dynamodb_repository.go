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

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID                  string             `dynamodbav:"id"`
	RequestID           string             `dynamodbav:"requestId"`
	OfficerID           string             `dynamodbav:"officerId"`
	OrderStatus         string             `dynamodbav:"orderStatus"`
	ServiceIDs          []string           `dynamodbav:"services,omitempty"`
	OrderNumber         string             `dynamodbav:"orderNumber"`
	Date                string             `dynamodbav:"date"`
	Time                string             `dynamodbav:"time"`
	Feedback            string             `dynamodbav:"feedback,omitempty"`
	BudgetID            string             `dynamodbav:"budgetId,omitempty"`
	EnvironmentID       string             `dynamodbav:"environmentId,omitempty"`
	CreatedBy           createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
	Version             int64              `dynamodbav:"version"`
}

// OrderDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI requestId-index: PK requestId
//   - GSI officerId-index: PK officerId

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Order, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "requestId-index", "requestId", requestID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(raw) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByOfficerID(ctx context.Context, officerID string) ([]entities.Order, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "officerId-index", "officerId", officerID)
	if err != nil {
		return nil, err
	}
	var items []orderItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func (r *OrderDynamoRepository) InsertTx(o entities.Order) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toOrderItem(o))
}

func (r *OrderDynamoRepository) SaveTx(o entities.Order) (interfaces.TxItem, error) {
	it := toOrderItem(o)
	it.Version = o.Version + 1
	return saveTx(r.tableName, it, o.Version)
}

func (r *OrderDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                  o.ID,
		RequestID:           o.RequestID,
		OfficerID:           o.OfficerID,
		OrderStatus:         string(o.OrderStatus),
		ServiceIDs:          o.ServiceIDs,
		OrderNumber:         o.OrderNumber,
		Date:                o.Date,
		Time:                o.Time,
		Feedback:            o.Feedback,
		BudgetID:            o.BudgetID,
		EnvironmentID:       o.EnvironmentID,
		CreatedBy:           toCreatedByItem(o.CreatedBy),
		ModificationHistory: toModificationItems(o.ModificationHistory),
		CreatedAt:           fmtTime(o.CreatedAt),
		UpdatedAt:           fmtTime(o.UpdatedAt),
		Version:             o.Version,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                  it.ID,
		RequestID:           it.RequestID,
		OfficerID:           it.OfficerID,
		OrderStatus:         entities.OrderStatus(it.OrderStatus),
		ServiceIDs:          it.ServiceIDs,
		OrderNumber:         it.OrderNumber,
		Date:                it.Date,
		Time:                it.Time,
		Feedback:            it.Feedback,
		BudgetID:            it.BudgetID,
		EnvironmentID:       it.EnvironmentID,
		CreatedBy:           fromCreatedByItem(it.CreatedBy),
		ModificationHistory: fromModificationItems(it.ModificationHistory),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
