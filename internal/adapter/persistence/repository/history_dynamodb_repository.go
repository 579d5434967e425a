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

const defaultHistoryTableName = "history_maintenances"

type maintenanceItem struct {
	Service string `dynamodbav:"service"`
	Obs     string `dynamodbav:"obs,omitempty"`
}

type historyItem struct {
	ID            string            `dynamodbav:"id"`
	EnvironmentID string            `dynamodbav:"environmentId"`
	RequestID     string            `dynamodbav:"requestId,omitempty"`
	OrderID       string            `dynamodbav:"orderId,omitempty"`
	Maintenance   []maintenanceItem `dynamodbav:"maintenance"`
	Date          string            `dynamodbav:"date"`
	CreatedBy     createdByItem     `dynamodbav:"createdBy"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// HistoryDynamoRepository persists maintenance history records in DynamoDB.
// Records are append-only, so the repository exposes no update or delete.
//
// Table requirements:
//   - PK: id (string)
//   - GSI environmentId-index: PK environmentId

type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.HistoryMaintenance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HistoryMaintenance{}, err
	}
	if len(out.Item) == 0 {
		return entities.HistoryMaintenance{}, nil
	}

	var it historyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HistoryMaintenance{}, err
	}
	return fromHistoryItem(it), nil
}

func (r *HistoryDynamoRepository) ListByEnvironmentID(ctx context.Context, environmentID string) ([]entities.HistoryMaintenance, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "environmentId-index", "environmentId", environmentID)
	if err != nil {
		return nil, err
	}
	var items []historyItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.HistoryMaintenance, 0, len(items))
	for _, it := range items {
		out = append(out, fromHistoryItem(it))
	}
	return out, nil
}

func (r *HistoryDynamoRepository) InsertTx(h entities.HistoryMaintenance) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toHistoryItem(h))
}

func toHistoryItem(h entities.HistoryMaintenance) historyItem {
	maintenance := make([]maintenanceItem, 0, len(h.Maintenance))
	for _, m := range h.Maintenance {
		maintenance = append(maintenance, maintenanceItem{Service: m.Service, Obs: m.Obs})
	}
	return historyItem{
		ID:            h.ID,
		EnvironmentID: h.EnvironmentID,
		RequestID:     h.RequestID,
		OrderID:       h.OrderID,
		Maintenance:   maintenance,
		Date:          fmtTime(h.Date),
		CreatedBy:     toCreatedByItem(h.CreatedBy),
		CreatedAt:     fmtTime(h.CreatedAt),
	}
}

func fromHistoryItem(it historyItem) entities.HistoryMaintenance {
	maintenance := make([]entities.MaintenanceItem, 0, len(it.Maintenance))
	for _, m := range it.Maintenance {
		maintenance = append(maintenance, entities.MaintenanceItem{Service: m.Service, Obs: m.Obs})
	}
	return entities.HistoryMaintenance{
		ID:            it.ID,
		EnvironmentID: it.EnvironmentID,
		RequestID:     it.RequestID,
		OrderID:       it.OrderID,
		Maintenance:   maintenance,
		Date:          parseTime(it.Date),
		CreatedBy:     fromCreatedByItem(it.CreatedBy),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
