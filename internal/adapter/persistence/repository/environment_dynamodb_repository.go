package repository

import (
	"context"
	"strconv"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEnvironmentsTableName = "environments"

type environmentItem struct {
	ID                  string             `dynamodbav:"id"`
	ClientID            string             `dynamodbav:"clientId"`
	AddressID           string             `dynamodbav:"addressId"`
	EnvironmentName     string             `dynamodbav:"environmentName"`
	EnvironmentSize     string             `dynamodbav:"environmentSize"`
	EquipmentType       string             `dynamodbav:"equipmentType,omitempty"`
	EquipmentBrand      string             `dynamodbav:"equipmentBrand,omitempty"`
	EquipmentModel      string             `dynamodbav:"equipmentModel,omitempty"`
	CapacityBTU         int                `dynamodbav:"capacityBTU"`
	Cicle               string             `dynamodbav:"cicle,omitempty"`
	Volt                string             `dynamodbav:"volt,omitempty"`
	SerialModel         string             `dynamodbav:"serialModel,omitempty"`
	EquipmentNumber     string             `dynamodbav:"equipmentNumber"`
	CreatedBy           createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
	Version             int64              `dynamodbav:"version"`
}

// EnvironmentDynamoRepository persists environments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI clientId-index: PK clientId
//   - GSI addressId-index: PK addressId

type EnvironmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnvironmentRepository = (*EnvironmentDynamoRepository)(nil)

func NewEnvironmentDynamoRepository(ddb *dynamodb.Client) *EnvironmentDynamoRepository {
	return &EnvironmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENVIRONMENTS_TABLE", defaultEnvironmentsTableName),
	}
}

func (r *EnvironmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Environment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Environment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Environment{}, nil
	}

	var it environmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Environment{}, err
	}
	return fromEnvironmentItem(it), nil
}

func (r *EnvironmentDynamoRepository) ListByAddressID(ctx context.Context, addressID string) ([]entities.Environment, error) {
	return r.list(ctx, "addressId-index", "addressId", addressID)
}

func (r *EnvironmentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Environment, error) {
	return r.list(ctx, "clientId-index", "clientId", clientID)
}

func (r *EnvironmentDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Environment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	var items []environmentItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Environment, 0, len(items))
	for _, it := range items {
		out = append(out, fromEnvironmentItem(it))
	}
	return out, nil
}

func (r *EnvironmentDynamoRepository) InsertTx(e entities.Environment) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toEnvironmentItem(e))
}

func (r *EnvironmentDynamoRepository) SaveTx(e entities.Environment) (interfaces.TxItem, error) {
	it := toEnvironmentItem(e)
	it.Version = e.Version + 1
	return saveTx(r.tableName, it, e.Version)
}

func (r *EnvironmentDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toEnvironmentItem(e entities.Environment) environmentItem {
	return environmentItem{
		ID:                  e.ID,
		ClientID:            e.ClientID,
		AddressID:           e.AddressID,
		EnvironmentName:     e.EnvironmentName,
		EnvironmentSize:     floatToString(e.EnvironmentSize),
		EquipmentType:       e.EquipmentType,
		EquipmentBrand:      e.EquipmentBrand,
		EquipmentModel:      e.EquipmentModel,
		CapacityBTU:         e.CapacityBTU,
		Cicle:               e.Cicle,
		Volt:                e.Volt,
		SerialModel:         e.SerialModel,
		EquipmentNumber:     e.EquipmentNumber,
		CreatedBy:           toCreatedByItem(e.CreatedBy),
		ModificationHistory: toModificationItems(e.ModificationHistory),
		CreatedAt:           fmtTime(e.CreatedAt),
		UpdatedAt:           fmtTime(e.UpdatedAt),
		Version:             e.Version,
	}
}

func fromEnvironmentItem(it environmentItem) entities.Environment {
	size, _ := strconv.ParseFloat(it.EnvironmentSize, 64)
	return entities.Environment{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		AddressID:           it.AddressID,
		EnvironmentName:     it.EnvironmentName,
		EnvironmentSize:     size,
		EquipmentType:       it.EquipmentType,
		EquipmentBrand:      it.EquipmentBrand,
		EquipmentModel:      it.EquipmentModel,
		CapacityBTU:         it.CapacityBTU,
		Cicle:               it.Cicle,
		Volt:                it.Volt,
		SerialModel:         it.SerialModel,
		EquipmentNumber:     it.EquipmentNumber,
		CreatedBy:           fromCreatedByItem(it.CreatedBy),
		ModificationHistory: fromModificationItems(it.ModificationHistory),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
