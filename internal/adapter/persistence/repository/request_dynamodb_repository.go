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

const defaultRequestsTableName = "requests"

type requestItem struct {
	ID                    string             `dynamodbav:"id"`
	ClientID              string             `dynamodbav:"clientId"`
	AddressID             string             `dynamodbav:"addressId"`
	EnvironmentID         string             `dynamodbav:"environmentId,omitempty"`
	EnvID                 string             `dynamodbav:"envId,omitempty"`
	RequestType           string             `dynamodbav:"requestType"`
	RequestStatus         string             `dynamodbav:"requestStatus"`
	ServiceIDs            []string           `dynamodbav:"services,omitempty"`
	MaintenanceProblem    string             `dynamodbav:"maintenanceProblem,omitempty"`
	InstallationEquipment string             `dynamodbav:"installationEquipment,omitempty"`
	RequestNumber         string             `dynamodbav:"requestNumber"`
	RequestDate           string             `dynamodbav:"requestDate"`
	DateVisit             string             `dynamodbav:"dateVisit,omitempty"`
	TimeVisit             string             `dynamodbav:"timeVisit,omitempty"`
	Feedback              string             `dynamodbav:"feedback,omitempty"`
	OfficerID             string             `dynamodbav:"officerId,omitempty"`
	BudgetID              string             `dynamodbav:"budgetId,omitempty"`
	OrderID               string             `dynamodbav:"orderId,omitempty"`
	CreatedBy             createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory   []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt             string             `dynamodbav:"created_at"`
	UpdatedAt             string             `dynamodbav:"updated_at"`
	Version               int64              `dynamodbav:"version"`
}

// RequestDynamoRepository persists service requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI clientId-index: PK clientId
//   - GSI addressId-index: PK addressId

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Request, error) {
	return r.list(ctx, "clientId-index", "clientId", clientID)
}

func (r *RequestDynamoRepository) ListByAddressID(ctx context.Context, addressID string) ([]entities.Request, error) {
	return r.list(ctx, "addressId-index", "addressId", addressID)
}

func (r *RequestDynamoRepository) ListOpenByAddressID(ctx context.Context, addressID string) ([]entities.Request, error) {
	all, err := r.ListByAddressID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	open := make([]entities.Request, 0, len(all))
	for _, req := range all {
		if req.RequestStatus.Open() {
			open = append(open, req)
		}
	}
	return open, nil
}

func (r *RequestDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Request, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	var items []requestItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Request, 0, len(items))
	for _, it := range items {
		out = append(out, fromRequestItem(it))
	}
	return out, nil
}

func (r *RequestDynamoRepository) InsertTx(req entities.Request) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toRequestItem(req))
}

func (r *RequestDynamoRepository) SaveTx(req entities.Request) (interfaces.TxItem, error) {
	it := toRequestItem(req)
	it.Version = req.Version + 1
	return saveTx(r.tableName, it, req.Version)
}

func (r *RequestDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toRequestItem(req entities.Request) requestItem {
	return requestItem{
		ID:                    req.ID,
		ClientID:              req.ClientID,
		AddressID:             req.AddressID,
		EnvironmentID:         req.EnvironmentID,
		EnvID:                 req.EnvID,
		RequestType:           string(req.RequestType),
		RequestStatus:         string(req.RequestStatus),
		ServiceIDs:            req.ServiceIDs,
		MaintenanceProblem:    req.MaintenanceProblem,
		InstallationEquipment: req.InstallationEquipment,
		RequestNumber:         req.RequestNumber,
		RequestDate:           req.RequestDate,
		DateVisit:             req.DateVisit,
		TimeVisit:             req.TimeVisit,
		Feedback:              req.Feedback,
		OfficerID:             req.OfficerID,
		BudgetID:              req.BudgetID,
		OrderID:               req.OrderID,
		CreatedBy:             toCreatedByItem(req.CreatedBy),
		ModificationHistory:   toModificationItems(req.ModificationHistory),
		CreatedAt:             fmtTime(req.CreatedAt),
		UpdatedAt:             fmtTime(req.UpdatedAt),
		Version:               req.Version,
	}
}

func fromRequestItem(it requestItem) entities.Request {
	return entities.Request{
		ID:                    it.ID,
		ClientID:              it.ClientID,
		AddressID:             it.AddressID,
		EnvironmentID:         it.EnvironmentID,
		EnvID:                 it.EnvID,
		RequestType:           entities.RequestType(it.RequestType),
		RequestStatus:         entities.RequestStatus(it.RequestStatus),
		ServiceIDs:            it.ServiceIDs,
		MaintenanceProblem:    it.MaintenanceProblem,
		InstallationEquipment: it.InstallationEquipment,
		RequestNumber:         it.RequestNumber,
		RequestDate:           it.RequestDate,
		DateVisit:             it.DateVisit,
		TimeVisit:             it.TimeVisit,
		Feedback:              it.Feedback,
		OfficerID:             it.OfficerID,
		BudgetID:              it.BudgetID,
		OrderID:               it.OrderID,
		CreatedBy:             fromCreatedByItem(it.CreatedBy),
		ModificationHistory:   fromModificationItems(it.ModificationHistory),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		Version:               it.Version,
	}
}
