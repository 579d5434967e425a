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

const defaultBudgetsTableName = "budgets"

type budgetItem struct {
	ID                     string             `dynamodbav:"id"`
	RequestID              string             `dynamodbav:"requestId"`
	ServiceIDs             []string           `dynamodbav:"services,omitempty"`
	ServiceType            string             `dynamodbav:"serviceType,omitempty"`
	ServicePrice           string             `dynamodbav:"servicePrice"`
	Equipment              string             `dynamodbav:"equipment,omitempty"`
	EquipmentPrice         string             `dynamodbav:"equipmentPrice"`
	BudgetNumber           string             `dynamodbav:"budgetNumber"`
	BudgetRebate           string             `dynamodbav:"budgetRebate"`
	BudgetPrice            string             `dynamodbav:"budgetPrice"`
	BudgetStatus           string             `dynamodbav:"budgetStatus"`
	Feedback               string             `dynamodbav:"feedback,omitempty"`
	NameClient             string             `dynamodbav:"nameClient,omitempty"`
	CnpjCpfClient          string             `dynamodbav:"cnpjCpfClient,omitempty"`
	PhoneClient            string             `dynamodbav:"phoneClient,omitempty"`
	PhoneAlternativeClient string             `dynamodbav:"phoneAlternativeClient,omitempty"`
	CreatedBy              createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory    []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt              string             `dynamodbav:"created_at"`
	UpdatedAt              string             `dynamodbav:"updated_at"`
	Version                int64              `dynamodbav:"version"`
}

// BudgetDynamoRepository persists budgets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI requestId-index: PK requestId
//
// requestId-index is the authoritative "does this request have a budget"
// lookup; the request's own budgetId mirror is never queried for that.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BUDGETS_TABLE", defaultBudgetsTableName),
	}
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Budget, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, "requestId-index", "requestId", requestID)
	if err != nil {
		return entities.Budget{}, err
	}
	if len(raw) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func (r *BudgetDynamoRepository) InsertTx(b entities.Budget) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toBudgetItem(b))
}

func (r *BudgetDynamoRepository) SaveTx(b entities.Budget) (interfaces.TxItem, error) {
	it := toBudgetItem(b)
	it.Version = b.Version + 1
	return saveTx(r.tableName, it, b.Version)
}

func (r *BudgetDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                     b.ID,
		RequestID:              b.RequestID,
		ServiceIDs:             b.ServiceIDs,
		ServiceType:            b.ServiceType,
		ServicePrice:           floatToString(b.ServicePrice),
		Equipment:              b.Equipment,
		EquipmentPrice:         floatToString(b.EquipmentPrice),
		BudgetNumber:           b.BudgetNumber,
		BudgetRebate:           floatToString(b.BudgetRebate),
		BudgetPrice:            floatToString(b.BudgetPrice),
		BudgetStatus:           string(b.BudgetStatus),
		Feedback:               b.Feedback,
		NameClient:             b.NameClient,
		CnpjCpfClient:          b.CnpjCpfClient,
		PhoneClient:            b.PhoneClient,
		PhoneAlternativeClient: b.PhoneAlternativeClient,
		CreatedBy:              toCreatedByItem(b.CreatedBy),
		ModificationHistory:    toModificationItems(b.ModificationHistory),
		CreatedAt:              fmtTime(b.CreatedAt),
		UpdatedAt:              fmtTime(b.UpdatedAt),
		Version:                b.Version,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	servicePrice, _ := strconv.ParseFloat(it.ServicePrice, 64)
	equipmentPrice, _ := strconv.ParseFloat(it.EquipmentPrice, 64)
	rebate, _ := strconv.ParseFloat(it.BudgetRebate, 64)
	price, _ := strconv.ParseFloat(it.BudgetPrice, 64)
	return entities.Budget{
		ID:                     it.ID,
		RequestID:              it.RequestID,
		ServiceIDs:             it.ServiceIDs,
		ServiceType:            it.ServiceType,
		ServicePrice:           servicePrice,
		Equipment:              it.Equipment,
		EquipmentPrice:         equipmentPrice,
		BudgetNumber:           it.BudgetNumber,
		BudgetRebate:           rebate,
		BudgetPrice:            price,
		BudgetStatus:           entities.BudgetStatus(it.BudgetStatus),
		Feedback:               it.Feedback,
		NameClient:             it.NameClient,
		CnpjCpfClient:          it.CnpjCpfClient,
		PhoneClient:            it.PhoneClient,
		PhoneAlternativeClient: it.PhoneAlternativeClient,
		CreatedBy:              fromCreatedByItem(it.CreatedBy),
		ModificationHistory:    fromModificationItems(it.ModificationHistory),
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
		Version:                it.Version,
	}
}
