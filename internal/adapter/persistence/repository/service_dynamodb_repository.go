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

const defaultServicesTableName = "services"

type serviceItem struct {
	ID                 string        `dynamodbav:"id"`
	ServiceType        string        `dynamodbav:"serviceType"`
	ServiceName        string        `dynamodbav:"serviceName"`
	ServiceDescription string        `dynamodbav:"serviceDescription,omitempty"`
	ServicePrice       string        `dynamodbav:"servicePrice"`
	CreatedBy          createdByItem `dynamodbav:"createdBy"`
	CreatedAt          string        `dynamodbav:"created_at"`
	UpdatedAt          string        `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists the service catalog in DynamoDB. The
// (type, name) uniqueness lives in the claims table.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	out := make([]entities.Service, 0, len(ids))
	for _, id := range ids {
		svc, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if svc.ID == "" {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

func (r *ServiceDynamoRepository) ListAll(ctx context.Context) ([]entities.Service, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(raw))
	for _, item := range raw {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceItem(it))
	}
	return out, nil
}

func (r *ServiceDynamoRepository) InsertTx(s entities.Service) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toServiceItem(s))
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                 s.ID,
		ServiceType:        string(s.ServiceType),
		ServiceName:        s.ServiceName,
		ServiceDescription: s.ServiceDescription,
		ServicePrice:       floatToString(s.ServicePrice),
		CreatedBy:          toCreatedByItem(s.CreatedBy),
		CreatedAt:          fmtTime(s.CreatedAt),
		UpdatedAt:          fmtTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	price, _ := strconv.ParseFloat(it.ServicePrice, 64)
	return entities.Service{
		ID:                 it.ID,
		ServiceType:        entities.ServiceType(it.ServiceType),
		ServiceName:        it.ServiceName,
		ServiceDescription: it.ServiceDescription,
		ServicePrice:       price,
		CreatedBy:          fromCreatedByItem(it.CreatedBy),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
