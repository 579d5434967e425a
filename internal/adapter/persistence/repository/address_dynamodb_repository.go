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

const defaultAddressesTableName = "addresses"

type addressItem struct {
	ID                  string             `dynamodbav:"id"`
	ClientID            string             `dynamodbav:"clientId,omitempty"`
	OfficerID           string             `dynamodbav:"officerId,omitempty"`
	AddressType         string             `dynamodbav:"addressType"`
	Street              string             `dynamodbav:"street"`
	Number              int                `dynamodbav:"number"`
	Complement          string             `dynamodbav:"complement,omitempty"`
	District            string             `dynamodbav:"district"`
	City                string             `dynamodbav:"city"`
	State               string             `dynamodbav:"state"`
	PostalCode          string             `dynamodbav:"postalCode"`
	Coordinates         []float64          `dynamodbav:"coordinates"`
	CreatedBy           createdByItem      `dynamodbav:"createdBy"`
	ModificationHistory []modificationItem `dynamodbav:"modificationHistory,omitempty"`
	CreatedAt           string             `dynamodbav:"created_at"`
	UpdatedAt           string             `dynamodbav:"updated_at"`
	Version             int64              `dynamodbav:"version"`
}

// AddressDynamoRepository persists addresses in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI clientId-index: PK clientId
//   - GSI officerId-index: PK officerId

type AddressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddressRepository = (*AddressDynamoRepository)(nil)

func NewAddressDynamoRepository(ddb *dynamodb.Client) *AddressDynamoRepository {
	return &AddressDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADDRESSES_TABLE", defaultAddressesTableName),
	}
}

func (r *AddressDynamoRepository) GetByID(ctx context.Context, id string) (entities.Address, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Address{}, err
	}
	if len(out.Item) == 0 {
		return entities.Address{}, nil
	}

	var it addressItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Address{}, err
	}
	return fromAddressItem(it), nil
}

func (r *AddressDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Address, error) {
	return r.list(ctx, "clientId-index", "clientId", clientID)
}

func (r *AddressDynamoRepository) ListByOfficerID(ctx context.Context, officerID string) ([]entities.Address, error) {
	return r.list(ctx, "officerId-index", "officerId", officerID)
}

func (r *AddressDynamoRepository) list(ctx context.Context, index, attr, value string) ([]entities.Address, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	var items []addressItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Address, 0, len(items))
	for _, it := range items {
		out = append(out, fromAddressItem(it))
	}
	return out, nil
}

func (r *AddressDynamoRepository) InsertTx(a entities.Address) (interfaces.TxItem, error) {
	return insertTx(r.tableName, toAddressItem(a))
}

func (r *AddressDynamoRepository) SaveTx(a entities.Address) (interfaces.TxItem, error) {
	it := toAddressItem(a)
	it.Version = a.Version + 1
	return saveTx(r.tableName, it, a.Version)
}

func (r *AddressDynamoRepository) DeleteTx(id string) interfaces.TxItem {
	return deleteTx(r.tableName, id)
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		OfficerID:           a.OfficerID,
		AddressType:         string(a.AddressType),
		Street:              a.Street,
		Number:              a.Number,
		Complement:          a.Complement,
		District:            a.District,
		City:                a.City,
		State:               a.State,
		PostalCode:          a.PostalCode,
		Coordinates:         a.Coordinates,
		CreatedBy:           toCreatedByItem(a.CreatedBy),
		ModificationHistory: toModificationItems(a.ModificationHistory),
		CreatedAt:           fmtTime(a.CreatedAt),
		UpdatedAt:           fmtTime(a.UpdatedAt),
		Version:             a.Version,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		OfficerID:           it.OfficerID,
		AddressType:         entities.AddressType(it.AddressType),
		Street:              it.Street,
		Number:              it.Number,
		Complement:          it.Complement,
		District:            it.District,
		City:                it.City,
		State:               it.State,
		PostalCode:          it.PostalCode,
		Coordinates:         it.Coordinates,
		CreatedBy:           fromCreatedByItem(it.CreatedBy),
		ModificationHistory: fromModificationItems(it.ModificationHistory),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		Version:             it.Version,
	}
}
