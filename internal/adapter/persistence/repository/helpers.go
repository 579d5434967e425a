package repository

import (
	"context"
	"os"
	"strconv"
	"time"

	"gta_clima/internal/domain/entities"
	"gta_clima/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// insertTx builds a conditional put that fails the whole transaction when an
// item with the same id already exists.
func insertTx(table string, it any) (interfaces.TxItem, error) {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return interfaces.TxItem{}, err
	}
	return interfaces.TxItem{Put: &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}}, nil
}

// saveTx builds a full-item put guarded by an optimistic version check. The
// marshalled item must already carry expectedVersion+1; a concurrent writer
// bumping the version first cancels the transaction.
func saveTx(table string, it any, expectedVersion int64) (interfaces.TxItem, error) {
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return interfaces.TxItem{}, err
	}
	return interfaces.TxItem{Put: &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	}}, nil
}

// queryIndex runs an equality query against a GSI and drains all pages.
func queryIndex(ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#k = :v"),
			ExpressionAttributeNames: map[string]string{
				"#k": attr,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// scanAll drains a full table scan. Only the small catalog-style tables
// (officers, services) are listed this way.
func scanAll(ctx context.Context, ddb *dynamodb.Client, table string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func deleteTx(table, id string) interfaces.TxItem {
	return interfaces.TxItem{Delete: &types.Delete{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}}
}

// Audit sub-documents share a wire shape across all tables.

type createdByItem struct {
	UserID    string `dynamodbav:"userId"`
	CreatedAt string `dynamodbav:"createdAt"`
}

type fieldChangeItem struct {
	Before any `dynamodbav:"before"`
	After  any `dynamodbav:"after"`
}

type modificationItem struct {
	UpdatedAt string                     `dynamodbav:"updatedAt"`
	UpdatedBy string                     `dynamodbav:"updatedBy"`
	Changes   map[string]fieldChangeItem `dynamodbav:"changes"`
}

func toCreatedByItem(c entities.CreatedBy) createdByItem {
	return createdByItem{UserID: c.UserID, CreatedAt: fmtTime(c.CreatedAt)}
}

func fromCreatedByItem(it createdByItem) entities.CreatedBy {
	return entities.CreatedBy{UserID: it.UserID, CreatedAt: parseTime(it.CreatedAt)}
}

func toModificationItems(history []entities.ModificationEntry) []modificationItem {
	if len(history) == 0 {
		return nil
	}
	out := make([]modificationItem, 0, len(history))
	for _, e := range history {
		changes := make(map[string]fieldChangeItem, len(e.Changes))
		for field, c := range e.Changes {
			changes[field] = fieldChangeItem{Before: c.Before, After: c.After}
		}
		out = append(out, modificationItem{
			UpdatedAt: fmtTime(e.UpdatedAt),
			UpdatedBy: e.UpdatedBy,
			Changes:   changes,
		})
	}
	return out
}

func fromModificationItems(items []modificationItem) []entities.ModificationEntry {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.ModificationEntry, 0, len(items))
	for _, it := range items {
		changes := make(map[string]entities.FieldChange, len(it.Changes))
		for field, c := range it.Changes {
			changes[field] = entities.FieldChange{Before: c.Before, After: c.After}
		}
		out = append(out, entities.ModificationEntry{
			UpdatedAt: parseTime(it.UpdatedAt),
			UpdatedBy: it.UpdatedBy,
			Changes:   changes,
		})
	}
	return out
}
