package store

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/colorstore"
)

// DynamoDBStore implements colorstore.ColorStore using AWS DynamoDB.
// The client, table name and index name are explicit constructor inputs;
// there is no ambient global connection state.
type DynamoDBStore struct {
	client    DynamoDBClient
	tableName string
	indexName string
}

// NewDynamoDBStore creates a new DynamoDB-backed color store. An empty
// indexName falls back to the default TenantIndex.
func NewDynamoDBStore(client DynamoDBClient, tableName, indexName string) colorstore.ColorStore {
	if indexName == "" {
		indexName = IndexTenant
	}
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
		indexName: indexName,
	}
}

func (s *DynamoDBStore) ConditionalInsert(ctx context.Context, rec *colorstore.StoredColorRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to marshal color record: %v", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return colorstore.NewErrorf(colorstore.ErrCodeDuplicateRecord,
				"record already exists for key %s/%s", rec.PartitionKey, rec.SortKey)
		}
		return colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to insert color record: %v", err)
	}

	return nil
}

func (s *DynamoDBStore) QueryByTenant(ctx context.Context, tenantID, firstNameFilter string) ([]*colorstore.StoredColorRecord, error) {
	records := []*colorstore.StoredColorRecord{}
	var lastEvaluatedKey map[string]types.AttributeValue

	// Paginate through all results
	for {
		queryInput := &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(s.indexName),
			KeyConditionExpression: aws.String("tenantId = :tenantId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tenantId": &types.AttributeValueMemberS{Value: tenantID},
			},
		}

		// Name filter is an equality filter applied after the index
		// lookup, not a key condition.
		if firstNameFilter != "" {
			queryInput.FilterExpression = aws.String("firstName = :firstName")
			queryInput.ExpressionAttributeValues[":firstName"] = &types.AttributeValueMemberS{Value: firstNameFilter}
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Query(ctx, queryInput)
		if err != nil {
			return nil, colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to query tenant records: %v", err)
		}

		for _, item := range result.Items {
			var rec colorstore.StoredColorRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to unmarshal color record: %v", err)
			}
			records = append(records, &rec)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return records, nil
}

func (s *DynamoDBStore) GetByPrimaryKey(ctx context.Context, partitionKey, sortKey string) (*colorstore.StoredColorRecord, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: partitionKey},
			AttrSK: &types.AttributeValueMemberS{Value: sortKey},
		},
	})
	if err != nil {
		return nil, colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to get color record: %v", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var rec colorstore.StoredColorRecord
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, colorstore.NewErrorf(colorstore.ErrCodeStoreUnavailable, "failed to unmarshal color record: %v", err)
	}

	return &rec, nil
}
