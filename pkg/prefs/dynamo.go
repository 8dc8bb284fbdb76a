// LingoTeach - language-teaching voice skill backend
// License: MIT

package prefs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

const languageAttribute = "targetLanguage"

// record mirrors the attribute bag layout of the platform SDK's persistence
// adapter: partition key "id", payload under "attributes".
type record struct {
	ID         string            `dynamodbav:"id"`
	Attributes map[string]string `dynamodbav:"attributes"`
}

// DynamoStore keeps preferences in a DynamoDB table keyed by device identity.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(cfg aws.Config, table string) *DynamoStore {
	return &DynamoStore{client: dynamodb.NewFromConfig(cfg), table: table}
}

func (s *DynamoStore) Get(ctx context.Context, identity string) (string, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: identity}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("get preference: %w", err)
	}
	if out.Item == nil {
		return "", false, nil
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return "", false, fmt.Errorf("unmarshal preference: %w", err)
	}

	code := rec.Attributes[languageAttribute]
	if code == "" {
		return "", false, nil
	}
	return code, true, nil
}

func (s *DynamoStore) Set(ctx context.Context, identity, code string) error {
	item, err := attributevalue.MarshalMap(record{
		ID:         identity,
		Attributes: map[string]string{languageAttribute: code},
	})
	if err != nil {
		return fmt.Errorf("marshal preference: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put preference: %w", err)
	}

	logger.DebugCF("prefs", "Stored language preference", map[string]any{
		"table":    s.table,
		"language": code,
	})

	return nil
}
