package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
)

// cartRecord is the item stored in the carts DynamoDB table: one record per
// cart key holding the whole serialized line list, rewritten on every save.
type cartRecord struct {
	CartID    string    `dynamodbav:"cart_id"` // PK
	Items     string    `dynamodbav:"items"`   // JSON array of Item
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

// DynamoPersister persists carts to DynamoDB.
type DynamoPersister struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewDynamoPersister binds a persister to a carts table.
func NewDynamoPersister(client aws.DynamoDBAPI, tableName string) *DynamoPersister {
	return &DynamoPersister{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

func (p *DynamoPersister) Save(ctx context.Context, key string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart items: %w", err)
	}

	rec := cartRecord{
		CartID:    key,
		Items:     string(payload),
		UpdatedAt: p.nowFunc(),
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal cart record: %w", err)
	}

	_, err = p.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &p.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put cart: %w", err)
	}
	return nil
}

func (p *DynamoPersister) Load(ctx context.Context, key string) ([]Item, error) {
	out, err := p.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &p.tableName,
		Key: map[string]types.AttributeValue{
			"cart_id": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var rec cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal cart record: %w", err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(rec.Items), &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart items: %w", err)
	}
	return items, nil
}
