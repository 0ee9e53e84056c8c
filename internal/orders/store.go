package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/EvangelicalThreads/evangelical-threads/internal/aws"
)

// Store encapsulates operations on the orders table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new orders Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// ErrDuplicateSession indicates a pending order already exists for the session id.
var ErrDuplicateSession = errors.New("order already recorded for checkout session")

// CreatePending writes the order row for a freshly created checkout session:
// status pending, all address fields empty. The conditional put guards the
// uniqueness of stripe_session_id; Stripe session ids never repeat, so a
// condition failure means a duplicate insert attempt, not a retryable race.
func (s *Store) CreatePending(ctx context.Context, orderID, sessionID string) error {
	now := s.nowFunc()
	order := Order{
		StripeSessionID: sessionID,
		OrderID:         orderID,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	item, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(stripe_session_id)"),
	})
	if err != nil {
		var cf *types.ConditionalCheckFailedException
		if errors.As(err, &cf) {
			return ErrDuplicateSession
		}
		return fmt.Errorf("put order: %w", err)
	}
	return nil
}

// ApplyCheckoutCompleted asserts the terminal state for the order matching
// sessionID: status paid plus the customer/shipping fields from the event.
// It returns matched=false (and no error) when no order exists for the
// session id, mirroring an update-by-filter that touches zero rows.
//
// Update-by-unique-key is the sole idempotency mechanism here: the write
// never reads current state to decide the next state, so replaying the same
// event matches the same record and sets the same values. Do not bolt an
// "already processed" flag on top of this; it could only desync.
func (s *Store) ApplyCheckoutCompleted(ctx context.Context, sessionID string, det CustomerDetails) (bool, error) {
	now := s.nowFunc()
	input := &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"stripe_session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		UpdateExpression: awsString("SET #s = :s, customer_name = :n, address_line = :a, city = :c, #st = :st, postal_code = :pc, country = :co, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{
			"#s":  "status", // reserved word
			"#st": "state",  // reserved word
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s":  &types.AttributeValueMemberS{Value: StatusPaid},
			":n":  &types.AttributeValueMemberS{Value: det.Name},
			":a":  &types.AttributeValueMemberS{Value: det.AddressLine},
			":c":  &types.AttributeValueMemberS{Value: det.City},
			":st": &types.AttributeValueMemberS{Value: det.State},
			":pc": &types.AttributeValueMemberS{Value: det.PostalCode},
			":co": &types.AttributeValueMemberS{Value: det.Country},
			":ua": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
		// Without this guard UpdateItem would upsert a paid order with no
		// creation record; zero matches must stay a no-op.
		ConditionExpression: awsString("attribute_exists(stripe_session_id)"),
	}

	_, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		var cf *types.ConditionalCheckFailedException
		if errors.As(err, &cf) {
			return false, nil
		}
		return false, fmt.Errorf("update order: %w", err)
	}
	return true, nil
}

// GetBySessionID fetches an order by its checkout session id. Returns (nil, nil) if not found.
func (s *Store) GetBySessionID(ctx context.Context, sessionID string) (*Order, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"stripe_session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var o Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

func awsString(s string) *string { return &s }
