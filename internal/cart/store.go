package cart

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/nicollasibrahim01-pixel/NovaEletro/internal/aws"
)

// maxListSize bounds the cart Scan, same limitation as the catalog listing.
const maxListSize = 1000

// Store encapsulates operations on the cart table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
	newID     func() string
}

// NewStore creates a new cart Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
		newID:     uuid.NewString,
	}
}

// Add merges quantity into the cart line for productID, inserting the line
// if it does not exist yet. This is a single UpdateItem upsert keyed by
// product_id, so concurrent adds for the same product serialize at the
// storage layer instead of racing through a read-then-write. Quantity is
// not sign-checked; a negative add decrements.
func (s *Store) Add(ctx context.Context, productID string, quantity int) (*Item, error) {
	now := s.nowFunc().UTC()
	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
		UpdateExpression: awsString("SET quantity = if_not_exists(quantity, :zero) + :q, id = if_not_exists(id, :id), added_at = if_not_exists(added_at, :ts)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":q":    &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":id":   &types.AttributeValueMemberS{Value: s.newID()},
			":ts":   &types.AttributeValueMemberS{Value: now.Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	var item Item
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("unmarshal cart item: %w", err)
	}
	return &item, nil
}

// List returns up to maxListSize cart items.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName: &s.tableName,
		Limit:     awsInt32(maxListSize),
	})
	if err != nil {
		return nil, fmt.Errorf("scan cart: %w", err)
	}
	items := make([]Item, 0, len(out.Items))
	for _, raw := range out.Items {
		var item Item
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			return nil, fmt.Errorf("unmarshal cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateQuantity overwrites the quantity of the cart line addressed by item
// id. A miss is a silent success: deleting or updating what is not there is
// a no-op by contract. The write is guarded on the id still matching so a
// line replaced between lookup and write also degrades to the no-op case.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	item, err := s.findByItemID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	_, err = s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: item.ProductID},
		},
		UpdateExpression:    awsString("SET quantity = :q"),
		ConditionExpression: awsString("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q":  &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil
		}
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// Remove deletes the cart line addressed by item id, with the same
// silent-success-on-miss contract as UpdateQuantity.
func (s *Store) Remove(ctx context.Context, itemID string) error {
	item, err := s.findByItemID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	_, err = s.client.DeleteItem(ctx, &dyn.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: item.ProductID},
		},
		ConditionExpression: awsString("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return nil
		}
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear deletes every cart line.
func (s *Store) Clear(ctx context.Context) error {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:            &s.tableName,
		ProjectionExpression: awsString("product_id"),
	})
	if err != nil {
		return fmt.Errorf("scan cart: %w", err)
	}
	if len(out.Items) == 0 {
		return nil
	}
	// BatchWriteItem caps at 25 requests per call
	for start := 0; start < len(out.Items); start += 25 {
		end := start + 25
		if end > len(out.Items) {
			end = len(out.Items)
		}
		writes := make([]types.WriteRequest, 0, end-start)
		for _, raw := range out.Items[start:end] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"product_id": raw["product_id"],
					},
				},
			})
		}
		_, err := s.client.BatchWriteItem(ctx, &dyn.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.tableName: writes,
			},
		})
		if err != nil {
			return fmt.Errorf("batch delete cart items: %w", err)
		}
	}
	return nil
}

// findByItemID scans for the cart line carrying the given item id. The cart
// is keyed by product_id, so addressing by line id is a filtered Scan; cart
// cardinality is small enough that this stays cheap. Returns (nil, nil) on
// a miss.
func (s *Store) findByItemID(ctx context.Context, itemID string) (*Item, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{
		TableName:        &s.tableName,
		Limit:            awsInt32(maxListSize),
		FilterExpression: awsString("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scan cart by item id: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var item Item
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, fmt.Errorf("unmarshal cart item: %w", err)
	}
	return &item, nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ConditionalCheckFailedException"
}

func awsString(s string) *string { return &s }
func awsInt32(n int32) *int32    { return &n }
