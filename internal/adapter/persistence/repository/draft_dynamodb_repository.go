package repository

import (
	"context"
	"encoding/json"
	"time"

	"laundry_pos/internal/domain/entities"
	"laundry_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "order_drafts"

type draftItem struct {
	ID             string `dynamodbav:"id"`
	CustomerJSON   string `dynamodbav:"customer,omitempty"`
	ItemsJSON      string `dynamodbav:"items"`
	Discount       int    `dynamodbav:"discount"`
	Notes          string `dynamodbav:"notes,omitempty"`
	PaymentMethod  string `dynamodbav:"payment_method,omitempty"`
	TenderedAmount string `dynamodbav:"tendered_amount,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists OrderDraft sessions in DynamoDB.
//
// Storage model:
//   - PK: id (draft/session id)
//
// Customer and line items are stored as JSON blobs: drafts are always read
// and written whole, so per-attribute queries buy nothing here.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Save(ctx context.Context, d entities.OrderDraft) (entities.OrderDraft, error) {
	it, err := toDraftItem(d)
	if err != nil {
		return entities.OrderDraft{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderDraft{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.OrderDraft{}, err
	}
	return d, nil
}

func (r *DraftDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderDraft{}, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderDraft{}, err
	}
	return fromDraftItem(it)
}

func (r *DraftDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDraftItem(d entities.OrderDraft) (draftItem, error) {
	items := d.Items
	if items == nil {
		items = []entities.LineItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return draftItem{}, err
	}

	var customerJSON string
	if d.Customer != nil {
		b, err := json.Marshal(d.Customer)
		if err != nil {
			return draftItem{}, err
		}
		customerJSON = string(b)
	}

	return draftItem{
		ID:             d.ID,
		CustomerJSON:   customerJSON,
		ItemsJSON:      string(itemsJSON),
		Discount:       d.DiscountPercent,
		Notes:          d.Notes,
		PaymentMethod:  string(d.PaymentMethod),
		TenderedAmount: d.TenderedAmount,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDraftItem(it draftItem) (entities.OrderDraft, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	var items []entities.LineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.OrderDraft{}, err
		}
	}

	var customer *entities.Customer
	if it.CustomerJSON != "" {
		customer = &entities.Customer{}
		if err := json.Unmarshal([]byte(it.CustomerJSON), customer); err != nil {
			return entities.OrderDraft{}, err
		}
	}

	return entities.OrderDraft{
		ID:              it.ID,
		Customer:        customer,
		Items:           items,
		DiscountPercent: it.Discount,
		Notes:           it.Notes,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		TenderedAmount:  it.TenderedAmount,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
