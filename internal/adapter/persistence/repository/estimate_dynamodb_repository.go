package repository

import (
	"context"
	"encoding/json"
	"time"

	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID           string `dynamodbav:"id"`
	AssessmentID string `dynamodbav:"assessment_id"`
	RateSetRaw   string `dynamodbav:"rate_set_raw"`
	LineItemsRaw string `dynamodbav:"line_items_raw"`
	Subtotal     string `dynamodbav:"subtotal"`
	VATAmount    string `dynamodbav:"vat_amount"`
	Total        string `dynamodbav:"total"`
	FinalizedAt  string `dynamodbav:"finalized_at,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The rate set and line items travel as raw JSON blobs; money fields are
// stored as decimal strings so a corrupted float can never sneak in through
// the storage layer.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e *entities.Estimate) error {
	it, err := toEstimateItem(e)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (*entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e *entities.Estimate) error {
	it, err := toEstimateItem(e)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toEstimateItem(e *entities.Estimate) (estimateItem, error) {
	ratesRaw, err := json.Marshal(e.RateSet)
	if err != nil {
		return estimateItem{}, err
	}
	linesRaw, err := json.Marshal(e.LineItems)
	if err != nil {
		return estimateItem{}, err
	}

	it := estimateItem{
		ID:           e.ID,
		AssessmentID: e.AssessmentID,
		RateSetRaw:   string(ratesRaw),
		LineItemsRaw: string(linesRaw),
		Subtotal:     e.Subtotal.String(),
		VATAmount:    e.VATAmount.String(),
		Total:        e.Total.String(),
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.FinalizedAt != nil {
		it.FinalizedAt = e.FinalizedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromEstimateItem(it estimateItem) (*entities.Estimate, error) {
	var rates entities.RateSet
	if err := json.Unmarshal([]byte(it.RateSetRaw), &rates); err != nil {
		return nil, err
	}
	var lines []entities.LineItem
	if it.LineItemsRaw != "" {
		if err := json.Unmarshal([]byte(it.LineItemsRaw), &lines); err != nil {
			return nil, err
		}
	}
	subtotal, err := decimal.NewFromString(it.Subtotal)
	if err != nil {
		return nil, err
	}
	vat, err := decimal.NewFromString(it.VATAmount)
	if err != nil {
		return nil, err
	}
	total, err := decimal.NewFromString(it.Total)
	if err != nil {
		return nil, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	e := &entities.Estimate{
		ID:           it.ID,
		AssessmentID: it.AssessmentID,
		RateSet:      rates,
		LineItems:    lines,
		Subtotal:     subtotal,
		VATAmount:    vat,
		Total:        total,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.FinalizedAt != "" {
		finalizedAt, _ := time.Parse(time.RFC3339Nano, it.FinalizedAt)
		e.FinalizedAt = &finalizedAt
	}
	return e, nil
}
