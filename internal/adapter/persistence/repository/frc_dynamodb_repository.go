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
)

const (
	defaultFRCTableName = "final_repair_costings"
	frcEstimateIDIndex  = "estimate_id-index"
)

type frcItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	Status     string `dynamodbav:"status"`
	LinesRaw   string `dynamodbav:"lines_raw"`
	SignOffRaw string `dynamodbav:"sign_off_raw,omitempty"`
	ReopenedAt string `dynamodbav:"reopened_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// FRCDynamoRepository persists FinalRepairCosting aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)

type FRCDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFRCRepository = (*FRCDynamoRepository)(nil)

func NewFRCDynamoRepository(ddb *dynamodb.Client) *FRCDynamoRepository {
	return &FRCDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("FRC_TABLE", defaultFRCTableName),
	}
}

func (r *FRCDynamoRepository) Create(ctx context.Context, f *entities.FinalRepairCosting) error {
	it, err := toFRCItem(f)
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

func (r *FRCDynamoRepository) GetByID(ctx context.Context, id string) (*entities.FinalRepairCosting, error) {
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

	var it frcItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromFRCItem(it)
}

func (r *FRCDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (*entities.FinalRepairCosting, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(frcEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it frcItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromFRCItem(it)
}

func (r *FRCDynamoRepository) Save(ctx context.Context, f *entities.FinalRepairCosting) error {
	it, err := toFRCItem(f)
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

func toFRCItem(f *entities.FinalRepairCosting) (frcItem, error) {
	linesRaw, err := json.Marshal(f.Lines)
	if err != nil {
		return frcItem{}, err
	}

	it := frcItem{
		ID:         f.ID,
		EstimateID: f.EstimateID,
		Status:     string(f.Status),
		LinesRaw:   string(linesRaw),
		CreatedAt:  f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if f.SignOff != nil {
		signOffRaw, err := json.Marshal(f.SignOff)
		if err != nil {
			return frcItem{}, err
		}
		it.SignOffRaw = string(signOffRaw)
	}
	if f.ReopenedAt != nil {
		it.ReopenedAt = f.ReopenedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromFRCItem(it frcItem) (*entities.FinalRepairCosting, error) {
	var lines []entities.FRCLine
	if it.LinesRaw != "" {
		if err := json.Unmarshal([]byte(it.LinesRaw), &lines); err != nil {
			return nil, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	f := &entities.FinalRepairCosting{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		Status:     entities.FRCStatus(it.Status),
		Lines:      lines,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	if it.SignOffRaw != "" {
		var signOff entities.SignOff
		if err := json.Unmarshal([]byte(it.SignOffRaw), &signOff); err != nil {
			return nil, err
		}
		f.SignOff = &signOff
	}
	if it.ReopenedAt != "" {
		reopenedAt, _ := time.Parse(time.RFC3339Nano, it.ReopenedAt)
		f.ReopenedAt = &reopenedAt
	}
	return f, nil
}
