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

const defaultAdditionalsTableName = "additionals_ledgers"

type additionalsLedgerItem struct {
	EstimateID         string `dynamodbav:"estimate_id"`
	ID                 string `dynamodbav:"id"`
	RateSetSnapshotRaw string `dynamodbav:"rate_set_snapshot_raw"`
	EntriesRaw         string `dynamodbav:"entries_raw"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// AdditionalsDynamoRepository persists AdditionalsLedger aggregates in
// DynamoDB.
//
// Table requirements:
//   - PK: estimate_id (string)
//
// We purposely use the estimate id as PK to guarantee exactly one ledger per
// finalized estimate; the lazy GetOrCreate flow relies on the conditional put
// for that guarantee under concurrent first writes.

type AdditionalsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdditionalsRepository = (*AdditionalsDynamoRepository)(nil)

func NewAdditionalsDynamoRepository(ddb *dynamodb.Client) *AdditionalsDynamoRepository {
	return &AdditionalsDynamoRepository{
		ddb:       ddb,
		tableName: tableNameFromEnv("ADDITIONALS_TABLE", defaultAdditionalsTableName),
	}
}

func (r *AdditionalsDynamoRepository) Create(ctx context.Context, l *entities.AdditionalsLedger) error {
	it, err := toAdditionalsLedgerItem(l)
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
		ConditionExpression: aws.String("attribute_not_exists(#estimate_id)"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
	})
	return err
}

func (r *AdditionalsDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (*entities.AdditionalsLedger, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"estimate_id": &types.AttributeValueMemberS{Value: estimateID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it additionalsLedgerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromAdditionalsLedgerItem(it)
}

func (r *AdditionalsDynamoRepository) Save(ctx context.Context, l *entities.AdditionalsLedger) error {
	it, err := toAdditionalsLedgerItem(l)
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
		ConditionExpression: aws.String("attribute_exists(#estimate_id)"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
	})
	return err
}

func toAdditionalsLedgerItem(l *entities.AdditionalsLedger) (additionalsLedgerItem, error) {
	ratesRaw, err := json.Marshal(l.RateSetSnapshot)
	if err != nil {
		return additionalsLedgerItem{}, err
	}
	entriesRaw, err := json.Marshal(l.Entries)
	if err != nil {
		return additionalsLedgerItem{}, err
	}

	return additionalsLedgerItem{
		EstimateID:         l.EstimateID,
		ID:                 l.ID,
		RateSetSnapshotRaw: string(ratesRaw),
		EntriesRaw:         string(entriesRaw),
		CreatedAt:          l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromAdditionalsLedgerItem(it additionalsLedgerItem) (*entities.AdditionalsLedger, error) {
	var rates entities.RateSet
	if err := json.Unmarshal([]byte(it.RateSetSnapshotRaw), &rates); err != nil {
		return nil, err
	}
	var entries []entities.AdditionalsEntry
	if it.EntriesRaw != "" {
		if err := json.Unmarshal([]byte(it.EntriesRaw), &entries); err != nil {
			return nil, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return &entities.AdditionalsLedger{
		ID:              it.ID,
		EstimateID:      it.EstimateID,
		RateSetSnapshot: rates,
		Entries:         entries,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
