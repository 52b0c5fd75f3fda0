package audit

import (
	"context"
	"os"
	"time"

	"vda_service/internal/domain/entities"
	"vda_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

const defaultAuditTableName = "audit_events"

type auditEventItem struct {
	ID         string            `dynamodbav:"id"`
	EntityType string            `dynamodbav:"entity_type"`
	EntityID   string            `dynamodbav:"entity_id"`
	Action     string            `dynamodbav:"action"`
	FieldName  string            `dynamodbav:"field_name,omitempty"`
	OldValue   string            `dynamodbav:"old_value,omitempty"`
	NewValue   string            `dynamodbav:"new_value,omitempty"`
	Metadata   map[string]string `dynamodbav:"metadata,omitempty"`
	OccurredAt string            `dynamodbav:"occurred_at"`
}

// DynamoSink appends audit events to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Events are write-once; callers treat a failed write as a logged warning,
// never as a reason to roll back the mutation that produced it.

type DynamoSink struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditSink = (*DynamoSink)(nil)

func NewDynamoSink(ddb *dynamodb.Client) *DynamoSink {
	tableName := os.Getenv("AUDIT_TABLE")
	if tableName == "" {
		tableName = defaultAuditTableName
	}
	return &DynamoSink{ddb: ddb, tableName: tableName}
}

func (s *DynamoSink) Record(ctx context.Context, event entities.AuditEvent) error {
	it := auditEventItem{
		ID:         uuid.NewString(),
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Action:     event.Action,
		FieldName:  event.FieldName,
		OldValue:   event.OldValue,
		NewValue:   event.NewValue,
		Metadata:   event.Metadata,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
