// Package dynamo stores audit records in an Amazon DynamoDB table.
package dynamo

import (
	"context"

	"breachcheck/internal/domain/entity"
	"breachcheck/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// Write only when (UserID, CheckTime) is new; audit records are immutable.
const putIfAbsent = "attribute_not_exists(#uid) AND attribute_not_exists(#ct)"

// PutItemAPI is the subset of *dynamodb.Client used by the repository.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// auditItem is the table layout: partition key UserID, sort key CheckTime.
type auditItem struct {
	UserID       string `dynamodbav:"UserID"`
	CheckTime    int64  `dynamodbav:"CheckTime"`
	Name         string `dynamodbav:"Name"`
	SHA1Prefix   string `dynamodbav:"SHA1Prefix"`
	BreachStatus string `dynamodbav:"BreachStatus"`
	BreachCount  int    `dynamodbav:"BreachCount"`
}

type auditRepository struct {
	client    PutItemAPI
	tableName string
}

// NewAuditRepository is the constructor for the DynamoDB audit repository.
func NewAuditRepository(client PutItemAPI, tableName string) repository.AuditRepository {
	return &auditRepository{
		client:    client,
		tableName: tableName,
	}
}

// PutAuditRecord writes one item with a single PutItem call, no retry.
func (repo *auditRepository) PutAuditRecord(ctx context.Context, record *entity.AuditRecord) error {
	item, err := attributevalue.MarshalMap(fromAuditDomain(record))
	if err != nil {
		return errors.Wrap(err, "marshal audit record")
	}

	_, err = repo.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(repo.tableName),
		Item:                item,
		ConditionExpression: aws.String(putIfAbsent),
		ExpressionAttributeNames: map[string]string{
			"#uid": "UserID",
			"#ct":  "CheckTime",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return errors.Wrapf(repository.ErrAuditRecordExists, "put item into %s", repo.tableName)
		}

		return errors.Wrapf(err, "put item into %s", repo.tableName)
	}

	return nil
}

func fromAuditDomain(record *entity.AuditRecord) auditItem {
	return auditItem{
		UserID:       record.UserID,
		CheckTime:    record.CheckTime,
		Name:         record.Name,
		SHA1Prefix:   record.HashPrefix,
		BreachStatus: string(record.BreachStatus),
		BreachCount:  record.BreachCount,
	}
}
