package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nails/driver-invoice-worldpay/internal/config"
	"github.com/nails/driver-invoice-worldpay/internal/domain/entities"
	"github.com/nails/driver-invoice-worldpay/internal/usecase/interfaces"
)

const defaultScaSessionsTableName = "worldpay_sca_sessions"

const scaClaimCondition = "attribute_exists(id) AND (attribute_not_exists(initiated) OR initiated = :false)"

type scaSessionItem struct {
	ID        string `dynamodbav:"id"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	Initiated bool   `dynamodbav:"initiated"`
	// ExpiresAt is epoch seconds; the table's TTL attribute.
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// ScaSessionDynamoRepository keeps SCA sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL: expires_at
//   - initiated: top-level flag for the conditional claim
//
// TTL deletion lags, so reads also drop expired items.
type ScaSessionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IScaSessionRepository = (*ScaSessionDynamoRepository)(nil)

func NewScaSessionDynamoRepository(ddb DynamoDBAPI) *ScaSessionDynamoRepository {
	return &ScaSessionDynamoRepository{
		ddb:       ddb,
		tableName: config.Getenv("SCA_SESSIONS_TABLE", defaultScaSessionsTableName),
		now:       time.Now,
	}
}

func (r *ScaSessionDynamoRepository) Save(ctx context.Context, s entities.ScaSession) error {
	it, err := toScaSessionItem(s)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ScaSessionDynamoRepository) Get(ctx context.Context, id string) (entities.ScaSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            recordKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ScaSession{}, err
	}
	return r.decode(out.Item)
}

// Claim flips initiated with a conditional update. A failed condition means
// the item is gone or someone else claimed it; the old item tells which.
func (r *ScaSessionDynamoRepository) Claim(ctx context.Context, id string) (entities.ScaSession, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 recordKey(id),
		UpdateExpression:    aws.String("SET initiated = :true"),
		ConditionExpression: aws.String(scaClaimCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		s, err := r.decode(condErr.Item)
		return s, false, err
	}
	if err != nil {
		return entities.ScaSession{}, false, err
	}
	s, err := r.decode(out.Attributes)
	if err != nil || s.ID == "" {
		return s, false, err
	}
	return s, true, nil
}

// Take deletes the item and returns what was there, in one call.
func (r *ScaSessionDynamoRepository) Take(ctx context.Context, id string) (entities.ScaSession, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          recordKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.ScaSession{}, err
	}
	return r.decode(out.Attributes)
}

func (r *ScaSessionDynamoRepository) decode(item map[string]types.AttributeValue) (entities.ScaSession, error) {
	if len(item) == 0 {
		return entities.ScaSession{}, nil
	}
	var it scaSessionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.ScaSession{}, err
	}
	if it.ExpiresAt > 0 && r.now().Unix() >= it.ExpiresAt {
		return entities.ScaSession{}, nil
	}
	s, err := fromScaSessionItem(it)
	if err != nil {
		return entities.ScaSession{}, err
	}
	s.Initiated = s.Initiated || it.Initiated
	return s, nil
}

func toScaSessionItem(s entities.ScaSession) (scaSessionItem, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return scaSessionItem{}, fmt.Errorf("encode sca session: %w", err)
	}
	it := scaSessionItem{ID: s.ID, Payload: string(b), CreatedAt: formatTime(s.CreatedAt), Initiated: s.Initiated}
	if !s.ExpiresAt.IsZero() {
		it.ExpiresAt = s.ExpiresAt.Unix()
	}
	return it, nil
}

func fromScaSessionItem(it scaSessionItem) (entities.ScaSession, error) {
	var s entities.ScaSession
	if err := json.Unmarshal([]byte(it.Payload), &s); err != nil {
		return entities.ScaSession{}, fmt.Errorf("decode sca session %s: %w", it.ID, err)
	}
	return s, nil
}
