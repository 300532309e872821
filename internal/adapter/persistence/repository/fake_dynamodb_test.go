package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoDB stores items by "id" and records the last inputs it received.
type fakeDynamoDB struct {
	items map[string]map[string]types.AttributeValue

	lastUpdate *dynamodb.UpdateItemInput
	lastQuery  *dynamodb.QueryInput
	queryItems []map[string]types.AttributeValue
	err        error
}

func newFakeDynamoDB() *fakeDynamoDB {
	return &fakeDynamoDB{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

// UpdateItem understands only the session claim condition; other updates are
// recorded and not applied.
func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.err != nil {
		return nil, f.err
	}
	if aws.ToString(in.ConditionExpression) != scaClaimCondition {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	id := keyOf(in.Key)
	item, ok := f.items[id]
	if !ok || isInitiated(item) {
		return nil, &types.ConditionalCheckFailedException{Item: item}
	}
	updated := make(map[string]types.AttributeValue, len(item)+1)
	for k, v := range item {
		updated[k] = v
	}
	updated["initiated"] = &types.AttributeValueMemberBOOL{Value: true}
	f.items[id] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func isInitiated(item map[string]types.AttributeValue) bool {
	b, ok := item["initiated"].(*types.AttributeValueMemberBOOL)
	return ok && b.Value
}

func (f *fakeDynamoDB) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := keyOf(in.Key)
	old := f.items[id]
	delete(f.items, id)
	out := &dynamodb.DeleteItemOutput{}
	if in.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}
