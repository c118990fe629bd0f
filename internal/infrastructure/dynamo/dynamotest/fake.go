// Package dynamotest provides an in-memory dynamo.API for repository tests.
package dynamotest

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"library-catalog/internal/infrastructure/dynamo"
)

var _ dynamo.API = (*Fake)(nil)

// Fake replays canned pages for Scan and Query and records every input.
// Items returned from GetItem are looked up by the "id" string key.
type Fake struct {
	mu sync.Mutex

	ScanPages  []*dynamodb.ScanOutput
	QueryPages []*dynamodb.QueryOutput
	Items      map[string]map[string]types.AttributeValue
	Err        error

	ScanInputs  []*dynamodb.ScanInput
	QueryInputs []*dynamodb.QueryInput
	GetInputs   []*dynamodb.GetItemInput
	PutInputs   []*dynamodb.PutItemInput
}

func (f *Fake) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ScanInputs = append(f.ScanInputs, in)
	if f.Err != nil {
		return nil, f.Err
	}
	i := len(f.ScanInputs) - 1
	if i >= len(f.ScanPages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.ScanPages[i], nil
}

func (f *Fake) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.QueryInputs = append(f.QueryInputs, in)
	if f.Err != nil {
		return nil, f.Err
	}
	i := len(f.QueryInputs) - 1
	if i >= len(f.QueryPages) {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.QueryPages[i], nil
}

func (f *Fake) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GetInputs = append(f.GetInputs, in)
	if f.Err != nil {
		return nil, f.Err
	}
	key, _ := in.Key["id"].(*types.AttributeValueMemberS)
	if key == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: f.Items[key.Value]}, nil
}

func (f *Fake) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.PutInputs = append(f.PutInputs, in)
	if f.Err != nil {
		return nil, f.Err
	}
	return &dynamodb.PutItemOutput{}, nil
}

// PageKey builds a LastEvaluatedKey so a paginator keeps going.
func PageKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}
