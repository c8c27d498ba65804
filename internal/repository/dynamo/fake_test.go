package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo implements API for testing without network.
type fakeDynamo struct {
	getOut *dynamodb.GetItemOutput
	getErr error
	getIn  *dynamodb.GetItemInput

	putErr error
	putIn  *dynamodb.PutItemInput

	queryOut *dynamodb.QueryOutput
	queryErr error
	queryIn  *dynamodb.QueryInput

	scanOut *dynamodb.ScanOutput
	scanIn  *dynamodb.ScanInput

	batch   func(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
	batchIn []*dynamodb.BatchGetItemInput
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getOut == nil && f.getErr == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, f.getErr
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = in
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryOut, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = in
	return f.scanOut, nil
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchIn = append(f.batchIn, in)
	return f.batch(in)
}
