package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sethvargo/go-retry"
)

const (
	// batchGetLimit is the DynamoDB cap on keys per BatchGetItem request.
	batchGetLimit = 100
	// maxUnprocessedRetries bounds re-requests of keys DynamoDB did not process.
	maxUnprocessedRetries = 5
	// unprocessedBaseDelay is the first backoff before re-requesting unprocessed keys.
	unprocessedBaseDelay = 50 * time.Millisecond
)

var errUnprocessedKeys = errors.New("unprocessed keys remain")

// newUnprocessedBackoff paces re-requests of unprocessed keys.
var newUnprocessedBackoff = func() retry.Backoff {
	b := retry.NewExponential(unprocessedBaseDelay)
	b = retry.WithJitterPercent(50, b)
	return retry.WithMaxRetries(maxUnprocessedRetries, b)
}

// batchGet loads the items for keys in chunks of batchGetLimit, re-requesting
// unprocessed keys with a jittered backoff. Missing keys are absent from the result.
func batchGet(ctx context.Context, api API, table, keyAttr string, ids []string) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for start := 0; start < len(ids); start += batchGetLimit {
		end := min(start+batchGetLimit, len(ids))

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				keyAttr: &types.AttributeValueMemberS{Value: id},
			})
		}

		request := map[string]types.KeysAndAttributes{table: {Keys: keys}}
		err := retry.Do(ctx, newUnprocessedBackoff(), func(ctx context.Context) error {
			out, err := api.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return fmt.Errorf("failed to batch get items: %w", err)
			}
			items = append(items, out.Responses[table]...)

			request = out.UnprocessedKeys
			if len(request) > 0 {
				return retry.RetryableError(errUnprocessedKeys)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return items, nil
}
