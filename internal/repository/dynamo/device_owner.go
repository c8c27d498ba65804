package dynamo

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/query"
	"github.com/dtroode/pits-server/internal/repository"
)

var _ model.DeviceOwnerStore = (*DeviceOwnerRepository)(nil)

type DeviceOwnerRepository struct {
	api   API
	table string
}

func NewDeviceOwnerRepository(api API, table string) *DeviceOwnerRepository {
	return &DeviceOwnerRepository{api: api, table: table}
}

func (r *DeviceOwnerRepository) Get(ctx context.Context, deviceID, ownerID string) (model.DeviceOwner, bool, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			repository.AttrDeviceID: &types.AttributeValueMemberS{Value: deviceID},
			repository.AttrOwnerID:  &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return model.DeviceOwner{}, false, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}
	if out.Item == nil {
		return model.DeviceOwner{}, false, nil
	}

	var item deviceOwnerItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.DeviceOwner{}, false, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}
	owner, err := item.model()
	if err != nil {
		return model.DeviceOwner{}, false, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}

	return owner, true, nil
}

// ListItems queries the table (deviceId) or the owner index (ownerId) for
// equality conditions and falls back to a filtered scan otherwise.
func (r *DeviceOwnerRepository) ListItems(ctx context.Context, params query.Params) (query.Page[model.DeviceOwner], error) {
	cond := params.Condition
	if err := cond.Validate(); err != nil {
		return query.Page[model.DeviceOwner]{}, fmt.Errorf("%w: %w", model.ErrBadRequest, err)
	}

	startKey, err := decodeStartKey(params.Cursor)
	if err != nil {
		return query.Page[model.DeviceOwner]{}, err
	}
	limit := aws.Int32(int32(params.PageSize()))

	var (
		raw     []map[string]types.AttributeValue
		lastKey map[string]types.AttributeValue
	)
	if index, ok := keyIndex(cond); ok {
		expr, err := expression.NewBuilder().
			WithKeyCondition(expression.Key(cond.Attribute).Equal(expression.Value(cond.Values[0]))).
			Build()
		if err != nil {
			return query.Page[model.DeviceOwner]{}, fmt.Errorf("%w: %w", model.ErrBadRequest, err)
		}

		out, err := r.api.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.table),
			IndexName:                 index,
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
			Limit:                     limit,
		})
		if err != nil {
			return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
		}
		raw, lastKey = out.Items, out.LastEvaluatedKey
	} else {
		expr, err := expression.NewBuilder().WithFilter(filterCondition(cond)).Build()
		if err != nil {
			return query.Page[model.DeviceOwner]{}, fmt.Errorf("%w: %w", model.ErrBadRequest, err)
		}

		out, err := r.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.table),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
			Limit:                     limit,
		})
		if err != nil {
			return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
		}
		raw, lastKey = out.Items, out.LastEvaluatedKey
	}

	var items []deviceOwnerItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}

	owners := make([]model.DeviceOwner, 0, len(items))
	for _, item := range items {
		owner, err := item.model()
		if err != nil {
			return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
		}
		owners = append(owners, owner)
	}

	cursor, err := encodeStartKey(lastKey)
	if err != nil {
		return query.Page[model.DeviceOwner]{}, model.NewRepositoryError(model.EntityDeviceOwner, err)
	}

	return query.Page[model.DeviceOwner]{Items: owners, Cursor: cursor}, nil
}

// keyIndex reports whether cond can be served by a key query and on which index.
// A nil index means the base table.
func keyIndex(cond query.Condition) (*string, bool) {
	if cond.Operator != query.OpEqual {
		return nil, false
	}
	switch cond.Attribute {
	case repository.AttrDeviceID:
		return nil, true
	case repository.AttrOwnerID:
		return aws.String(ownerIndex), true
	default:
		return nil, false
	}
}

func filterCondition(cond query.Condition) expression.ConditionBuilder {
	name := expression.Name(cond.Attribute)
	switch cond.Operator {
	case query.OpLessThan:
		return name.LessThan(expression.Value(cond.Values[0]))
	case query.OpLessOrEqual:
		return name.LessThanEqual(expression.Value(cond.Values[0]))
	case query.OpGreaterThan:
		return name.GreaterThan(expression.Value(cond.Values[0]))
	case query.OpGreaterOrEqual:
		return name.GreaterThanEqual(expression.Value(cond.Values[0]))
	case query.OpBetween:
		return name.Between(expression.Value(cond.Values[0]), expression.Value(cond.Values[1]))
	case query.OpBeginsWith:
		return name.BeginsWith(cond.Values[0].(string))
	default:
		return name.Equal(expression.Value(cond.Values[0]))
	}
}

func encodeStartKey(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}

	plain := make(map[string]string, len(key))
	if err := attributevalue.UnmarshalMap(key, &plain); err != nil {
		return "", fmt.Errorf("failed to read last evaluated key: %w", err)
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return "", fmt.Errorf("failed to encode last evaluated key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeStartKey(cursor string) (map[string]types.AttributeValue, error) {
	if cursor == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrInvalidCursor, err)
	}
	var plain map[string]string
	if err := json.Unmarshal(raw, &plain); err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrInvalidCursor, err)
	}

	key, err := attributevalue.MarshalMap(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", query.ErrInvalidCursor, err)
	}

	return key, nil
}
