package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dtroode/pits-server/internal/model"
	"github.com/dtroode/pits-server/internal/repository"
)

var _ model.DeviceStore = (*DeviceRepository)(nil)

type DeviceRepository struct {
	api   API
	table string
}

func NewDeviceRepository(api API, table string) *DeviceRepository {
	return &DeviceRepository{api: api, table: table}
}

func (r *DeviceRepository) Get(ctx context.Context, id string) (model.Device, bool, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{deviceKey: &types.AttributeValueMemberS{Value: id}},
	})
	if err != nil {
		return model.Device{}, false, model.NewRepositoryError(model.EntityDevice, err)
	}
	if out.Item == nil {
		return model.Device{}, false, nil
	}

	var item deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.Device{}, false, model.NewRepositoryError(model.EntityDevice, err)
	}

	return item.model(), true, nil
}

func (r *DeviceRepository) Save(ctx context.Context, device model.Device) error {
	av, err := attributevalue.MarshalMap(toDeviceItem(device))
	if err != nil {
		return model.NewRepositoryError(model.EntityDevice, err)
	}

	if _, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.table), Item: av}); err != nil {
		return model.NewRepositoryError(model.EntityDevice, err)
	}

	return nil
}

func (r *DeviceRepository) BatchGetByOwners(ctx context.Context, owners []model.DeviceOwner) ([]model.Device, error) {
	ids := repository.DeviceIDs(owners)
	if len(ids) == 0 {
		return []model.Device{}, nil
	}

	raw, err := batchGet(ctx, r.api, r.table, deviceKey, ids)
	if err != nil {
		return nil, model.NewRepositoryError(model.EntityDevice, err)
	}

	var items []deviceItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, model.NewRepositoryError(model.EntityDevice, err)
	}

	devices := make([]model.Device, 0, len(items))
	for _, item := range items {
		devices = append(devices, item.model())
	}

	return devices, nil
}
