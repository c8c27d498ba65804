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

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	api   API
	table string
}

func NewUserRepository(api API, table string) *UserRepository {
	return &UserRepository{api: api, table: table}
}

func (r *UserRepository) Get(ctx context.Context, email string) (model.User, bool, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{userKey: &types.AttributeValueMemberS{Value: email}},
	})
	if err != nil {
		return model.User{}, false, model.NewRepositoryError(model.EntityUser, err)
	}
	if out.Item == nil {
		return model.User{}, false, nil
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return model.User{}, false, model.NewRepositoryError(model.EntityUser, err)
	}

	return item.model(), true, nil
}

func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	av, err := attributevalue.MarshalMap(toUserItem(user))
	if err != nil {
		return model.NewRepositoryError(model.EntityUser, err)
	}

	if _, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(r.table), Item: av}); err != nil {
		return model.NewRepositoryError(model.EntityUser, err)
	}

	return nil
}

func (r *UserRepository) BatchGetByOwners(ctx context.Context, owners []model.DeviceOwner) ([]model.User, error) {
	emails := repository.OwnerIDs(owners)
	if len(emails) == 0 {
		return []model.User{}, nil
	}

	raw, err := batchGet(ctx, r.api, r.table, userKey, emails)
	if err != nil {
		return nil, model.NewRepositoryError(model.EntityUser, err)
	}

	var items []userItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, model.NewRepositoryError(model.EntityUser, err)
	}

	users := make([]model.User, 0, len(items))
	for _, item := range items {
		users = append(users, item.model())
	}

	return users, nil
}
