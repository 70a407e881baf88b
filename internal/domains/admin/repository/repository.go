package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	"haven/infras/postgres"
	"haven/internal/domains/admin/model"
	gDto "haven/shared/dto"
	gRepo "haven/shared/repository"
)

type Admin interface {
	Insert(ctx context.Context, model model.AdminProfile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdminProfile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AdminProfile, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AdminProfile]
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdminProfile](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// FilterByEmail matches the profile registered with email.
func FilterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}
