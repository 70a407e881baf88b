package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	"haven/infras/postgres"
	"haven/internal/domains/permission/model"
	gDto "haven/shared/dto"
	gRepo "haven/shared/repository"
)

type Permission interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RolePermission, error)
	Upsert(ctx context.Context, model model.RolePermission, conflictColumns, updateColumns []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RolePermission]
}

func New(db *postgres.Connection, otel otel.Otel) Permission {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RolePermission](model.EntityName, model.TableName, model.FieldRole, db, otel),
	}
}
