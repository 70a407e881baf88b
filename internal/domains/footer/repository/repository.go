package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	"haven/infras/postgres"
	"haven/internal/domains/footer/model"
	gDto "haven/shared/dto"
	gRepo "haven/shared/repository"
)

type Footer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.FooterSettings, error)
	Upsert(ctx context.Context, model model.FooterSettings, conflictColumns, updateColumns []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.FooterSettings]
}

func New(db *postgres.Connection, otel otel.Otel) Footer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.FooterSettings](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
