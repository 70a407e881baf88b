package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"haven/infras/otel"
	"haven/infras/postgres"
	"haven/internal/domains/newsletter/model"
	gDto "haven/shared/dto"
	gRepo "haven/shared/repository"
)

type Newsletter interface {
	Insert(ctx context.Context, model model.NewsletterSignup) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.NewsletterSignup, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.NewsletterSignup]
}

func New(db *postgres.Connection, otel otel.Otel) Newsletter {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.NewsletterSignup](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
