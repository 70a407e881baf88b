package repository

import (
	"context"
	"haven/infras/otel/mocks"
	"haven/shared/dto"
	"haven/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testimonialRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Quote   string `db:"quote"`
	Skipped string `db:"-"`
	Note    string
	model.Metadata
}

func newTestRepository() Repository[testimonialRow] {
	return NewRepository[testimonialRow]("testimonial", "testimonials", "id", nil, mocks.NewOtel())
}

func TestDBColumns(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []string{"id", "name", "quote", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
}

func TestInsertStatement(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t,
		"INSERT INTO testimonials (id, name, quote, created_at, modified_at, created_by, modified_by) "+
			"VALUES (:id, :name, :quote, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertStatement())
}

func TestSelectColumns(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, "testimonials.id, testimonials.name", repo.selectColumns("id", "name"))
	assert.Contains(t, repo.selectColumns(), "testimonials.modified_by")
}

func TestBuildWhereClause(t *testing.T) {
	repo := newTestRepository()

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: "t-1", Operator: dto.FilterOperatorEq}},
	})
	assert.Equal(t, "WHERE (id = :id)", where)
	assert.Equal(t, map[string]any{"id": "t-1"}, args)
}

func TestMutationsRequireFilter(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	require.ErrorIs(t, err, errRequiredFilter)

	require.ErrorIs(t, repo.Update(ctx, map[string]any{"name": "x"}, dto.FilterGroup{}), errRequiredFilter)
	require.ErrorIs(t, repo.Delete(ctx, dto.FilterGroup{}), errRequiredFilter)
}
