package shared_test

import (
	"context"
	"errors"
	"fmt"
	"haven/shared"
	"haven/shared/cache/mocks"
	"haven/shared/constant"
	"haven/shared/dto"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 5, limit: 0, want: 1},
		{total: 25, limit: -1, want: 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

type eventUpdate struct {
	Title    string   `db:"title"`
	Cost     int      `db:"cost"`
	IsActive *bool    `db:"is_active"`
	Note     string   // untagged
	Tags     []string `db:"tags"`
}

func TestTransformFields(t *testing.T) {
	inactive := false

	fields := shared.TransformFields(eventUpdate{Title: "Paint & Sip", IsActive: &inactive, Note: "ignored"}, "admin-1")

	assert.Equal(t, "Paint & Sip", fields["title"])
	assert.Equal(t, &inactive, fields["is_active"])
	assert.NotContains(t, fields, "cost")
	assert.NotContains(t, fields, "tags")
	assert.NotContains(t, fields, "Note")
	assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])
	assert.WithinDuration(t, time.Now(), fields[constant.FieldModifiedAt].(time.Time), time.Minute)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("event-1", "id", "events")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(events.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "event-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "site:landing", shared.BuildCacheKey("site", "landing"))
	assert.Equal(t, "events", shared.BuildCacheKey("events"))
	assert.Equal(t, "limiter:1.2.3.4:curl", shared.BuildCacheKey("limiter", "1.2.3.4", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 12, SortBy: "created_at", SortDir: dto.SortDirDesc}
	pool := dto.FilterGroup{Filters: []any{dto.Filter{Field: "category", Value: "pool", Operator: dto.FilterOperatorEq}}}
	bar := dto.FilterGroup{Filters: []any{dto.Filter{Field: "category", Value: "bar", Operator: dto.FilterOperatorEq}}}

	first := shared.BuildCacheKeyWithQuery("gallery", params, pool)

	assert.True(t, strings.HasPrefix(first, "gallery:"))
	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("gallery", params, pool))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("gallery", params, bar))

	params.Page = 2
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("gallery", params, pool))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "events*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "events")

	redisCache.EXPECT().Clear(gomock.Any(), "site*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "site")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, shared.IsUniqueViolation(&pq.Error{Code: constant.PqErrorCodeUniqueViolation}))
	assert.True(t, shared.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation})))
	assert.False(t, shared.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, shared.IsUniqueViolation(errors.New("boom")))
}
