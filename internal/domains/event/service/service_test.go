package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	"haven/infras/otel/mocks"
	eventMocks "haven/internal/domains/event/mocks"
	"haven/internal/domains/event/model"
	"haven/internal/domains/event/model/dto"
	"haven/internal/domains/event/service"
	mediaMocks "haven/internal/domains/media/service/mocks"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
)

func newService(t *testing.T) (service.Event, *eventMocks.MockEvent, *cacheMocks.MockRedisCache, *mediaMocks.MockMedia) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMedia := mediaMocks.NewMockMedia(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Site.DefaultPaymentURL = "https://paystack.com"

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockMedia), mockRepo, mockCache, mockMedia
}

func createRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:        "Sunset Sessions",
		Description:  "Live music at golden hour",
		EventDate:    "2030-01-15",
		FlierURL:     "https://cdn.example.com/events/flier.jpg",
		PricingTiers: model.PricingTiers{{Label: "Regular", Price: "20000"}, {Label: "VIP", Price: "45000"}},
	}
}

func TestEventService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func(repo *eventMocks.MockEvent)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  createRequest(),
			setupMock: func(repo *eventMocks.MockEvent) {
				repo.EXPECT().Max(gomock.Any(), model.FieldDisplayOrder, gomock.Any()).Return(1, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event model.Event) error {
						assert.Equal(t, 2, event.DisplayOrder)
						assert.InDelta(t, 20000, event.Cost, 0.001)
						assert.Equal(t, "https://paystack.com", event.PaymentURL)

						return nil
					})
			},
		},
		{
			name: "no valid pricing tier",
			req: func() dto.CreateEventRequest {
				req := createRequest()
				req.PricingTiers = model.PricingTiers{{Label: "Regular"}}

				return req
			}(),
			setupMock: func(repo *eventMocks.MockEvent) {
				repo.EXPECT().Max(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			req:  createRequest(),
			setupMock: func(repo *eventMocks.MockEvent) {
				repo.EXPECT().Max(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Get(t *testing.T) {
	svc, repo, cache, _ := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestEventService_Update(t *testing.T) {
	const storedFlier = "https://cdn.example.com/events/flier.jpg"

	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		setupMock func(repo *eventMocks.MockEvent, media *mediaMocks.MockMedia)
		wantErr   bool
	}{
		{
			name: "recomputes cost from tiers",
			req:  dto.UpdateEventRequest{PricingTiers: model.PricingTiers{{Label: "Door", Price: "30,000"}}},
			setupMock: func(repo *eventMocks.MockEvent, _ *mediaMocks.MockMedia) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldFlierURL).
					Return(model.Event{ID: "event-1", FlierURL: storedFlier}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						cost, ok := fields[model.FieldCost].(*float64)
						assert.True(t, ok)
						assert.InDelta(t, 30000, *cost, 0.001)

						return nil
					})
			},
		},
		{
			name: "toggle active leaves cost alone",
			req: func() dto.UpdateEventRequest {
				active := false

				return dto.UpdateEventRequest{IsActive: &active}
			}(),
			setupMock: func(repo *eventMocks.MockEvent, _ *mediaMocks.MockMedia) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldFlierURL).
					Return(model.Event{ID: "event-1", FlierURL: storedFlier}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						_, hasCost := fields[model.FieldCost]
						assert.False(t, hasCost)

						return nil
					})
			},
		},
		{
			name:      "rejects empty tiers",
			req:       dto.UpdateEventRequest{PricingTiers: model.PricingTiers{}},
			setupMock: func(_ *eventMocks.MockEvent, _ *mediaMocks.MockMedia) {},
			wantErr:   true,
		},
		{
			name: "replacing the flier removes the old object",
			req:  dto.UpdateEventRequest{FlierURL: "https://cdn.example.com/events/new.jpg"},
			setupMock: func(repo *eventMocks.MockEvent, media *mediaMocks.MockMedia) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldFlierURL).
					Return(model.Event{ID: "event-1", FlierURL: storedFlier}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				media.EXPECT().DeleteImages(gomock.Any(), model.EntityName, storedFlier).Return(nil)
			},
		},
		{
			name: "not found",
			req:  dto.UpdateEventRequest{Title: "New title"},
			setupMock: func(repo *eventMocks.MockEvent, _ *mediaMocks.MockMedia) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldFlierURL).
					Return(model.Event{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, media := newService(t)
			tt.setupMock(repo, media)

			err := svc.Update(context.Background(), tt.req, "event-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, repo, _, media := newService(t)

	repo.EXPECT().
		Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldFlierURL).
		Return(model.Event{ID: "event-1", FlierURL: "https://cdn.example.com/events/flier.jpg"}, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	media.EXPECT().
		DeleteImages(gomock.Any(), model.EntityName, "https://cdn.example.com/events/flier.jpg").
		Return(nil)

	err := svc.Delete(context.Background(), "event-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestEventService_Stats(t *testing.T) {
	svc, repo, _, _ := newService(t)

	gomock.InOrder(
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil),
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
	)

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dto.EventStatsResponse{Total: 6, Active: 4, Upcoming: 2}, res)
}

func TestEventService_Upcoming(t *testing.T) {
	svc, repo, cache, _ := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Event, error) {
			assert.Equal(t, model.UpcomingLimit, params.Limit)
			assert.Equal(t, model.FieldEventDate, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)
			assert.Len(t, filter.Filters, 2)

			return []model.Event{{ID: "event-1", Title: "Rave", EventDate: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}}, nil
		})

	res, err := svc.Upcoming(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "2030-01-01", res[0].EventDate)
}
