package service_test

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	kafkaMocks "haven/infras/kafka/mocks"
	"haven/infras/otel/mocks"
	newsletterMocks "haven/internal/domains/newsletter/mocks"
	"haven/internal/domains/newsletter/model"
	"haven/internal/domains/newsletter/model/dto"
	"haven/internal/domains/newsletter/service"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	gModel "haven/shared/model"
)

func newService(t *testing.T) (service.Newsletter, *newsletterMocks.MockNewsletter, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := newsletterMocks.NewMockNewsletter(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.Kafka.Topics.NewsletterSubscribed = "haven.newsletter.subscribed"

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockKafka), mockRepo, mockKafka
}

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		setupMock func(repo *newsletterMocks.MockNewsletter, kafka *kafkaMocks.MockClient)
		wantCode  int
	}{
		{
			name:  "new subscriber",
			email: "  Guest@Example.com ",
			setupMock: func(repo *newsletterMocks.MockNewsletter, kafka *kafkaMocks.MockClient) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, signup model.NewsletterSignup) error {
						assert.Equal(t, "guest@example.com", signup.Email)
						assert.Equal(t, constant.ContextGuest, signup.CreatedBy)

						return nil
					})
				kafka.EXPECT().SendMessages(gomock.Any(), "haven.newsletter.subscribed", gomock.Any()).Return(nil)
			},
		},
		{
			name:  "already subscribed",
			email: "guest@example.com",
			setupMock: func(repo *newsletterMocks.MockNewsletter, _ *kafkaMocks.MockClient) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: 409,
		},
		{
			name:  "database error",
			email: "guest@example.com",
			setupMock: func(repo *newsletterMocks.MockNewsletter, _ *kafkaMocks.MockClient) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, kafka := newService(t)
			tt.setupMock(repo, kafka)

			err := svc.Subscribe(context.Background(), dto.SubscribeRequest{Email: tt.email})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewsletterService_GetAll(t *testing.T) {
	svc, repo, _ := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.NewsletterSignup{{ID: "1", Email: "a@b.co"}}, nil)

	res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Signups, 1)
}

func TestNewsletterService_Delete(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	err := svc.Delete(context.Background(), "signup-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestNewsletterService_Export(t *testing.T) {
	t.Run("renders csv", func(t *testing.T) {
		svc, repo, _ := newService(t)

		signedUp := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldEmail, constant.FieldCreatedAt).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.NewsletterSignup, error) {
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				assert.Zero(t, params.Limit)

				return []model.NewsletterSignup{
					{Email: "a@b.co", Metadata: gModel.Metadata{CreatedAt: signedUp}},
					{Email: "c@d.co", Metadata: gModel.Metadata{CreatedAt: signedUp}},
				}, nil
			})

		res, err := svc.Export(context.Background())
		assert.NoError(t, err)

		assert.True(t, strings.HasPrefix(res.FileName, model.ExportFilePrefix))
		assert.True(t, strings.HasSuffix(res.FileName, model.ExportFileExt))

		rows, err := csv.NewReader(strings.NewReader(string(res.Content))).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, rows, 3)
		assert.Equal(t, model.ExportHeader, rows[0])
		assert.Equal(t, "a@b.co", rows[1][0])
		assert.Contains(t, rows[1][1], "2025")
	})

	t.Run("nothing to export", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := svc.Export(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
