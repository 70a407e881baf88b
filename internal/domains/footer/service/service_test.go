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
	footerMocks "haven/internal/domains/footer/mocks"
	"haven/internal/domains/footer/model"
	"haven/internal/domains/footer/model/dto"
	"haven/internal/domains/footer/service"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
)

func newService(t *testing.T) (service.Footer, *footerMocks.MockFooter, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := footerMocks.NewMockFooter(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestFooterService_Get(t *testing.T) {
	t.Run("defaults before first save", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.FooterSettings{}, nil)

		res, err := svc.Get(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.Defaults().Email, res.Email)
	})

	t.Run("stored row is returned as is", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.FooterSettings{ID: model.SingletonID, Email: "hi@haven.ng"}, nil)

		res, err := svc.Get(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "hi@haven.ng", res.Email)
		assert.Empty(t, res.Phone)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.FooterSettings{}, errors.New("database error"))

		_, err := svc.Get(context.Background())

		assert.Error(t, err)
	})
}

func TestFooterService_Update(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), []string{model.FieldID}, model.EditableFields).
		DoAndReturn(func(_ context.Context, footer model.FooterSettings, _, _ []string) error {
			assert.Equal(t, model.SingletonID, footer.ID)
			assert.Equal(t, "Tarkwa Bay", footer.Address)
			assert.Equal(t, "admin-1", footer.ModifiedBy)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := svc.Update(ctx, dto.UpdateFooterRequest{Address: " <b>Tarkwa Bay</b> "})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestFooterService_Public(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.FooterSettings{ID: model.SingletonID, Phone: "+234 800 000 0000"}, nil)

	res, err := svc.Public(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, "+234 800 000 0000", res.Phone)
	assert.Equal(t, model.Defaults().Address, res.Address)
}
