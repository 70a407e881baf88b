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
	galleryMocks "haven/internal/domains/gallery/mocks"
	"haven/internal/domains/gallery/model"
	"haven/internal/domains/gallery/model/dto"
	"haven/internal/domains/gallery/service"
	mediaDto "haven/internal/domains/media/model/dto"
	mediaMocks "haven/internal/domains/media/service/mocks"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
)

type fixture struct {
	repo  *galleryMocks.MockGallery
	cache *cacheMocks.MockRedisCache
	media *mediaMocks.MockMedia
	cfg   *config.Config
	svc   service.Gallery
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  galleryMocks.NewMockGallery(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		media: mediaMocks.NewMockMedia(ctrl),
		cfg:   &config.Config{},
	}
	f.cfg.Cache.TTL = 3600
	f.svc = service.New(f.repo, f.cfg, f.cache, mocks.NewOtel(), f.media)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestGalleryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful creation appends after last image",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Max(gomock.Any(), model.FieldDisplayOrder, gomock.Any()).
					Return(3, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, image model.GalleryImage) error {
						assert.Equal(t, 4, image.DisplayOrder)
						assert.True(t, image.IsActive)
						assert.Equal(t, "test-user-id", image.CreatedBy)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "max display order error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Max(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Max(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(userContext(), dto.CreateGalleryImageRequest{
				ImageURL: "https://cdn.example.com/gallery/a.jpg",
			})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.GalleryImage{{ID: "1"}, {ID: "2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Images, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestGalleryService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "gallery:get:image-1", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.GalleryImage{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "found in database",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.GalleryImage{ID: "image-1", ImageURL: "https://cdn.example.com/a.jpg"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Get(context.Background(), "image-1")

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

func TestGalleryService_Update(t *testing.T) {
	const storedURL = "https://cdn.example.com/gallery/a.jpg"

	inactive := false
	cleared := ""

	tests := []struct {
		name      string
		req       dto.UpdateGalleryImageRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "toggle active",
			req:  dto.UpdateGalleryImageRequest{IsActive: &inactive},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{ID: "image-1", ImageURL: storedURL}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &inactive, fields[model.FieldIsActive])
						assert.Equal(t, "test-user-id", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "clears caption and tag",
			req:  dto.UpdateGalleryImageRequest{Caption: &cleared, Tag: &cleared},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{ID: "image-1", ImageURL: storedURL}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, model.FieldCaption)
						assert.Nil(t, fields[model.FieldCaption])
						assert.Contains(t, fields, model.FieldTag)
						assert.Nil(t, fields[model.FieldTag])

						return nil
					})
			},
		},
		{
			name: "replacing the image removes the old object",
			req:  dto.UpdateGalleryImageRequest{ImageURL: "https://cdn.example.com/gallery/b.jpg"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{ID: "image-1", ImageURL: storedURL}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.media.EXPECT().
					DeleteImages(gomock.Any(), model.EntityName, storedURL).
					Return(nil)
			},
		},
		{
			name: "same image url keeps the object",
			req:  dto.UpdateGalleryImageRequest{ImageURL: storedURL},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{ID: "image-1", ImageURL: storedURL}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "not found",
			req:  dto.UpdateGalleryImageRequest{IsActive: &inactive},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update fails keeps the object",
			req:  dto.UpdateGalleryImageRequest{ImageURL: "https://cdn.example.com/gallery/b.jpg"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldImageURL).
					Return(model.GalleryImage{ID: "image-1", ImageURL: storedURL}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(userContext(), tt.req, "image-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "deletes record and stored object",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.GalleryImage{ID: "image-1", ImageURL: "https://cdn.example.com/gallery/a.jpg"}, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				f.media.EXPECT().
					DeleteImages(gomock.Any(), model.EntityName, "https://cdn.example.com/gallery/a.jpg").
					Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.GalleryImage{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.GalleryImage{ID: "image-1"}, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(userContext(), "image-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_Stats(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(10, nil),
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(7, nil),
	)

	res, err := f.svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dto.GalleryStatsResponse{Total: 10, Active: 7, Inactive: 3}, res)
}

func TestGalleryService_HeroImages(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldImageURL).
			Return([]model.GalleryImage{}, nil)

		res, err := f.svc.HeroImages(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.DefaultHeroImages, res)
	})

	t.Run("configured defaults win over bundled ones", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.App.Site.DefaultHeroImages = []string{"/hero.jpg"}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldImageURL).
			Return(nil, nil)

		res, err := f.svc.HeroImages(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, []string{"/hero.jpg"}, res)
	})

	t.Run("active hero images in display order", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldImageURL).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.GalleryImage, error) {
				assert.Equal(t, model.FieldDisplayOrder, params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.GalleryImage{{ImageURL: "https://cdn.example.com/1.jpg"}, {ImageURL: "https://cdn.example.com/2.jpg"}}, nil
			})

		res, err := f.svc.HeroImages(context.Background())

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, res)
	})
}

func TestGalleryService_PublicImages(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.GalleryImage, error) {
			assert.Equal(t, model.PublicGalleryLimit, params.Limit)

			return []model.GalleryImage{{ID: "1", ImageURL: "https://cdn.example.com/1.jpg"}}, nil
		})

	res, err := f.svc.PublicImages(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "https://cdn.example.com/1.jpg", res[0].ImageURL)
}

func TestGalleryService_Experiences(t *testing.T) {
	f := newFixture(t)
	tag := model.TagCuratedNetworking

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldTag, model.FieldImageURL).
		Return([]model.GalleryImage{{Tag: &tag, ImageURL: "https://cdn.example.com/network.jpg"}}, nil)

	res, err := f.svc.Experiences(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res, 4)
	assert.Equal(t, "/premium-camping.jpg", res[0].Image)
	assert.Equal(t, "https://cdn.example.com/network.jpg", res[3].Image)
}

func TestGalleryService_UploadImage(t *testing.T) {
	f := newFixture(t)

	f.media.EXPECT().
		UploadImage(gomock.Any(), model.EntityName, gomock.Any()).
		Return(mediaDto.UploadImageResponse{URL: "https://cdn.example.com/gallery/x.jpg", FileName: "x.jpg"}, nil)

	res, err := f.svc.UploadImage(context.Background(), mediaDto.UploadImageRequest{})

	assert.NoError(t, err)
	assert.Equal(t, "x.jpg", res.FileName)
}
