package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	"haven/infras/kafka"
	kafkaMocks "haven/infras/kafka/mocks"
	"haven/infras/otel/mocks"
	inquiryMocks "haven/internal/domains/inquiry/mocks"
	"haven/internal/domains/inquiry/model"
	"haven/internal/domains/inquiry/model/dto"
	"haven/internal/domains/inquiry/service"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
)

type fixture struct {
	svc   service.Inquiry
	repo  *inquiryMocks.MockInquiry
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  inquiryMocks.NewMockInquiry(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Site.PhoneRegion = "NG"
	cfg.External.Kafka.Topics.InquiryCreated = "haven.inquiry.created"

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.kafka)

	return f
}

func TestInquiryService_Submit(t *testing.T) {
	valid := dto.CreateInquiryRequest{
		Name:        "Ada",
		Phone:       "08031234567",
		InquiryType: "Event booking",
		Message:     "Do you host birthdays?",
	}

	tests := []struct {
		name      string
		req       dto.CreateInquiryRequest
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "stores and publishes",
			req:  valid,
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
						assert.Equal(t, model.StatusNew, inquiry.Status)
						assert.Equal(t, "+2348031234567", inquiry.Phone)
						assert.Equal(t, constant.ContextGuest, inquiry.CreatedBy)

						return nil
					})
				f.kafka.EXPECT().
					SendMessages(gomock.Any(), "haven.inquiry.created", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 1)

						return nil
					})
			},
		},
		{
			name: "publish failure does not fail submission",
			req:  valid,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name:      "blank fields",
			req:       dto.CreateInquiryRequest{Name: " ", Phone: "1", InquiryType: "x", Message: "<p></p>"},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req:  valid,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			err := f.svc.Submit(context.Background(), tt.req)

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

func TestInquiryService_Get(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(f fixture)
		wantStatus string
		wantCode   int
	}{
		{
			name: "new inquiry is marked read",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "inq-1", Status: model.StatusNew}, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRead, fields[model.FieldStatus])

						return nil
					})
			},
			wantStatus: model.StatusRead,
		},
		{
			name: "responded inquiry is left alone",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "inq-1", Status: model.StatusResponded}, nil)
			},
			wantStatus: model.StatusResponded,
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), "inq-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	f := newService(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusArchived, fields[model.FieldStatus])
			assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
	err := f.svc.UpdateStatus(ctx, dto.UpdateInquiryStatusRequest{Status: model.StatusArchived}, "inq-1")

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
}

func TestInquiryService_Delete(t *testing.T) {
	f := newService(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Delete(context.Background(), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestInquiryService_Stats(t *testing.T) {
	f := newService(t)

	gomock.InOrder(
		f.repo.EXPECT().Count(gomock.Any(), service.StatusFilter(model.StatusNew)).Return(3, nil),
		f.repo.EXPECT().Count(gomock.Any(), service.StatusFilter(model.StatusRead)).Return(2, nil),
		f.repo.EXPECT().Count(gomock.Any(), service.StatusFilter(model.StatusResponded)).Return(1, nil),
		f.repo.EXPECT().Count(gomock.Any(), service.StatusFilter(model.StatusArchived)).Return(0, nil),
	)

	res, err := f.svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dto.InquiryStatsResponse{Total: 6, New: 3, Read: 2, Responded: 1}, res)
}
