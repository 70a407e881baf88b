package inquiry_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/infras/otel/mocks"
	"haven/internal/domains/inquiry/model"
	"haven/internal/domains/inquiry/model/dto"
	"haven/internal/domains/inquiry/service"
	inquiryMocks "haven/internal/domains/inquiry/service/mocks"
	"haven/internal/handlers/inquiry"
	gDto "haven/shared/dto"
)

func newRouter(t *testing.T) (chi.Router, *inquiryMocks.MockInquiry) {
	t.Helper()

	svc := inquiryMocks.NewMockInquiry(gomock.NewController(t))
	handler := inquiry.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetInquiries(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), service.StatusFilter(model.StatusNew)).
			Return(dto.GetInquiriesResponse{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inquiries?status=new", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no status lists everything", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gDto.FilterGroup{}).Return(dto.GetInquiriesResponse{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inquiries", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/inquiries?status=spam", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
