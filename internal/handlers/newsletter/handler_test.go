package newsletter_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/infras/otel/mocks"
	"haven/internal/domains/newsletter/model/dto"
	newsletterMocks "haven/internal/domains/newsletter/service/mocks"
	"haven/internal/handlers/newsletter"
	"haven/shared/constant"
	"haven/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *newsletterMocks.MockNewsletter) {
	t.Helper()

	svc := newsletterMocks.NewMockNewsletter(gomock.NewController(t))
	handler := newsletter.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/site", handler.PublicRouter)

	return router, svc
}

func TestHandler_Subscribe(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(svc *newsletterMocks.MockNewsletter)
		wantCode int
	}{
		{
			name: "new subscriber",
			body: `{"email":"guest@example.com"}`,
			setup: func(svc *newsletterMocks.MockNewsletter) {
				svc.EXPECT().Subscribe(gomock.Any(), dto.SubscribeRequest{Email: "guest@example.com"}).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "surrounding spaces and capitals are normalized",
			body: `{"email":"  Guest@Example.COM "}`,
			setup: func(svc *newsletterMocks.MockNewsletter) {
				svc.EXPECT().Subscribe(gomock.Any(), dto.SubscribeRequest{Email: "guest@example.com"}).Return(nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid email",
			body:     `{"email":"not-an-email"}`,
			setup:    func(*newsletterMocks.MockNewsletter) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "already subscribed",
			body: `{"email":"guest@example.com"}`,
			setup: func(svc *newsletterMocks.MockNewsletter) {
				svc.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(failure.Conflict("email is already subscribed"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/site/newsletter", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_ExportSignups(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Export(gomock.Any()).Return(dto.ExportResponse{
		FileName: "newsletter-signups-2025-06-01.csv",
		Content:  []byte("Email,Signup Date\nguest@example.com,\"June 1, 2025 at 10:00 AM\"\n"),
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/newsletter/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeCSV, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="newsletter-signups-2025-06-01.csv"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), "guest@example.com")
}

func TestHandler_ExportSignups_Empty(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Export(gomock.Any()).Return(dto.ExportResponse{}, failure.NotFound("newsletter signups"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/newsletter/export", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
