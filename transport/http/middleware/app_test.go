package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"haven/config"
	"haven/infras/otel/mocks"
	cacheMocks "haven/shared/cache/mocks"
	"haven/shared/constant"
	"haven/transport/http/middleware"
)

func newAppMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	cache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache), cache
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAppMiddleware_SecurityHeaders(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		wantHSTS bool
	}{
		{name: "production sends HSTS", env: constant.ServerEnvProduction, wantHSTS: true},
		{name: "development skips HSTS", env: constant.ServerEnvDevelopment, wantHSTS: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			app, _ := newAppMiddleware(t, cfg)

			rec := httptest.NewRecorder()
			app.SecurityHeaders(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, tt.wantHSTS, rec.Header().Get("Strict-Transport-Security") != "")
		})
	}
}

func TestAppMiddleware_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://sunsethaven.ng"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}
	app, _ := newAppMiddleware(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/site", nil)
	req.Header.Set("Origin", "https://sunsethaven.ng")

	rec := httptest.NewRecorder()
	app.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "https://sunsethaven.ng", rec.Header().Get("Access-Control-Allow-Origin"))
}

func rateLimitConfig(maxRequests, formMaxRequests int, trusted ...string) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.FormMaxRequests = formMaxRequests
	cfg.App.RateLimiter.WindowSeconds = 60
	cfg.App.RateLimiter.TrustedProxies = trusted

	return cfg
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	app, cache := newAppMiddleware(t, rateLimitConfig(2, 0))

	cache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(3), nil)

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/site", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestAppMiddleware_RateLimit_WithinBudget(t *testing.T) {
	app, cache := newAppMiddleware(t, rateLimitConfig(10, 0))

	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/site", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestAppMiddleware_RateLimit_FormBudget(t *testing.T) {
	app, cache := newAppMiddleware(t, rateLimitConfig(100, 3))

	cache.EXPECT().Increment(gomock.Any(), "limiter:form:203.0.113.7", 60).Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/site/inquiries", nil)
	req.RemoteAddr = "203.0.113.7:51234"

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAppMiddleware_RateLimit_CacheFailureLetsRequestThrough(t *testing.T) {
	app, cache := newAppMiddleware(t, rateLimitConfig(1, 0))

	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/site", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppMiddleware_RateLimit_ClientKey(t *testing.T) {
	tests := []struct {
		name    string
		trusted []string
		remote  string
		headers map[string]string
		wantKey string
	}{
		{
			name:   "forwarded headers ignored from untrusted peer",
			remote: "203.0.113.7:51234",
			headers: map[string]string{
				constant.RequestHeaderForwardedFor: "198.51.100.1",
				constant.RequestHeaderRealIP:       "198.51.100.2",
				constant.RequestHeaderUserAgent:    "rotating-agent/1",
			},
			wantKey: "limiter:form:203.0.113.7",
		},
		{
			name:    "rightmost untrusted hop behind trusted proxy",
			trusted: []string{"10.0.0.0/8"},
			remote:  "10.0.0.5:443",
			headers: map[string]string{constant.RequestHeaderForwardedFor: "198.51.100.1, 203.0.113.9, 10.0.0.4"},
			wantKey: "limiter:form:203.0.113.9",
		},
		{
			name:    "real ip header behind trusted proxy",
			trusted: []string{"10.0.0.5"},
			remote:  "10.0.0.5:443",
			headers: map[string]string{constant.RequestHeaderRealIP: "203.0.113.9"},
			wantKey: "limiter:form:203.0.113.9",
		},
		{
			name:    "trusted proxy without headers",
			trusted: []string{"10.0.0.0/8"},
			remote:  "10.0.0.5:443",
			wantKey: "limiter:form:10.0.0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, cache := newAppMiddleware(t, rateLimitConfig(100, 3, tt.trusted...))

			cache.EXPECT().Increment(gomock.Any(), tt.wantKey, 60).Return(int64(1), nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/site/newsletter", nil)
			req.RemoteAddr = tt.remote

			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			app.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
