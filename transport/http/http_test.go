package http

import (
	"haven/config"
	"haven/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *HTTP {
	h := New(&config.Config{}, router.Router{})
	h.once.Do(func() {
		h.mux = chi.NewRouter()
		h.mux.Get(healthPath, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	return h
}

func TestHTTP_ServeHTTP_HealthDuringGracePeriod(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer()
			h.state.Store(int32(tt.state))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
