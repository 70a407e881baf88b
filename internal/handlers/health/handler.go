package health

import (
	"haven/infras/otel"
	"haven/internal/domains/health/service"
	"haven/shared/constant"
	"haven/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Health
	otel    otel.Otel
}

func New(service service.Health, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check reports whether the database answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.HealthResponse
// @Failure 503 {object} response.Error
// @Router /v1/health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	res, err := handler.service.Check(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed")

		response.WithJSON(w, http.StatusInternalServerError, res)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
