package site

import (
	"haven/infras/otel"
	"haven/internal/domains/site/service"
	"haven/shared/constant"
	"haven/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Site
	otel    otel.Otel
}

func New(service service.Site, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/", handler.GetSite)
}

// GetSite returns everything the landing page renders in one payload.
// @Summary Landing page content
// @Description Hero images, gallery, upcoming events, testimonials, experiences and footer.
// @Tags Site
// @Produce json
// @Success 200 {object} dto.SiteResponse
// @Failure 500 {object} response.Error
// @Router /v1/site [get]
func (handler *Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSite")
	defer scope.End()

	site, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get site content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, site)
}
