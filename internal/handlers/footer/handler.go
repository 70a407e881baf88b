package footer

import (
	"haven/infras/otel"
	"haven/internal/domains/footer/model/dto"
	"haven/internal/domains/footer/service"
	"haven/shared/constant"
	"haven/shared/validator"
	"haven/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Footer
	otel    otel.Otel
}

func New(service service.Footer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/footer", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFooter)
		routerGroup.Put("/", handler.UpdateFooter)
	})
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/footer", handler.GetPublicFooter)
}

// GetFooter returns the stored footer settings.
// @Summary Get footer settings
// @Tags Footer
// @Produce json
// @Success 200 {object} dto.FooterResponse
// @Failure 500 {object} response.Error
// @Router /v1/footer [get]
// @Security BearerAuth
func (handler *Handler) GetFooter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFooter")
	defer scope.End()

	footer, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get footer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, footer)
}

// UpdateFooter saves the footer settings, creating them on first save.
// @Summary Update footer settings
// @Tags Footer
// @Accept json
// @Produce json
// @Param request body dto.UpdateFooterRequest true "Footer settings"
// @Success 200 {object} response.Message "Footer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/footer [put]
// @Security BearerAuth
func (handler *Handler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFooter")
	defer scope.End()

	req := dto.UpdateFooterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update footer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Footer updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Footer updated successfully")
}

// GetPublicFooter returns the footer block for the site.
// @Summary Public footer
// @Tags Site
// @Produce json
// @Success 200 {object} dto.PublicFooter
// @Failure 500 {object} response.Error
// @Router /v1/site/footer [get]
func (handler *Handler) GetPublicFooter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicFooter")
	defer scope.End()

	footer, err := handler.service.Public(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public footer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, footer)
}
