package newsletter

import (
	"haven/infras/otel"
	"haven/internal/domains/newsletter/model"
	"haven/internal/domains/newsletter/model/dto"
	"haven/internal/domains/newsletter/service"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/validator"
	"haven/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldEmail,
}

type Handler struct {
	service service.Newsletter
	otel    otel.Otel
}

func New(service service.Newsletter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/newsletter", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSignups)
		routerGroup.Get("/export", handler.ExportSignups)
		routerGroup.Delete("/{id}", handler.DeleteSignup)
	})
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/newsletter", handler.Subscribe)
}

// Subscribe handles the public newsletter form.
// @Summary Subscribe to the newsletter
// @Tags Site
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 201 {object} response.Message "Subscribed successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/site/newsletter [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Subscribe(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Subscribed successfully")
}

// GetSignups retrieves newsletter signups, newest first.
// @Summary Get newsletter signups
// @Tags Newsletter
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetSignupsResponse
// @Failure 500 {object} response.Error
// @Router /v1/newsletter [get]
// @Security BearerAuth
func (handler *Handler) GetSignups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSignups")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)
	queryParams.RestrictSortBy(sortableFields, constant.FieldCreatedAt, gDto.SortDirDesc)

	signups, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get newsletter signups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, signups)
}

// ExportSignups downloads every signup as CSV.
// @Summary Export newsletter signups
// @Tags Newsletter
// @Produce text/csv
// @Success 200 {file} file "newsletter-signups-YYYY-MM-DD.csv"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/newsletter/export [get]
// @Security BearerAuth
func (handler *Handler) ExportSignups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportSignups")
	defer scope.End()

	export, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export newsletter signups")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Newsletter signups exported by user " + user)

	response.WithAttachment(w, constant.ContentTypeCSV, export.FileName, export.Content)
}

// DeleteSignup removes a subscriber.
// @Summary Delete a newsletter signup
// @Tags Newsletter
// @Produce json
// @Param id path string true "Signup ID"
// @Success 200 {object} response.Message "Signup deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/newsletter/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSignup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSignup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete newsletter signup")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Newsletter signup deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Signup deleted successfully")
}
