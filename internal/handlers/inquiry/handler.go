package inquiry

import (
	"haven/infras/otel"
	"haven/internal/domains/inquiry/model"
	"haven/internal/domains/inquiry/model/dto"
	"haven/internal/domains/inquiry/service"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	"haven/shared/validator"
	"haven/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldName,
	model.FieldInquiryType,
	model.FieldStatus,
}

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Delete("/{id}", handler.DeleteInquiry)
	})
}

func (handler *Handler) PublicRouter(router chi.Router) {
	router.Post("/inquiries", handler.SubmitInquiry)
}

// SubmitInquiry handles the public contact form.
// @Summary Submit a contact inquiry
// @Description Markup is stripped and the phone number is formatted before saving.
// @Tags Site
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Contact form"
// @Success 201 {object} response.Message "Inquiry submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/site/inquiries [post]
func (handler *Handler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitInquiry")
	defer scope.End()

	req := dto.CreateInquiryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Submit(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry submitted")

	response.WithMessage(w, http.StatusCreated, "Inquiry submitted successfully")
}

// GetInquiries retrieves inquiries, newest first.
// @Summary Get inquiries
// @Tags Inquiries
// @Produce json
// @Param status query string false "Filter by status" Enums(new, read, responded, archived)
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetInquiriesResponse "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
// @Security BearerAuth
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)
	queryParams.RestrictSortBy(sortableFields, constant.FieldCreatedAt, gDto.SortDirDesc)

	filterGroup := gDto.FilterGroup{}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		if !slices.Contains(model.Statuses, status) {
			response.WithError(w, failure.BadRequestFromString("status must be one of new, read, responded, archived"))

			return
		}

		filterGroup = service.StatusFilter(status)
	}

	inquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inquiries)
}

// GetStats returns inquiry counts per status.
// @Summary Inquiry stats
// @Tags Inquiries
// @Produce json
// @Success 200 {object} dto.InquiryStatsResponse
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetInquiryByID retrieves an inquiry. Opening a new inquiry marks it read.
// @Summary Get an inquiry by ID
// @Tags Inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} dto.InquiryResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, inquiry)
}

// UpdateStatus moves an inquiry through its workflow.
// @Summary Update inquiry status
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body dto.UpdateInquiryStatusRequest true "Status"
// @Success 200 {object} response.Message "Inquiry status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateInquiryStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update inquiry status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry marked " + req.Status + " by user " + user)

	response.WithMessage(w, http.StatusOK, "Inquiry status updated successfully")
}

// DeleteInquiry deletes an inquiry.
// @Summary Delete an inquiry
// @Tags Inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Message "Inquiry deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteInquiry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete inquiry")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inquiry deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
