package gallery

import (
	"haven/infras/otel"
	"haven/internal/domains/gallery/model"
	"haven/internal/domains/gallery/model/dto"
	"haven/internal/domains/gallery/service"
	mediaDto "haven/internal/domains/media/model/dto"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	"haven/shared/validator"
	"haven/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortableFields = []string{
	model.FieldDisplayOrder,
	model.FieldCategory,
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
}

type Handler struct {
	service service.Gallery
	otel    otel.Otel
}

func New(service service.Gallery, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/galleries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateImage)
		routerGroup.Get("/", handler.GetImages)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Post("/upload", handler.UploadImage)
		routerGroup.Get("/{id}", handler.GetImageByID)
		routerGroup.Patch("/{id}", handler.UpdateImage)
		routerGroup.Delete("/{id}", handler.DeleteImage)
	})
}

// PublicRouter mounts the visitor facing gallery reads.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/hero", handler.GetHeroImages)
	router.Get("/gallery", handler.GetPublicImages)
	router.Get("/experiences", handler.GetExperiences)
}

// CreateImage handles adding an image to the gallery.
// @Summary Add a gallery image
// @Description Add an image at the end of the gallery. New images are active.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body dto.CreateGalleryImageRequest true "Create Gallery Image Request"
// @Success 201 {object} response.Message "Gallery image created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [post]
// @Security BearerAuth
func (handler *Handler) CreateImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateImage")
	defer scope.End()

	req := dto.CreateGalleryImageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gallery image")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Gallery image created successfully")
}

// GetImages retrieves gallery images.
// @Summary Get gallery images
// @Description Retrieve gallery images ordered by display order, optionally filtered by category and state.
// @Tags Gallery
// @Produce json
// @Param category query string false "Filter by category"
// @Param is_active query bool false "Filter by active state"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} dto.GetGalleryImagesResponse "List of gallery images"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries [get]
// @Security BearerAuth
func (handler *Handler) GetImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)
	queryParams.RestrictSortBy(sortableFields, model.FieldDisplayOrder, gDto.SortDirAsc)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if isActive := r.URL.Query().Get(constant.RequestParamIsActive); isActive != "" {
		active, err := strconv.ParseBool(isActive)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("is_active must be true or false"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active,
			Table:    model.TableName,
		})
	}

	images, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery images")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery images retrieved successfully")

	response.WithJSON(w, http.StatusOK, images)
}

// GetStats returns image counters.
// @Summary Gallery stats
// @Tags Gallery
// @Produce json
// @Success 200 {object} dto.GalleryStatsResponse
// @Failure 500 {object} response.Error
// @Router /v1/galleries/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// GetImageByID retrieves a gallery image by its ID.
// @Summary Get a gallery image by ID
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery Image ID"
// @Success 200 {object} dto.GalleryImageResponse "Gallery image details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetImageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetImageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	image, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gallery image by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image retrieved successfully")

	response.WithJSON(w, http.StatusOK, image)
}

// UpdateImage updates an existing gallery image.
// @Summary Update a gallery image
// @Description Change caption, category, tag, placement flags, active state or order.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path string true "Gallery Image ID"
// @Param request body dto.UpdateGalleryImageRequest true "Update Gallery Image Request"
// @Success 200 {object} response.Message "Gallery image updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGalleryImageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Gallery image updated successfully")
}

// DeleteImage deletes a gallery image and its stored file.
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Gallery Image ID"
// @Success 200 {object} response.Message "Gallery image deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete gallery image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Gallery image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Gallery image deleted successfully")
}

// UploadImage handles image upload to object storage.
// @Summary Upload a gallery image file
// @Description Upload an image file and return its public URL. Wide images are downscaled.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} mediaDto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/galleries/upload [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := mediaDto.UploadImageRequest{
		Image:     fileHeader,
		ImageFile: file,
	}

	res, err := handler.service.UploadImage(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload file")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetHeroImages lists the hero carousel image URLs.
// @Summary Hero images
// @Tags Site
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} response.Error
// @Router /v1/site/hero [get]
func (handler *Handler) GetHeroImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHeroImages")
	defer scope.End()

	images, err := handler.service.HeroImages(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hero images")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

// GetPublicImages lists the images shown in the public gallery.
// @Summary Public gallery
// @Tags Site
// @Produce json
// @Success 200 {array} dto.PublicImage
// @Failure 500 {object} response.Error
// @Router /v1/site/gallery [get]
func (handler *Handler) GetPublicImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicImages")
	defer scope.End()

	images, err := handler.service.PublicImages(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get public gallery")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, images)
}

// GetExperiences lists the experience cards.
// @Summary Experience cards
// @Tags Site
// @Produce json
// @Success 200 {array} dto.Experience
// @Failure 500 {object} response.Error
// @Router /v1/site/experiences [get]
func (handler *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperiences")
	defer scope.End()

	experiences, err := handler.service.Experiences(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experiences")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, experiences)
}
