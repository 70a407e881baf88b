package permission

import (
	"haven/infras/otel"
	"haven/internal/domains/permission/model/dto"
	"haven/internal/domains/permission/service"
	"haven/shared/constant"
	"haven/shared/validator"
	"haven/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Permission
	otel    otel.Otel
}

func New(service service.Permission, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/permissions", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPermissions)
		routerGroup.Put("/", handler.UpdatePermission)
	})
}

// GetPermissions lists every role grant.
// @Summary Get role permissions
// @Tags Permissions
// @Produce json
// @Success 200 {array} dto.RolePermissionResponse
// @Failure 500 {object} response.Error
// @Router /v1/permissions [get]
// @Security BearerAuth
func (handler *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPermissions")
	defer scope.End()

	permissions, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get permissions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, permissions)
}

// UpdatePermission sets what a role may do on a resource.
// @Summary Update a role permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body dto.UpdateRolePermissionRequest true "Role permission"
// @Success 200 {object} response.Message "Permission updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/permissions [put]
// @Security BearerAuth
func (handler *Handler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePermission")
	defer scope.End()

	req := dto.UpdateRolePermissionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update permission")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Permission of " + req.Role + " on " + req.Resource + " updated by user " + user)

	response.WithMessage(w, http.StatusOK, "Permission updated successfully")
}
