package dto

import (
	"haven/internal/domains/permission/model"
	"haven/shared/constant"
	gModel "haven/shared/model"
	"haven/shared/timezone"
)

type Actions struct {
	CanView   bool `json:"can_view"`
	CanCreate bool `json:"can_create"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

func (a *Actions) FromModel(model model.RolePermission) {
	a.CanView = model.CanView
	a.CanCreate = model.CanCreate
	a.CanEdit = model.CanEdit
	a.CanDelete = model.CanDelete
}

// Matrix maps a resource to the actions a role may perform on it.
type Matrix map[string]Actions

// FullAccess grants every action on every resource.
func FullAccess() Matrix {
	matrix := Matrix{}
	for _, resource := range model.Resources {
		matrix[resource] = Actions{CanView: true, CanCreate: true, CanEdit: true, CanDelete: true}
	}

	return matrix
}

func (m Matrix) FromModels(models []model.RolePermission) {
	for _, row := range models {
		var actions Actions
		actions.FromModel(row)

		m[row.Resource] = actions
	}
}

// Allows is false for resources without a row.
func (m Matrix) Allows(resource, action string) bool {
	actions, ok := m[resource]
	if !ok {
		return false
	}

	return model.RolePermission{
		CanView:   actions.CanView,
		CanCreate: actions.CanCreate,
		CanEdit:   actions.CanEdit,
		CanDelete: actions.CanDelete,
	}.Allows(action)
}

type RolePermissionResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Actions
}

func (r *RolePermissionResponse) FromModel(model model.RolePermission) {
	r.Role = model.Role
	r.Resource = model.Resource
	r.Actions.FromModel(model)
}

type UpdateRolePermissionRequest struct {
	Role      string `json:"role"       validate:"required,oneof=admin editor viewer"`
	Resource  string `json:"resource"   validate:"required,oneof=inquiries gallery events newsletter testimonials footer users"`
	CanView   bool   `json:"can_view"`
	CanCreate bool   `json:"can_create"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

func (r *UpdateRolePermissionRequest) ToModel(user string) model.RolePermission {
	return model.RolePermission{
		Role:      r.Role,
		Resource:  r.Resource,
		CanView:   r.CanView,
		CanCreate: r.CanCreate,
		CanEdit:   r.CanEdit,
		CanDelete: r.CanDelete,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateColumns are overwritten when a role/resource row already exists.
var UpdateColumns = []string{
	model.FieldCanView,
	model.FieldCanCreate,
	model.FieldCanEdit,
	model.FieldCanDelete,
	constant.FieldModifiedAt,
	constant.FieldModifiedBy,
}
