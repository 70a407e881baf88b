package model

import "haven/shared/model"

const (
	TableName  = "role_permissions"
	EntityName = "permission"

	FieldRole      = "role"
	FieldResource  = "resource"
	FieldCanView   = "can_view"
	FieldCanCreate = "can_create"
	FieldCanEdit   = "can_edit"
	FieldCanDelete = "can_delete"
)

const (
	ResourceInquiries    = "inquiries"
	ResourceGallery      = "gallery"
	ResourceEvents       = "events"
	ResourceNewsletter   = "newsletter"
	ResourceTestimonials = "testimonials"
	ResourceFooter       = "footer"
	ResourceUsers        = "users"
)

var Resources = []string{
	ResourceInquiries,
	ResourceGallery,
	ResourceEvents,
	ResourceNewsletter,
	ResourceTestimonials,
	ResourceFooter,
	ResourceUsers,
}

const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

type RolePermission struct {
	Role      string `db:"role"`
	Resource  string `db:"resource"`
	CanView   bool   `db:"can_view"`
	CanCreate bool   `db:"can_create"`
	CanEdit   bool   `db:"can_edit"`
	CanDelete bool   `db:"can_delete"`
	model.Metadata
}

// Allows reports whether the row grants action. Unknown actions are denied.
func (p RolePermission) Allows(action string) bool {
	switch action {
	case ActionView:
		return p.CanView
	case ActionCreate:
		return p.CanCreate
	case ActionEdit:
		return p.CanEdit
	case ActionDelete:
		return p.CanDelete
	default:
		return false
	}
}
