package model

import "haven/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID           = "id"
	FieldGuestName    = "guest_name"
	FieldIsActive     = "is_active"
	FieldDisplayOrder = "display_order"
)

type Testimonial struct {
	ID           string  `db:"id"`
	GuestName    string  `db:"guest_name"`
	Quote        string  `db:"quote"`
	GuestRole    *string `db:"guest_role"`
	IsActive     bool    `db:"is_active"`
	DisplayOrder int     `db:"display_order"`
	model.Metadata
}

// Author is the attribution line shown under the quote.
func (t Testimonial) Author() string {
	if t.GuestRole == nil || *t.GuestRole == "" {
		return t.GuestName
	}

	return t.GuestName + ", " + *t.GuestRole
}
