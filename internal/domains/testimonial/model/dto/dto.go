package dto

import (
	"haven/internal/domains/testimonial/model"
	"haven/shared"
	gDto "haven/shared/dto"
	gModel "haven/shared/model"
	"haven/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	GuestName string  `json:"guest_name" validate:"required,max=100"`
	Quote     string  `json:"quote"      validate:"required,max=2000"`
	GuestRole *string `json:"guest_role" validate:"omitempty,max=100"`
}

func (c *CreateTestimonialRequest) ToModel(user string, displayOrder int) model.Testimonial {
	role := c.GuestRole
	if role != nil && *role == "" {
		role = nil
	}

	return model.Testimonial{
		ID:           uuid.NewString(),
		GuestName:    c.GuestName,
		Quote:        c.Quote,
		GuestRole:    role,
		IsActive:     true,
		DisplayOrder: displayOrder,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateTestimonialRequest struct {
	GuestName    string  `db:"guest_name"    json:"guest_name"    validate:"omitempty,max=100"`
	Quote        string  `db:"quote"         json:"quote"         validate:"omitempty,max=2000"`
	GuestRole    *string `db:"guest_role"    json:"guest_role"    validate:"omitempty,max=100"`
	IsActive     *bool   `db:"is_active"     json:"is_active"`
	DisplayOrder *int    `db:"display_order" json:"display_order" validate:"omitempty,gte=0"`
}

type TestimonialResponse struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guest_name"`
	Quote        string  `json:"quote"`
	GuestRole    *string `json:"guest_role"`
	IsActive     bool    `json:"is_active"`
	DisplayOrder int     `json:"display_order"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Quote = model.Quote
	r.GuestRole = model.GuestRole
	r.IsActive = model.IsActive
	r.DisplayOrder = model.DisplayOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m)
	}
}

// PublicTestimonial is the carousel slide shown on the site.
type PublicTestimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

func (p *PublicTestimonial) FromModel(model model.Testimonial) {
	p.Quote = model.Quote
	p.Author = model.Author()
	p.Text = model.Quote
}

// DefaultTestimonials are shown until the first testimonial is published.
func DefaultTestimonials() []PublicTestimonial {
	return []PublicTestimonial{
		{
			Quote:  "Everything about Sunset Haven was my favorite part",
			Author: "Guest Review",
			Text:   "I love the feeling of waking up at night and feeling safe that Sunset Haven gives. It was great and I totally enjoyed my stay.",
		},
		{
			Quote:  "Perfect, awesome, wonderful, beautiful, peaceful",
			Author: "Guest Review",
			Text:   "I love the sunsets there. I enjoyed waking up to watch the sunrise. The staff are very warm and welcoming.",
		},
	}
}
