package dto

import (
	"haven/internal/domains/event/model"
	"haven/shared"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	gModel "haven/shared/model"
	"haven/shared/timezone"

	"github.com/google/uuid"
)

const msgPricingTierRequired = "please add at least one price tier"

type CreateEventRequest struct {
	Title        string             `json:"title"                validate:"required,max=200"`
	Description  string             `json:"description"          validate:"required"`
	EventDate    string             `json:"event_date"           validate:"required,datetime=2006-01-02"`
	FlierURL     string             `json:"flier_url"            validate:"required,url"`
	PaymentURL   string             `json:"paystack_payment_url" validate:"omitempty,url"`
	PricingTiers model.PricingTiers `json:"pricing_tiers"        validate:"required,min=1"`
}

// ToModel builds an active event. Incomplete tiers are dropped and the cost is the cheapest remaining tier.
func (c *CreateEventRequest) ToModel(user string, displayOrder int, defaultPaymentURL string) (model.Event, error) {
	tiers, lowest := c.PricingTiers.Valid()
	if len(tiers) == 0 {
		return model.Event{}, failure.BadRequestFromString(msgPricingTierRequired)
	}

	eventDate, err := timezone.Parse(constant.DateOnly, c.EventDate)
	if err != nil {
		return model.Event{}, failure.BadRequestFromString("event_date must be formatted as YYYY-MM-DD")
	}

	paymentURL := c.PaymentURL
	if paymentURL == "" {
		paymentURL = defaultPaymentURL
	}

	return model.Event{
		ID:           uuid.NewString(),
		Title:        c.Title,
		Description:  c.Description,
		EventDate:    eventDate,
		Cost:         lowest,
		PricingTiers: tiers,
		FlierURL:     c.FlierURL,
		PaymentURL:   paymentURL,
		IsActive:     true,
		DisplayOrder: displayOrder,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateEventRequest struct {
	Title        string             `db:"title"                json:"title"                validate:"omitempty,max=200"`
	Description  string             `db:"description"          json:"description"`
	EventDate    string             `db:"event_date"           json:"event_date"           validate:"omitempty,datetime=2006-01-02"`
	FlierURL     string             `db:"flier_url"            json:"flier_url"            validate:"omitempty,url"`
	PaymentURL   string             `db:"paystack_payment_url" json:"paystack_payment_url" validate:"omitempty,url"`
	PricingTiers model.PricingTiers `db:"pricing_tiers"        json:"pricing_tiers"`
	IsActive     *bool              `db:"is_active"            json:"is_active"`
	DisplayOrder *int               `db:"display_order"        json:"display_order"        validate:"omitempty,gte=0"`
	Cost         *float64           `db:"cost"                 json:"-"                    swaggerignore:"true"`
}

// Normalize cleans submitted tiers and derives the cost. Requests without tiers leave both untouched.
func (u *UpdateEventRequest) Normalize() error {
	u.Cost = nil

	if u.PricingTiers == nil {
		return nil
	}

	tiers, lowest := u.PricingTiers.Valid()
	if len(tiers) == 0 {
		return failure.BadRequestFromString(msgPricingTierRequired)
	}

	u.PricingTiers = tiers
	u.Cost = &lowest

	return nil
}

type EventResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	EventDate    string             `json:"event_date"`
	Cost         float64            `json:"cost"`
	PricingTiers model.PricingTiers `json:"pricing_tiers"`
	FlierURL     string             `json:"flier_url"`
	PaymentURL   string             `json:"paystack_payment_url"`
	IsActive     bool               `json:"is_active"`
	DisplayOrder int                `json:"display_order"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.EventDate = model.EventDate.Format(constant.DateOnly)
	r.Cost = model.Cost
	r.PricingTiers = model.PricingTiers
	r.FlierURL = model.FlierURL
	r.PaymentURL = model.PaymentURL
	r.IsActive = model.IsActive
	r.DisplayOrder = model.DisplayOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, m := range models {
		r.Events[i].FromModel(m)
	}
}

type EventStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Upcoming int `json:"upcoming"`
}

// PublicEvent is the shape served to site visitors.
type PublicEvent struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	EventDate    string             `json:"event_date"`
	Cost         float64            `json:"cost"`
	PricingTiers model.PricingTiers `json:"pricing_tiers"`
	FlierURL     string             `json:"flier_url"`
	PaymentURL   string             `json:"paystack_payment_url"`
}

func (p *PublicEvent) FromModel(model model.Event) {
	p.ID = model.ID
	p.Title = model.Title
	p.Description = model.Description
	p.EventDate = model.EventDate.Format(constant.DateOnly)
	p.Cost = model.Cost
	p.PricingTiers = model.PricingTiers
	p.FlierURL = model.FlierURL
	p.PaymentURL = model.PaymentURL
}
