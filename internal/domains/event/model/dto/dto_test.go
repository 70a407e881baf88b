package dto_test

import (
	"testing"
	"time"

	"haven/internal/domains/event/model"
	"haven/internal/domains/event/model/dto"
	"haven/shared/failure"
	gModel "haven/shared/model"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:       "Full Moon Rave",
		Description: "All night on the beach",
		EventDate:   "2030-12-31",
		FlierURL:    "https://cdn.example.com/events/flier.jpg",
		PricingTiers: model.PricingTiers{
			{Label: "Early Bird", Price: "15,000"},
			{Label: "Regular", Price: "20,000"},
			{Label: "", Price: ""},
		},
	}
}

func TestCreateEventRequest_ToModel(t *testing.T) {
	req := validCreateRequest()

	event, err := req.ToModel("user-1", 3, "https://paystack.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Full Moon Rave", event.Title)
	assert.Equal(t, 2030, event.EventDate.Year())
	assert.Equal(t, time.December, event.EventDate.Month())
	assert.InDelta(t, 15000, event.Cost, 0.001)
	assert.Len(t, event.PricingTiers, 2)
	assert.Equal(t, "https://paystack.com", event.PaymentURL)
	assert.True(t, event.IsActive)
	assert.Equal(t, 3, event.DisplayOrder)
	assert.Equal(t, "user-1", event.CreatedBy)
}

func TestCreateEventRequest_ToModelKeepsPaymentURL(t *testing.T) {
	req := validCreateRequest()
	req.PaymentURL = "https://paystack.com/pay/rave"

	event, err := req.ToModel("user-1", 1, "https://paystack.com")

	assert.NoError(t, err)
	assert.Equal(t, "https://paystack.com/pay/rave", event.PaymentURL)
}

func TestCreateEventRequest_ToModelRequiresTier(t *testing.T) {
	req := validCreateRequest()
	req.PricingTiers = model.PricingTiers{{Label: "Regular", Price: ""}}

	_, err := req.ToModel("user-1", 1, "https://paystack.com")

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestUpdateEventRequest_Normalize(t *testing.T) {
	untouched := dto.UpdateEventRequest{Title: "Renamed"}
	assert.NoError(t, untouched.Normalize())
	assert.Nil(t, untouched.Cost)

	withTiers := dto.UpdateEventRequest{PricingTiers: model.PricingTiers{{Label: "VIP", Price: "40000"}, {Label: "Table", Price: "250,000"}}}
	assert.NoError(t, withTiers.Normalize())
	assert.InDelta(t, 40000, *withTiers.Cost, 0.001)

	invalid := dto.UpdateEventRequest{PricingTiers: model.PricingTiers{}}
	assert.Error(t, invalid.Normalize())
}

func TestEventResponse_FromModel(t *testing.T) {
	event := model.Event{
		ID:           "event-1",
		Title:        "Paint & Sip",
		EventDate:    time.Date(2030, 5, 4, 0, 0, 0, 0, time.UTC),
		Cost:         10000,
		PricingTiers: model.PricingTiers{{Label: "Regular", Price: "10000"}},
		IsActive:     true,
		Metadata:     gModel.NewMetadata("user-1", time.Now()),
	}

	var res dto.EventResponse
	res.FromModel(event)

	assert.Equal(t, "2030-05-04", res.EventDate)
	assert.Equal(t, event.PricingTiers, res.PricingTiers)
	assert.True(t, res.IsActive)

	var public dto.PublicEvent
	public.FromModel(event)

	assert.Equal(t, "2030-05-04", public.EventDate)
	assert.InDelta(t, 10000, public.Cost, 0.001)
}
