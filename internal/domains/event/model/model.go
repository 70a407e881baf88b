package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"haven/shared/model"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldEventDate    = "event_date"
	FieldCost         = "cost"
	FieldPricingTiers = "pricing_tiers"
	FieldFlierURL     = "flier_url"
	FieldIsActive     = "is_active"
	FieldDisplayOrder = "display_order"

	UpcomingLimit = 5
)

var errInvalidPricingTiers = errors.New("pricing_tiers: unsupported column type")

type Event struct {
	ID           string       `db:"id"`
	Title        string       `db:"title"`
	Description  string       `db:"description"`
	EventDate    time.Time    `db:"event_date"`
	Cost         float64      `db:"cost"`
	PricingTiers PricingTiers `db:"pricing_tiers"`
	FlierURL     string       `db:"flier_url"`
	PaymentURL   string       `db:"paystack_payment_url"`
	IsActive     bool         `db:"is_active"`
	DisplayOrder int          `db:"display_order"`
	model.Metadata
}

// PricingTier is one ticket option. Price keeps the text the admin typed, e.g. "25,000".
type PricingTier struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// Amount parses Price, ignoring thousands separators and a leading currency sign.
func (p PricingTier) Amount() (float64, bool) {
	raw := strings.TrimSpace(p.Price)
	raw = strings.TrimPrefix(raw, "₦")
	raw = strings.ReplaceAll(raw, ",", "")

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, false
	}

	return amount, true
}

// PricingTiers is stored as a jsonb array.
type PricingTiers []PricingTier

func (p PricingTiers) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	value, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing tiers: %w", err)
	}

	return value, nil
}

func (p *PricingTiers) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*p = PricingTiers{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return errInvalidPricingTiers
	}

	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to unmarshal pricing tiers: %w", err)
	}

	return nil
}

// Valid drops tiers missing a label or a parseable price and returns the lowest price among the rest.
func (p PricingTiers) Valid() (PricingTiers, float64) {
	valid := PricingTiers{}
	lowest := math.Inf(1)

	for _, tier := range p {
		label := strings.TrimSpace(tier.Label)
		if label == "" {
			continue
		}

		amount, ok := tier.Amount()
		if !ok {
			continue
		}

		valid = append(valid, PricingTier{Label: label, Price: strings.TrimSpace(tier.Price)})
		lowest = math.Min(lowest, amount)
	}

	if len(valid) == 0 {
		return valid, 0
	}

	return valid, lowest
}
