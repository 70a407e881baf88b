package model

import (
	"haven/shared/constant"
	"haven/shared/model"
)

const (
	TableName  = "footer_settings"
	EntityName = "footer"

	// SingletonID is the primary key of the only footer row.
	SingletonID = "footer"

	FieldID               = "id"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldAdditionalInfo   = "additional_info"
	FieldInstagramHandle  = "instagram_handle"
	FieldInstagramURL     = "instagram_url"
	FieldAvailabilityText = "availability_text"
	FieldTransportText    = "transport_text"
	FieldCopyrightText    = "copyright_text"
	FieldPoweredByText    = "powered_by_text"
)

// EditableFields are overwritten when the footer is saved again.
var EditableFields = []string{
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldAdditionalInfo,
	FieldInstagramHandle,
	FieldInstagramURL,
	FieldAvailabilityText,
	FieldTransportText,
	FieldCopyrightText,
	FieldPoweredByText,
	constant.FieldModifiedAt,
	constant.FieldModifiedBy,
}

type FooterSettings struct {
	ID               string `db:"id"`
	Email            string `db:"email"`
	Phone            string `db:"phone"`
	Address          string `db:"address"`
	AdditionalInfo   string `db:"additional_info"`
	InstagramHandle  string `db:"instagram_handle"`
	InstagramURL     string `db:"instagram_url"`
	AvailabilityText string `db:"availability_text"`
	TransportText    string `db:"transport_text"`
	CopyrightText    string `db:"copyright_text"`
	PoweredByText    string `db:"powered_by_text"`
	model.Metadata
}

// Defaults is what the public footer shows for any field the admin left empty.
func Defaults() FooterSettings {
	return FooterSettings{
		ID:               SingletonID,
		Email:            "tarkwabaylifestyle@gmail.com",
		Phone:            "+234 806 935 9028",
		Address:          "Tarkwa Bay Island, Lagos",
		AdditionalInfo:   "15 minutes by boat from Lagos",
		InstagramHandle:  "@sunset.haven__",
		InstagramURL:     "https://instagram.com/sunset.haven__",
		AvailabilityText: "Year-round availability",
		TransportText:    "Boat transport available",
		CopyrightText:    "2025 by Sunset Haven.",
		PoweredByText:    "Powered and secured by Vercel.",
	}
}

// WithDefaults fills empty fields from Defaults.
func (f FooterSettings) WithDefaults() FooterSettings {
	d := Defaults()

	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
	}

	fill(&f.ID, d.ID)
	fill(&f.Email, d.Email)
	fill(&f.Phone, d.Phone)
	fill(&f.Address, d.Address)
	fill(&f.AdditionalInfo, d.AdditionalInfo)
	fill(&f.InstagramHandle, d.InstagramHandle)
	fill(&f.InstagramURL, d.InstagramURL)
	fill(&f.AvailabilityText, d.AvailabilityText)
	fill(&f.TransportText, d.TransportText)
	fill(&f.CopyrightText, d.CopyrightText)
	fill(&f.PoweredByText, d.PoweredByText)

	return f
}
