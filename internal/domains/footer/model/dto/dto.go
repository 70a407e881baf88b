package dto

import (
	"haven/internal/domains/footer/model"
	gDto "haven/shared/dto"
	gModel "haven/shared/model"
	"haven/shared/sanitize"
	"time"
)

type UpdateFooterRequest struct {
	Email            string `json:"email"             validate:"omitempty,email,max=254"`
	Phone            string `json:"phone"             validate:"max=50"`
	Address          string `json:"address"           validate:"max=255"`
	AdditionalInfo   string `json:"additional_info"   validate:"max=500"`
	InstagramHandle  string `json:"instagram_handle"  validate:"max=100"`
	InstagramURL     string `json:"instagram_url"     validate:"omitempty,url,max=255"`
	AvailabilityText string `json:"availability_text" validate:"max=255"`
	TransportText    string `json:"transport_text"    validate:"max=255"`
	CopyrightText    string `json:"copyright_text"    validate:"max=255"`
	PoweredByText    string `json:"powered_by_text"   validate:"max=255"`
}

// ToModel builds the full singleton row. Every field is replaced on save.
func (r *UpdateFooterRequest) ToModel(user string, now time.Time) model.FooterSettings {
	return model.FooterSettings{
		ID:               model.SingletonID,
		Email:            sanitize.Text(r.Email),
		Phone:            sanitize.Text(r.Phone),
		Address:          sanitize.Text(r.Address),
		AdditionalInfo:   sanitize.Text(r.AdditionalInfo),
		InstagramHandle:  sanitize.Text(r.InstagramHandle),
		InstagramURL:     sanitize.Text(r.InstagramURL),
		AvailabilityText: sanitize.Text(r.AvailabilityText),
		TransportText:    sanitize.Text(r.TransportText),
		CopyrightText:    sanitize.Text(r.CopyrightText),
		PoweredByText:    sanitize.Text(r.PoweredByText),
		Metadata:         gModel.NewMetadata(user, now),
	}
}

type FooterResponse struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	AdditionalInfo   string `json:"additional_info"`
	InstagramHandle  string `json:"instagram_handle"`
	InstagramURL     string `json:"instagram_url"`
	AvailabilityText string `json:"availability_text"`
	TransportText    string `json:"transport_text"`
	CopyrightText    string `json:"copyright_text"`
	PoweredByText    string `json:"powered_by_text"`
	gDto.Metadata
}

func (r *FooterResponse) FromModel(model model.FooterSettings) {
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.AdditionalInfo = model.AdditionalInfo
	r.InstagramHandle = model.InstagramHandle
	r.InstagramURL = model.InstagramURL
	r.AvailabilityText = model.AvailabilityText
	r.TransportText = model.TransportText
	r.CopyrightText = model.CopyrightText
	r.PoweredByText = model.PoweredByText
	r.Metadata.FromModel(model.Metadata)
}

// PublicFooter is the footer block rendered on the public site.
type PublicFooter struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	AdditionalInfo   string `json:"additional_info"`
	InstagramHandle  string `json:"instagram_handle"`
	InstagramURL     string `json:"instagram_url"`
	AvailabilityText string `json:"availability_text"`
	TransportText    string `json:"transport_text"`
	CopyrightText    string `json:"copyright_text"`
	PoweredByText    string `json:"powered_by_text"`
}

func (r *PublicFooter) FromModel(model model.FooterSettings) {
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.AdditionalInfo = model.AdditionalInfo
	r.InstagramHandle = model.InstagramHandle
	r.InstagramURL = model.InstagramURL
	r.AvailabilityText = model.AvailabilityText
	r.TransportText = model.TransportText
	r.CopyrightText = model.CopyrightText
	r.PoweredByText = model.PoweredByText
}
