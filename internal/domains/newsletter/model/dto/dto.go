package dto

import (
	"haven/internal/domains/newsletter/model"
	"haven/shared"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	gModel "haven/shared/model"
	"haven/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// Normalize trims and lowercases the address so duplicates collide on the unique index.
func (r *SubscribeRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SubscribeRequest) ToModel(user string) model.NewsletterSignup {
	return model.NewsletterSignup{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type SignupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	gDto.Metadata
}

func (r *SignupResponse) FromModel(model model.NewsletterSignup) {
	r.ID = model.ID
	r.Email = model.Email
	r.Metadata.FromModel(model.Metadata)
}

type GetSignupsResponse struct {
	Signups   []SignupResponse `json:"signups"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetSignupsResponse) FromModels(models []model.NewsletterSignup, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Signups = make([]SignupResponse, len(models))
	for i, m := range models {
		r.Signups[i].FromModel(m)
	}
}

// ExportResponse is a rendered CSV file ready to be streamed as an attachment.
type ExportResponse struct {
	FileName string
	Content  []byte
}

// SubscribedEvent is published for every new newsletter signup.
type SubscribedEvent struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func (e *SubscribedEvent) FromModel(model model.NewsletterSignup) {
	e.ID = model.ID
	e.Email = model.Email
	e.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
