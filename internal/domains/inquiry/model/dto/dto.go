package dto

import (
	"haven/internal/domains/inquiry/model"
	"haven/shared"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	"haven/shared/failure"
	gModel "haven/shared/model"
	"haven/shared/phone"
	"haven/shared/sanitize"
	"haven/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Phone       string `json:"phone"        validate:"required,max=30"`
	InquiryType string `json:"inquiry_type" validate:"required,max=100"`
	Message     string `json:"message"      validate:"required,max=5000"`
}

// Normalize strips markup from the free text fields and formats the phone number.
// Fields that are empty once cleaned are rejected.
func (c *CreateInquiryRequest) Normalize(region string) error {
	c.Name = sanitize.Text(c.Name)
	c.InquiryType = sanitize.Text(c.InquiryType)
	c.Message = sanitize.Text(c.Message)
	c.Phone = phone.Normalize(sanitize.Text(c.Phone), region)

	if c.Name == "" || c.Phone == "" || c.InquiryType == "" || c.Message == "" {
		return failure.BadRequestFromString("please fill in all required fields")
	}

	return nil
}

func (c *CreateInquiryRequest) ToModel(user string) model.Inquiry {
	return model.Inquiry{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Phone:       c.Phone,
		InquiryType: c.InquiryType,
		Message:     c.Message,
		Status:      model.StatusNew,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateInquiryStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=new read responded archived"`
}

type InquiryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(model model.Inquiry) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.InquiryType = model.InquiryType
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, m := range models {
		r.Inquiries[i].FromModel(m)
	}
}

type InquiryStatsResponse struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Read      int `json:"read"`
	Responded int `json:"responded"`
	Archived  int `json:"archived"`
}

// Set records the count for one status.
func (r *InquiryStatsResponse) Set(status string, count int) {
	switch status {
	case model.StatusNew:
		r.New = count
	case model.StatusRead:
		r.Read = count
	case model.StatusResponded:
		r.Responded = count
	case model.StatusArchived:
		r.Archived = count
	}
}

// InquiryCreatedEvent is published once a visitor submits the contact form.
type InquiryCreatedEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	InquiryType string `json:"inquiry_type"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

func (e *InquiryCreatedEvent) FromModel(model model.Inquiry) {
	e.ID = model.ID
	e.Name = model.Name
	e.Phone = model.Phone
	e.InquiryType = model.InquiryType
	e.Message = model.Message
	e.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
