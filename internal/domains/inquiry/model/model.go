package model

import "haven/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID          = "id"
	FieldName        = "name"
	FieldInquiryType = "inquiry_type"
	FieldStatus      = "status"
)

const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
	StatusArchived  = "archived"
)

var Statuses = []string{StatusNew, StatusRead, StatusResponded, StatusArchived}

type Inquiry struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	InquiryType string `db:"inquiry_type"`
	Message     string `db:"message"`
	Status      string `db:"status"`
	model.Metadata
}
