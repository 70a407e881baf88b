package model

import "haven/shared/model"

const (
	TableName  = "newsletter_signups"
	EntityName = "newsletter"

	FieldID    = "id"
	FieldEmail = "email"
)

const (
	ExportFilePrefix = "newsletter-signups-"
	ExportFileExt    = ".csv"
	SignupDateLayout = "January 2, 2006 at 03:04 PM"
)

var ExportHeader = []string{"Email", "Signup Date"}

type NewsletterSignup struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Metadata
}
