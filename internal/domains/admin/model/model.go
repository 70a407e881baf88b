package model

import (
	"haven/shared/model"
	"time"
)

const (
	TableName  = "admin_profiles"
	EntityName = "admin"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFullName    = "full_name"
	FieldRole        = "role"
	FieldIsActive    = "is_active"
	FieldIsDeletable = "is_deletable"
	FieldLastLogin   = "last_login"
)

type AdminProfile struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	FullName    string     `db:"full_name"`
	Role        string     `db:"role"`
	IsActive    bool       `db:"is_active"`
	IsDeletable bool       `db:"is_deletable"`
	LastLogin   *time.Time `db:"last_login"`
	model.Metadata
}
