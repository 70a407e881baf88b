package dto

import (
	"haven/internal/domains/admin/model"
	"haven/shared"
	"haven/shared/constant"
	gDto "haven/shared/dto"
	gModel "haven/shared/model"
	"haven/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Email    string `json:"email"     validate:"required,email,max=254"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role"      validate:"required,oneof=super_admin admin editor viewer"`
}

// Normalize trims the name and folds the email to the form profiles are stored and looked up in.
func (r *CreateAdminRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

func (r *CreateAdminRequest) ToModel(user, hashedPassword string) model.AdminProfile {
	return model.AdminProfile{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Password:    hashedPassword,
		FullName:    strings.TrimSpace(r.FullName),
		Role:        r.Role,
		IsActive:    true,
		IsDeletable: true,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateAdminRequest changes profile details. NewPassword is hashed into PasswordHash by the service.
type UpdateAdminRequest struct {
	FullName     *string `db:"full_name" json:"full_name,omitempty"    validate:"omitempty,min=2,max=100"`
	Role         *string `db:"role"      json:"role,omitempty"         validate:"omitempty,oneof=super_admin admin editor viewer"`
	NewPassword  string  `json:"new_password,omitempty" validate:"omitempty,min=8,max=72"`
	PasswordHash *string `db:"password"  json:"-"`
}

type UpdateAdminStatusRequest struct {
	IsActive *bool `db:"is_active" json:"is_active" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login"`
}

type AdminResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"is_active"`
	IsDeletable bool    `json:"is_deletable"`
	LastLogin   *string `json:"last_login"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(model model.AdminProfile) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.IsActive = model.IsActive
	r.IsDeletable = model.IsDeletable
	r.Metadata.FromModel(model.Metadata)

	r.LastLogin = nil
	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type GetAdminsResponse struct {
	Admins    []AdminResponse `json:"admins"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAdminsResponse) FromModels(models []model.AdminProfile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Admins = make([]AdminResponse, len(models))
	for i, m := range models {
		r.Admins[i].FromModel(m)
	}
}

// AccessResponse is the slice of a profile the auth middleware needs on every request.
type AccessResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (r *AccessResponse) FromModel(model model.AdminProfile) {
	r.ID = model.ID
	r.Role = model.Role
	r.IsActive = model.IsActive
}

// Allowed reports whether the profile exists and may still use its tokens.
func (r AccessResponse) Allowed() bool {
	return r.ID != "" && r.IsActive
}
