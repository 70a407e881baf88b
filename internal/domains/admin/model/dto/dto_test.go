package dto_test

import (
	"testing"
	"time"

	"haven/internal/domains/admin/model"
	"haven/internal/domains/admin/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestCreateAdminRequest_ToModel(t *testing.T) {
	req := dto.CreateAdminRequest{Email: " Viewer@Haven.NG ", FullName: " Vee ", Role: "viewer"}

	admin := req.ToModel("owner", "hash")

	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, "viewer@haven.ng", admin.Email)
	assert.Equal(t, "Vee", admin.FullName)
	assert.Equal(t, "hash", admin.Password)
	assert.True(t, admin.IsActive)
	assert.True(t, admin.IsDeletable)
}

func TestAdminResponse_FromModel(t *testing.T) {
	var neverLoggedIn dto.AdminResponse
	neverLoggedIn.FromModel(model.AdminProfile{ID: "a-1"})

	assert.Nil(t, neverLoggedIn.LastLogin)

	lastLogin := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	var loggedIn dto.AdminResponse
	loggedIn.FromModel(model.AdminProfile{ID: "a-1", Password: "hash", LastLogin: &lastLogin})

	assert.NotNil(t, loggedIn.LastLogin)
}

func TestAccessResponse_Allowed(t *testing.T) {
	assert.False(t, dto.AccessResponse{}.Allowed())
	assert.False(t, dto.AccessResponse{ID: "a-1"}.Allowed())
	assert.True(t, dto.AccessResponse{ID: "a-1", IsActive: true}.Allowed())
}
