package model_test

import (
	"testing"

	"haven/internal/domains/permission/model"

	"github.com/stretchr/testify/assert"
)

func TestRolePermission_Allows(t *testing.T) {
	row := model.RolePermission{CanView: true, CanEdit: true}

	assert.True(t, row.Allows(model.ActionView))
	assert.True(t, row.Allows(model.ActionEdit))
	assert.False(t, row.Allows(model.ActionCreate))
	assert.False(t, row.Allows(model.ActionDelete))
	assert.False(t, row.Allows("publish"))
}
