package model_test

import (
	"testing"

	"haven/internal/domains/footer/model"

	"github.com/stretchr/testify/assert"
)

func TestFooterSettings_WithDefaults(t *testing.T) {
	assert.Equal(t, model.Defaults(), model.FooterSettings{}.WithDefaults())

	custom := model.FooterSettings{ID: model.SingletonID, Email: "events@haven.ng"}.WithDefaults()

	assert.Equal(t, "events@haven.ng", custom.Email)
	assert.Equal(t, model.Defaults().TransportText, custom.TransportText)
}
