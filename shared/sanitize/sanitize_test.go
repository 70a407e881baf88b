package sanitize_test

import (
	"testing"

	"haven/shared/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain text untouched", input: "Hello there", expected: "Hello there"},
		{name: "trims whitespace", input: "  spaced  ", expected: "spaced"},
		{name: "strips script tags", input: "hi<script>alert(1)</script>", expected: "hi"},
		{name: "strips markup keeps text", input: "<b>bold</b> move", expected: "bold move"},
		{name: "keeps ampersand readable", input: "Tom & Jerry", expected: "Tom & Jerry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitize.Text(tt.input))
		})
	}
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, sanitize.OptionalText(nil))

	blank := "   <i></i> "
	assert.Nil(t, sanitize.OptionalText(&blank))

	value := " <p>Guest</p> "
	result := sanitize.OptionalText(&value)

	if assert.NotNil(t, result) {
		assert.Equal(t, "Guest", *result)
	}
}
