package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Text strips every tag from public free text and trims surrounding whitespace.
// Entities escaped by the policy are restored so the stored value stays plain text.
func Text(value string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(value)))
}

// OptionalText applies Text to a nullable field.
func OptionalText(value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := Text(*value)
	if cleaned == "" {
		return nil
	}

	return &cleaned
}
