package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeHTML strips all HTML from user-submitted form input.
// Form fields are stored and re-rendered in templates, so nothing
// markup-like may survive.
func SanitizeHTML(input string) (string, error) {
	return strings.TrimSpace(strictPolicy.Sanitize(input)), nil
}
