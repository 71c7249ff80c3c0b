package format

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role turns a raw role claim such as "ROLE_INSTRUCTOR" into "Instructor".
func Role(raw string) string {
	clean := strings.ToLower(strings.TrimSpace(raw))
	clean = strings.TrimPrefix(clean, "role_")
	if clean == "" {
		return "Guest"
	}
	// Casers keep state and are not shared between requests.
	return cases.Title(language.English).String(clean)
}
