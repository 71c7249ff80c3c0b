package format

import "strings"

const (
	DefaultAvatar          = "/static/img/default-avatar.png"
	DefaultCourseThumbnail = "/static/img/default-course.png"
)

// MediaURL resolves an image reference from the API. Absolute URLs pass
// through, bare file names are served from filesBase, and empty values use
// fallback.
func MediaURL(raw, filesBase, fallback string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return fallback
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "/"):
		return raw
	}
	return strings.TrimRight(filesBase, "/") + "/" + raw
}
