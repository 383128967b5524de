package translation

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// RoleFileName derives the translation document filename for a role name:
// lowercase, runs of non-alphanumeric characters collapsed to single hyphens,
// leading/trailing hyphens trimmed. "Backend Developer" -> "backend-developer.json".
func RoleFileName(role string) string {
	slug := strings.ToLower(role)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug + ".json"
}
