package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxRoleNameLength = 100
	maxQueryLength    = 500
)

// levelPattern matches level tokens like "L3", "l5" or "L3 - Junior II".
var levelPattern = regexp.MustCompile(`(?i)^l([1-9])(?:[\s-].*)?$`)

// ValidateRoleName checks a role name before it touches the store: non-empty,
// at most 100 characters and free of markup characters.
func ValidateRoleName(role string) error {
	if strings.TrimSpace(role) == "" {
		return InvalidInput("role name must not be empty")
	}
	if len(role) > maxRoleNameLength {
		return InvalidInput(fmt.Sprintf("role name exceeds %d characters", maxRoleNameLength))
	}
	if strings.ContainsAny(role, "<>{}") {
		return InvalidInput("role name contains forbidden characters")
	}
	return nil
}

// ValidateSearchQuery checks a free-text query: non-empty and at most 500
// characters.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return InvalidInput("query must not be empty")
	}
	if len(query) > maxQueryLength {
		return InvalidInput(fmt.Sprintf("query exceeds %d characters", maxQueryLength))
	}
	return nil
}

// ParseLevel normalizes a level token to its number. It accepts a bare digit
// ("3"), the canonical form ("L3", case-insensitive) and display strings with
// a descriptive suffix ("L3 - Junior II").
func ParseLevel(level string) (int, error) {
	s := strings.TrimSpace(level)
	if s == "" {
		return 0, InvalidInput("level must not be empty")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return ValidateLevelNumber(n)
	}
	if m := levelPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, nil
	}
	return 0, InvalidInput(fmt.Sprintf("unparseable level %q", level))
}

// ValidateLevelNumber checks that a numeric level lies in 1..9.
func ValidateLevelNumber(n int) (int, error) {
	if n < 1 || n > 9 {
		return 0, InvalidInput(fmt.Sprintf("level %d outside 1..9", n))
	}
	return n, nil
}

// ValidateYears checks a years-of-experience value.
func ValidateYears(years float64) error {
	if math.IsNaN(years) || years < 0 {
		return InvalidInput("years must be a non-negative number")
	}
	return nil
}

// LevelLabel returns the canonical display form of a level number, e.g. "L3".
func LevelLabel(n int) string {
	return fmt.Sprintf("L%d", n)
}
