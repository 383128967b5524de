package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// codePattern matches entry codes like "BE-L3": a short uppercase prefix
// followed by the level number.
var codePattern = regexp.MustCompile(`^[A-Z0-9]{2,6}-L([1-9])$`)

// YearsRange is the expected experience-year span for a level.
// A nil Max means open-ended, which is only valid at level 9.
type YearsRange struct {
	Min int  `json:"min"`
	Max *int `json:"max"`
}

// Contains reports whether the given years of experience fall in the range.
func (r YearsRange) Contains(years float64) bool {
	if years < float64(r.Min) {
		return false
	}
	return r.Max == nil || years <= float64(*r.Max)
}

// Entry is the atomic unit of the dataset: one role at one level.
type Entry struct {
	Category                  string     `json:"category"`
	Role                      string     `json:"role"`
	Level                     string     `json:"level"`
	Code                      string     `json:"code"`
	LevelNumber               int        `json:"level_number"`
	YearsRange                YearsRange `json:"years_range"`
	CoreCompetencies          []string   `json:"core_competencies"`
	ComplementaryCompetencies []string   `json:"complementary_competencies"`
	Indicators                []string   `json:"indicators"`
}

// Clone returns a deep copy of the entry. Every public accessor of the store
// hands out clones so callers can never mutate shared index data.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := *e
	clone.CoreCompetencies = cloneStrings(e.CoreCompetencies)
	clone.ComplementaryCompetencies = cloneStrings(e.ComplementaryCompetencies)
	clone.Indicators = cloneStrings(e.Indicators)
	if e.YearsRange.Max != nil {
		max := *e.YearsRange.Max
		clone.YearsRange.Max = &max
	}
	return &clone
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Validate checks if the entry has the minimum required fields and valid
// formats. It returns a reason string, or "" when the entry is valid.
func (e Entry) Validate() string {
	if e.Role == "" {
		return "missing role"
	}
	if e.Category == "" {
		return "missing category"
	}
	num, ok := LevelNumberFromCode(e.Code)
	if !ok {
		return fmt.Sprintf("malformed code %q", e.Code)
	}
	if e.LevelNumber < 1 || e.LevelNumber > 9 {
		return fmt.Sprintf("level number %d out of range", e.LevelNumber)
	}
	if num != e.LevelNumber {
		return fmt.Sprintf("code %s does not match level number %d", e.Code, e.LevelNumber)
	}
	if e.YearsRange.Max == nil {
		if e.LevelNumber != 9 {
			return "open-ended years range below level 9"
		}
	} else if e.YearsRange.Min > *e.YearsRange.Max {
		return fmt.Sprintf("years range min %d above max %d", e.YearsRange.Min, *e.YearsRange.Max)
	}
	for _, c := range e.CoreCompetencies {
		if c == "" {
			return "empty core competency"
		}
	}
	return ""
}

// LevelNumberFromCode extracts the level number embedded in an entry code.
func LevelNumberFromCode(code string) (int, bool) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// RoleDocument represents one source file: a role with its nine leveled
// entries, keyed by entry code. Field names follow the external data shape.
type RoleDocument struct {
	Role     string               `json:"role"`
	Category string               `json:"category"`
	Levels   map[string]LevelData `json:"levels"`
}

// LevelData is the per-level payload of a RoleDocument.
type LevelData struct {
	Level                     string     `json:"level"`
	LevelNumber               int        `json:"levelNumber"`
	YearsRange                YearsRange `json:"yearsRange"`
	CoreCompetencies          []string   `json:"coreCompetencies"`
	ComplementaryCompetencies []string   `json:"complementaryCompetencies"`
	Indicators                []string   `json:"indicators"`
}

// Entry flattens one (code, level data) pair of the document into an Entry.
func (d RoleDocument) Entry(code string, data LevelData) Entry {
	return Entry{
		Category:                  d.Category,
		Role:                      d.Role,
		Level:                     data.Level,
		Code:                      code,
		LevelNumber:               data.LevelNumber,
		YearsRange:                data.YearsRange,
		CoreCompetencies:          data.CoreCompetencies,
		ComplementaryCompetencies: data.ComplementaryCompetencies,
		Indicators:                data.Indicators,
	}
}

// Statistics summarizes the loaded dataset.
type Statistics struct {
	TotalRoles            int            `json:"total_roles"`
	TotalCategories       int            `json:"total_categories"`
	TotalEntries          int            `json:"total_entries"`
	AverageEntriesPerRole int            `json:"average_entries_per_role"`
	ByCategory            map[string]int `json:"by_category"`
}
