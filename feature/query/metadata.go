package query

import (
	"math"
	"strings"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
)

// FilterByCategory returns every entry of a category, translated.
func (s *Service) FilterByCategory(category string) ([]*models.Entry, error) {
	if strings.TrimSpace(category) == "" {
		return nil, catalog.InvalidInput("category must not be empty")
	}
	return s.translateAll(s.store.GetByCategory(category)), nil
}

// FilterByLevel returns every entry at one level number across all roles.
func (s *Service) FilterByLevel(level int) ([]*models.Entry, error) {
	n, err := catalog.ValidateLevelNumber(level)
	if err != nil {
		return nil, err
	}
	return s.translateAll(s.store.GetByLevel(n)), nil
}

// RoleMetadata is the aggregated summary of one role across all its levels.
// OriginalRole keeps the untranslated name used as the stable query key.
type RoleMetadata struct {
	Role         string            `json:"role"`
	OriginalRole string            `json:"original_role"`
	Category     string            `json:"category"`
	Levels       int               `json:"levels"`
	Competencies int               `json:"competencies"`
	Indicators   int               `json:"indicators"`
	YearsRange   models.YearsRange `json:"years_range"`
}

// RolesMetadata is the full role summary listing, additionally grouped by
// category.
type RolesMetadata struct {
	Total      int                 `json:"total"`
	Roles      []RoleMetadata      `json:"roles"`
	ByCategory map[string][]string `json:"by_category"`
}

// unboundedYears stands in for a nil range max while aggregating, so an
// open-ended top level survives the max comparison.
const unboundedYears = math.MaxInt32

// GetAllRolesWithMetadata builds one summary record per role, aggregating
// competency and indicator counts and the min/max years span across levels.
func (s *Service) GetAllRolesWithMetadata() (*RolesMetadata, error) {
	roles := s.store.AllRoles()

	out := &RolesMetadata{
		Total:      len(roles),
		Roles:      make([]RoleMetadata, 0, len(roles)),
		ByCategory: make(map[string][]string),
	}
	for _, role := range roles {
		entries := s.store.GetByRole(role)
		if len(entries) == 0 {
			continue
		}

		meta := RoleMetadata{
			Role:         s.translator.TranslateRoleName(role),
			OriginalRole: role,
			Category:     entries[0].Category,
			Levels:       len(entries),
		}
		minYears, maxYears := math.MaxInt32, 0
		for _, entry := range entries {
			meta.Competencies += len(entry.CoreCompetencies) + len(entry.ComplementaryCompetencies)
			meta.Indicators += len(entry.Indicators)
			if entry.YearsRange.Min < minYears {
				minYears = entry.YearsRange.Min
			}
			max := unboundedYears
			if entry.YearsRange.Max != nil {
				max = *entry.YearsRange.Max
			}
			if max > maxYears {
				maxYears = max
			}
		}
		meta.YearsRange.Min = minYears
		if maxYears != unboundedYears {
			max := maxYears
			meta.YearsRange.Max = &max
		}

		out.Roles = append(out.Roles, meta)
		out.ByCategory[meta.Category] = append(out.ByCategory[meta.Category], meta.Role)
	}
	return out, nil
}
