package comparison

import (
	"math"
	"strings"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
)

// Gap categories, checked in order; the first keyword hit wins and anything
// uncategorized falls to technical.
var gapCategories = []struct {
	name     string
	keywords []string
}{
	{"leadership", []string{
		"lider", "líder", "leader", "mentor", "coach", "equipo", "team",
		"comunicación", "comunicacion", "communication", "gestión", "gestion", "management",
	}},
	{"architecture", []string{
		"arquitect", "architect", "diseño", "diseno", "design",
		"escalab", "scalab", "sistema", "system", "infraestructura", "infrastructure",
	}},
	{"processes", []string{
		"proceso", "process", "metodolog", "methodolog",
		"agile", "ágil", "scrum", "kanban", "ci/cd", "devops",
	}},
}

const gapCategoryFallback = "technical"

// LearningTime is the heuristic estimate for closing a competency gap:
// two weeks per new competency.
type LearningTime struct {
	Weeks  int `json:"weeks"`
	Months int `json:"months"`
}

// CompetencyGaps reports what separates two levels of a role, with new
// competencies categorized and a learning-time estimate attached.
type CompetencyGaps struct {
	Role                  string              `json:"role"`
	FromLevel             string              `json:"from_level"`
	ToLevel               string              `json:"to_level"`
	Comparison            *LevelComparison    `json:"comparison"`
	Gaps                  map[string][]string `json:"gaps"`
	EstimatedLearningTime LearningTime        `json:"estimated_learning_time"`
}

// GetCompetencyGaps wraps CompareLevels with a rule-based categorization of
// the new competencies and a heuristic learning-time estimate.
func (s *Service) GetCompetencyGaps(role, fromLevel, toLevel string) (*CompetencyGaps, error) {
	diff, err := s.CompareLevels(role, fromLevel, toLevel)
	if err != nil {
		return nil, err
	}

	gaps := make(map[string][]string)
	for _, competency := range diff.New {
		category := categorize(competency)
		gaps[category] = append(gaps[category], competency)
	}

	weeks := len(diff.New) * 2
	return &CompetencyGaps{
		Role:       diff.Role,
		FromLevel:  diff.FromLevel,
		ToLevel:    diff.ToLevel,
		Comparison: diff,
		Gaps:       gaps,
		EstimatedLearningTime: LearningTime{
			Weeks:  weeks,
			Months: int(math.Ceil(float64(weeks) / 4)),
		},
	}, nil
}

func categorize(competency string) string {
	lowered := strings.ToLower(competency)
	for _, category := range gapCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return category.name
			}
		}
	}
	return gapCategoryFallback
}

// CareerStep is one level in a planned progression. NewCompetencies is empty
// for the starting level.
type CareerStep struct {
	Level           string            `json:"level"`
	Code            string            `json:"code"`
	YearsRange      models.YearsRange `json:"years_range"`
	NewCompetencies []string          `json:"new_competencies"`
}

// CareerPath is a planned progression between two levels of one role.
type CareerPath struct {
	Role                 string       `json:"role"`
	FromLevel            string       `json:"from_level"`
	ToLevel              string       `json:"to_level"`
	Steps                []CareerStep `json:"steps"`
	TotalNewCompetencies int          `json:"total_new_competencies"`
}

// GetCareerPath walks the levels from fromLevel to toLevel inclusive,
// attaching the level-over-level new competencies for every step after the
// first. fromLevel must be strictly below toLevel.
func (s *Service) GetCareerPath(role, fromLevel, toLevel string) (*CareerPath, error) {
	from, err := catalog.ParseLevel(fromLevel)
	if err != nil {
		return nil, err
	}
	to, err := catalog.ParseLevel(toLevel)
	if err != nil {
		return nil, err
	}
	if from >= to {
		return nil, catalog.InvalidInput("from level must be below to level")
	}

	out := &CareerPath{
		Role:      s.queries.TranslateRoleName(role),
		FromLevel: catalog.LevelLabel(from),
		ToLevel:   catalog.LevelLabel(to),
	}
	for n := from; n <= to; n++ {
		entry, err := s.queries.GetRoleByNameAndLevel(role, catalog.LevelLabel(n))
		if err != nil {
			return nil, err
		}
		step := CareerStep{
			Level:           entry.Level,
			Code:            entry.Code,
			YearsRange:      entry.YearsRange,
			NewCompetencies: []string{},
		}
		if n > from {
			diff, err := s.CompareLevels(role, catalog.LevelLabel(n-1), catalog.LevelLabel(n))
			if err != nil {
				return nil, err
			}
			step.NewCompetencies = diff.New
			out.TotalNewCompetencies += len(diff.New)
		}
		out.Steps = append(out.Steps, step)
	}
	return out, nil
}
