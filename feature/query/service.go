package query

import (
	"strings"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
	"competency-matrix/feature/translation"

	"go.uber.org/zap"
)

// Service exposes the typed read operations over the indexed store. It is
// stateless: every operation validates its inputs, reads from the store and
// passes each returned entry through the translator.
type Service struct {
	store      *catalog.Store
	translator *translation.Translator
	logger     *zap.Logger
}

// NewService creates a new query service.
func NewService(store *catalog.Store, translator *translation.Translator, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		translator: translator,
		logger:     logger,
	}
}

// TranslateRoleName resolves a role's display name in the configured
// language, falling back to the canonical name.
func (s *Service) TranslateRoleName(role string) string {
	return s.translator.TranslateRoleName(role)
}

// GetRoleByCode returns the entry with the given unique code.
func (s *Service) GetRoleByCode(code string) (*models.Entry, error) {
	if strings.TrimSpace(code) == "" {
		return nil, catalog.InvalidInput("code must not be empty")
	}
	entry, ok := s.store.GetByCode(code)
	if !ok {
		return nil, catalog.CodeNotFound(code)
	}
	return s.translator.TranslateEntry(entry), nil
}

// GetRoleByNameAndLevel returns the entry of a role at one level. The level
// accepts a digit, "L3" or a display string like "L3 - Junior II".
func (s *Service) GetRoleByNameAndLevel(role, level string) (*models.Entry, error) {
	entry, err := s.entryAt(role, level)
	if err != nil {
		return nil, err
	}
	return s.translator.TranslateEntry(entry), nil
}

// GetAllLevelsForRole returns every entry of a role, ascending by level.
func (s *Service) GetAllLevelsForRole(role string) ([]*models.Entry, error) {
	entries, err := s.roleEntries(role)
	if err != nil {
		return nil, err
	}
	return s.translateAll(entries), nil
}

// CompetencyOptions controls which sections a competency projection carries.
type CompetencyOptions struct {
	IncludeComplementary bool
	IncludeIndicators    bool
}

// Competencies is the projection of one entry's competency data. The
// complementary and indicator sections are omitted entirely when the
// corresponding option is off.
type Competencies struct {
	Role          string            `json:"role"`
	Level         string            `json:"level"`
	Code          string            `json:"code"`
	YearsRange    models.YearsRange `json:"years_range"`
	Core          []string          `json:"core"`
	Complementary []string          `json:"complementary,omitempty"`
	Indicators    []string          `json:"indicators,omitempty"`
}

// GetCompetencies projects the translated entry of a role at one level.
func (s *Service) GetCompetencies(role, level string, opts CompetencyOptions) (*Competencies, error) {
	entry, err := s.GetRoleByNameAndLevel(role, level)
	if err != nil {
		return nil, err
	}

	out := &Competencies{
		Role:       entry.Role,
		Level:      entry.Level,
		Code:       entry.Code,
		YearsRange: entry.YearsRange,
		Core:       entry.CoreCompetencies,
	}
	if opts.IncludeComplementary {
		out.Complementary = entry.ComplementaryCompetencies
	}
	if opts.IncludeIndicators {
		out.Indicators = entry.Indicators
	}
	return out, nil
}

// GetByExperience resolves the level of a role whose years range contains the
// given experience, iterating levels in ascending order. When no range
// matches, the highest level is returned as a fallback.
func (s *Service) GetByExperience(role string, years float64) (*models.Entry, error) {
	if err := catalog.ValidateYears(years); err != nil {
		return nil, err
	}
	entries, err := s.roleEntries(role)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.YearsRange.Contains(years) {
			return s.translator.TranslateEntry(entry), nil
		}
	}
	// Monotonic ranges should leave no gaps; cap at the highest level.
	return s.translator.TranslateEntry(entries[len(entries)-1]), nil
}

// NextLevel pairs an entry with its successor. Next is nil at the top level.
type NextLevel struct {
	Current *models.Entry `json:"current"`
	Next    *models.Entry `json:"next"`
}

// GetNextLevel returns the entry at the given level together with the next
// level's entry, when one exists.
func (s *Service) GetNextLevel(role, level string) (*NextLevel, error) {
	current, err := s.entryAt(role, level)
	if err != nil {
		return nil, err
	}
	out := &NextLevel{Current: s.translator.TranslateEntry(current)}

	entries, err := s.roleEntries(role)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.LevelNumber > current.LevelNumber {
			out.Next = s.translator.TranslateEntry(entry)
			break
		}
	}
	return out, nil
}

// entryAt validates the inputs and resolves the untranslated entry of a role
// at one level.
func (s *Service) entryAt(role, level string) (*models.Entry, error) {
	n, err := s.parseInputs(role, level)
	if err != nil {
		return nil, err
	}
	entries := s.store.GetByRole(role)
	if len(entries) == 0 {
		return nil, catalog.RoleNotFound(role)
	}
	for _, entry := range entries {
		if entry.LevelNumber == n {
			return entry, nil
		}
	}
	return nil, catalog.LevelNotFound(role, catalog.LevelLabel(n))
}

// roleEntries validates the role name and returns its untranslated entries,
// ascending by level.
func (s *Service) roleEntries(role string) ([]*models.Entry, error) {
	if err := catalog.ValidateRoleName(role); err != nil {
		return nil, err
	}
	entries := s.store.GetByRole(role)
	if len(entries) == 0 {
		return nil, catalog.RoleNotFound(role)
	}
	return entries, nil
}

func (s *Service) parseInputs(role, level string) (int, error) {
	if err := catalog.ValidateRoleName(role); err != nil {
		return 0, err
	}
	return catalog.ParseLevel(level)
}

func (s *Service) translateAll(entries []*models.Entry) []*models.Entry {
	out := make([]*models.Entry, len(entries))
	for i, entry := range entries {
		out[i] = s.translator.TranslateEntry(entry)
	}
	return out
}
