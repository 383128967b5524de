package search

import (
	"regexp"
	"sort"
	"strings"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/translation"

	"go.uber.org/zap"
)

// Match scores when a token hits the role name or the category.
const (
	roleScore     = 10
	categoryScore = 5

	defaultLimit = 20
	minTokenLen  = 3
)

var nonWord = regexp.MustCompile(`\W`)

// Service implements tokenized substring search over role names and
// categories, plus competency substring search.
type Service struct {
	store      *catalog.Store
	translator *translation.Translator
	logger     *zap.Logger
}

// NewService creates a new search service.
func NewService(store *catalog.Store, translator *translation.Translator, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		translator: translator,
		logger:     logger,
	}
}

// Options controls search behavior.
type Options struct {
	// Limit is the maximum number of results; zero or negative means 20.
	Limit int
}

// Result is one scored role match.
type Result struct {
	Role         string   `json:"role"`
	OriginalRole string   `json:"original_role"`
	Category     string   `json:"category"`
	MatchScore   int      `json:"match_score"`
	MatchedIn    []string `json:"matched_in"`
}

// Search tokenizes the query by whitespace, drops tokens shorter than three
// characters, strips non-word characters per token and scores every entry:
// +10 per token found in the role name, +5 per token found in the category
// (case-insensitive substring both). Results are deduplicated by role with a
// first-match-wins policy: once a role is registered, later entries for the
// same role never replace it, even with a higher score.
func (s *Service) Search(query string, opts Options) ([]Result, error) {
	if err := catalog.ValidateSearchQuery(query); err != nil {
		return nil, err
	}
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []Result{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	seen := make(map[string]struct{})
	results := []Result{}
	for _, entry := range s.store.All() {
		if _, ok := seen[entry.Role]; ok {
			continue
		}

		score := 0
		matchedRole, matchedCategory := false, false
		role := strings.ToLower(entry.Role)
		category := strings.ToLower(entry.Category)
		for _, token := range tokens {
			if strings.Contains(role, token) {
				score += roleScore
				matchedRole = true
			}
			if strings.Contains(category, token) {
				score += categoryScore
				matchedCategory = true
			}
		}
		if score == 0 {
			continue
		}

		matchedIn := []string{}
		if matchedRole {
			matchedIn = append(matchedIn, "role")
		}
		if matchedCategory {
			matchedIn = append(matchedIn, "category")
		}
		seen[entry.Role] = struct{}{}
		results = append(results, Result{
			Role:         s.translator.TranslateRoleName(entry.Role),
			OriginalRole: entry.Role,
			Category:     entry.Category,
			MatchScore:   score,
			MatchedIn:    matchedIn,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func tokenize(query string) []string {
	var tokens []string
	for _, raw := range strings.Fields(query) {
		if len(raw) < minTokenLen {
			continue
		}
		token := nonWord.ReplaceAllString(strings.ToLower(raw), "")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// CompetencyResult is one entry matched by competency substring search.
type CompetencyResult struct {
	Role                string   `json:"role"`
	OriginalRole        string   `json:"original_role"`
	Level               string   `json:"level"`
	Code                string   `json:"code"`
	Matches             int      `json:"matches"`
	MatchedCompetencies []string `json:"matched_competencies"`
}

// SearchByCompetency performs a per-item case-insensitive substring search
// across core and complementary competencies of every entry, sorted
// descending by match count.
func (s *Service) SearchByCompetency(text string) ([]CompetencyResult, error) {
	if err := catalog.ValidateSearchQuery(text); err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)

	results := []CompetencyResult{}
	for _, entry := range s.store.All() {
		var matched []string
		for _, c := range entry.CoreCompetencies {
			if strings.Contains(strings.ToLower(c), needle) {
				matched = append(matched, c)
			}
		}
		for _, c := range entry.ComplementaryCompetencies {
			if strings.Contains(strings.ToLower(c), needle) {
				matched = append(matched, c)
			}
		}
		if len(matched) == 0 {
			continue
		}
		results = append(results, CompetencyResult{
			Role:                s.translator.TranslateRoleName(entry.Role),
			OriginalRole:        entry.Role,
			Level:               entry.Level,
			Code:                entry.Code,
			Matches:             len(matched),
			MatchedCompetencies: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Matches > results[j].Matches
	})
	return results, nil
}

// RoleMatches aggregates competency matches per role.
type RoleMatches struct {
	Role         string   `json:"role"`
	OriginalRole string   `json:"original_role"`
	Matches      int      `json:"matches"`
	Codes        []string `json:"codes"`
}

// FindRolesWithCompetency regroups SearchByCompetency results by role with a
// running match total, sorted descending.
func (s *Service) FindRolesWithCompetency(text string) ([]RoleMatches, error) {
	entries, err := s.SearchByCompetency(text)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string]*RoleMatches)
	order := []string{}
	for _, r := range entries {
		agg, ok := byRole[r.OriginalRole]
		if !ok {
			agg = &RoleMatches{Role: r.Role, OriginalRole: r.OriginalRole}
			byRole[r.OriginalRole] = agg
			order = append(order, r.OriginalRole)
		}
		agg.Matches += r.Matches
		agg.Codes = append(agg.Codes, r.Code)
	}

	results := make([]RoleMatches, 0, len(order))
	for _, role := range order {
		results = append(results, *byRole[role])
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Matches > results[j].Matches
	})
	return results, nil
}
