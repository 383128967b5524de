package comparison

import (
	"math"
	"sort"

	"competency-matrix/core/utils"
	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
	"competency-matrix/feature/query"

	"go.uber.org/zap"
)

// DefaultSimilarityThreshold is the minimum Jaccard similarity for
// FindSimilarRoles when the caller passes no threshold.
const DefaultSimilarityThreshold = 0.3

// sampleCommonLimit caps the common-competency sample carried per similar
// role; the full count is reported separately.
const sampleCommonLimit = 10

// Service implements set-based comparisons between roles and levels. Lookups
// go through the query layer, so validation and not-found errors propagate
// unchanged.
type Service struct {
	store   *catalog.Store
	queries *query.Service
	logger  *zap.Logger
}

// NewService creates a new comparison service.
func NewService(store *catalog.Store, queries *query.Service, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		queries: queries,
		logger:  logger,
	}
}

// RoleSide is one side of a role comparison.
type RoleSide struct {
	Role   string   `json:"role"`
	Code   string   `json:"code"`
	Total  int      `json:"total"`
	Unique []string `json:"unique"`
}

// RoleComparison is the set comparison of two roles at the same level.
type RoleComparison struct {
	Level      string   `json:"level"`
	Role1      RoleSide `json:"role1"`
	Role2      RoleSide `json:"role2"`
	Common     []string `json:"common"`
	Similarity float64  `json:"similarity"`
}

// CompareRoles compares the competency sets (core plus complementary) of two
// roles at the same level. Similarity is Jaccard, rounded to 3 decimals, 0
// when both sets are empty.
func (s *Service) CompareRoles(role1, role2, level string) (*RoleComparison, error) {
	e1, err := s.queries.GetRoleByNameAndLevel(role1, level)
	if err != nil {
		return nil, err
	}
	e2, err := s.queries.GetRoleByNameAndLevel(role2, level)
	if err != nil {
		return nil, err
	}

	set1 := competencySet(e1)
	set2 := competencySet(e2)
	common := utils.Intersect(set1, set2)

	return &RoleComparison{
		Level: catalog.LevelLabel(e1.LevelNumber),
		Role1: RoleSide{
			Role:   e1.Role,
			Code:   e1.Code,
			Total:  len(set1),
			Unique: utils.Difference(set1, set2),
		},
		Role2: RoleSide{
			Role:   e2.Role,
			Code:   e2.Code,
			Total:  len(set2),
			Unique: utils.Difference(set2, set1),
		},
		Common:     common,
		Similarity: jaccard(len(set1), len(set2), len(common)),
	}, nil
}

// LevelComparison is the set comparison between two levels of one role.
type LevelComparison struct {
	Role       string   `json:"role"`
	FromLevel  string   `json:"from_level"`
	ToLevel    string   `json:"to_level"`
	Maintained []string `json:"maintained"`
	New        []string `json:"new"`
	Deprecated []string `json:"deprecated"`
	GrowthRate int      `json:"growth_rate"`
}

// CompareLevels compares the competency sets of two levels of one role,
// reporting maintained (intersection), new (in to, not in from) and
// deprecated (in from, not in to) competencies. GrowthRate is the new set
// relative to the from set in percent, 0 when the from set is empty.
func (s *Service) CompareLevels(role, fromLevel, toLevel string) (*LevelComparison, error) {
	from, err := s.queries.GetRoleByNameAndLevel(role, fromLevel)
	if err != nil {
		return nil, err
	}
	to, err := s.queries.GetRoleByNameAndLevel(role, toLevel)
	if err != nil {
		return nil, err
	}

	fromSet := competencySet(from)
	toSet := competencySet(to)
	newSet := utils.Difference(toSet, fromSet)

	growth := 0
	if len(fromSet) > 0 {
		growth = int(math.Round(100 * float64(len(newSet)) / float64(len(fromSet))))
	}

	return &LevelComparison{
		Role:       from.Role,
		FromLevel:  catalog.LevelLabel(from.LevelNumber),
		ToLevel:    catalog.LevelLabel(to.LevelNumber),
		Maintained: utils.Intersect(fromSet, toSet),
		New:        newSet,
		Deprecated: utils.Difference(fromSet, toSet),
		GrowthRate: growth,
	}, nil
}

// SimilarRole is one role scored against the target's full competency set.
type SimilarRole struct {
	Role         string   `json:"role"`
	OriginalRole string   `json:"original_role"`
	Similarity   float64  `json:"similarity"`
	CommonCount  int      `json:"common_count"`
	SampleCommon []string `json:"sample_common"`
}

// FindSimilarRoles aggregates each role's all-levels competency set and
// keeps the roles whose Jaccard similarity against the target's set reaches
// the threshold (<=0 means the 0.3 default), sorted descending.
func (s *Service) FindSimilarRoles(role string, threshold float64) ([]SimilarRole, error) {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	targetSet, err := s.fullCompetencySet(role)
	if err != nil {
		return nil, err
	}

	results := []SimilarRole{}
	for _, other := range s.store.AllRoles() {
		if other == role {
			continue
		}
		otherSet, err := s.fullCompetencySet(other)
		if err != nil {
			return nil, err
		}

		common := utils.Intersect(targetSet, otherSet)
		similarity := jaccard(len(targetSet), len(otherSet), len(common))
		if similarity < threshold {
			continue
		}

		sample := common
		if len(sample) > sampleCommonLimit {
			sample = sample[:sampleCommonLimit]
		}
		results = append(results, SimilarRole{
			Role:         s.queries.TranslateRoleName(other),
			OriginalRole: other,
			Similarity:   similarity,
			CommonCount:  len(common),
			SampleCommon: sample,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	return results, nil
}

// fullCompetencySet unions core and complementary competencies across every
// level of a role.
func (s *Service) fullCompetencySet(role string) ([]string, error) {
	entries, err := s.queries.GetAllLevelsForRole(role)
	if err != nil {
		return nil, err
	}
	set := []string{}
	for _, entry := range entries {
		set = utils.Union(set, competencySet(entry))
	}
	return set, nil
}

func competencySet(entry *models.Entry) []string {
	return utils.Union(entry.CoreCompetencies, entry.ComplementaryCompetencies)
}

// jaccard computes |common| / (|a| + |b| - |common|) rounded to 3 decimals,
// 0 when both sets are empty.
func jaccard(a, b, common int) float64 {
	union := a + b - common
	if union == 0 {
		return 0
	}
	return math.Round(1000*float64(common)/float64(union)) / 1000
}
