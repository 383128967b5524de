package query_test

import (
	"fmt"
	"testing"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"
	"competency-matrix/feature/query"
	"competency-matrix/feature/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// buildEntries produces three roles with nine levels each. Experience ranges
// run [n-1, n], open-ended at level 9.
func buildEntries() []models.Entry {
	roles := []struct {
		name     string
		category string
		prefix   string
	}{
		{"Backend Developer", "Engineering", "BE"},
		{"Frontend Developer", "Engineering", "FE"},
		{"QA Engineer", "Quality", "QA"},
	}

	var entries []models.Entry
	for _, r := range roles {
		for n := 1; n <= 9; n++ {
			var max *int
			if n < 9 {
				m := n
				max = &m
			}
			entries = append(entries, models.Entry{
				Category:    r.category,
				Role:        r.name,
				Level:       fmt.Sprintf("L%d - Stage %d", n, n),
				Code:        fmt.Sprintf("%s-L%d", r.prefix, n),
				LevelNumber: n,
				YearsRange:  models.YearsRange{Min: n - 1, Max: max},
				CoreCompetencies: []string{
					fmt.Sprintf("Shared skill %d", n),
					fmt.Sprintf("%s core %d-1", r.prefix, n),
					fmt.Sprintf("%s core %d-2", r.prefix, n),
				},
				ComplementaryCompetencies: []string{
					"Communication",
					fmt.Sprintf("%s extra %d", r.prefix, n),
				},
				Indicators: []string{
					fmt.Sprintf("%s indicator %d-1", r.prefix, n),
					fmt.Sprintf("%s indicator %d-2", r.prefix, n),
				},
			})
		}
	}
	return entries
}

func newService(t *testing.T) *query.Service {
	t.Helper()
	store := catalog.NewStore(zap.NewNop())
	store.Load(buildEntries())
	tr := translation.New("es", "es", t.TempDir(), zap.NewNop())
	return query.NewService(store, tr, zap.NewNop())
}

func TestService_GetRoleByCode(t *testing.T) {
	svc := newService(t)

	entry, err := svc.GetRoleByCode("BE-L3")
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", entry.Role)
	assert.Equal(t, 3, entry.LevelNumber)

	_, err = svc.GetRoleByCode("XX-L1")
	assert.True(t, catalog.IsNotFound(err))

	_, err = svc.GetRoleByCode("")
	assert.True(t, catalog.IsInvalidInput(err))
}

func TestService_GetRoleByNameAndLevel(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		level string
	}{
		{"Canonical", "L3"},
		{"BareDigit", "3"},
		{"Lowercase", "l3"},
		{"DisplayString", "L3 - Stage 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.GetRoleByNameAndLevel("Backend Developer", tt.level)
			require.NoError(t, err)
			assert.Equal(t, "BE-L3", entry.Code)
		})
	}

	_, err := svc.GetRoleByNameAndLevel("Unknown Role", "L3")
	assert.Equal(t, catalog.KindRoleNotFound, catalog.KindOf(err))

	_, err = svc.GetRoleByNameAndLevel("Backend Developer", "nope")
	assert.True(t, catalog.IsInvalidInput(err))

	_, err = svc.GetRoleByNameAndLevel("<b>Backend</b>", "L3")
	assert.True(t, catalog.IsInvalidInput(err))
}

// getRoleByCode and getRoleByNameAndLevel resolve the same entry for every
// (role, level) pair in the dataset.
func TestService_LookupConsistency(t *testing.T) {
	svc := newService(t)

	for _, source := range buildEntries() {
		byCode, err := svc.GetRoleByCode(source.Code)
		require.NoError(t, err)
		byName, err := svc.GetRoleByNameAndLevel(source.Role, source.Level)
		require.NoError(t, err)
		assert.Equal(t, byCode, byName)
	}
}

func TestService_GetAllLevelsForRole(t *testing.T) {
	svc := newService(t)

	entries, err := svc.GetAllLevelsForRole("QA Engineer")
	require.NoError(t, err)
	require.Len(t, entries, 9)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.LevelNumber)
	}

	_, err = svc.GetAllLevelsForRole("Unknown Role")
	assert.Equal(t, catalog.KindRoleNotFound, catalog.KindOf(err))
}

func TestService_GetCompetencies_Projection(t *testing.T) {
	svc := newService(t)

	full, err := svc.GetCompetencies("Backend Developer", "L3", query.CompetencyOptions{
		IncludeComplementary: true,
		IncludeIndicators:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "BE-L3", full.Code)
	assert.Equal(t, 2, full.YearsRange.Min)
	require.NotNil(t, full.YearsRange.Max)
	assert.Equal(t, 3, *full.YearsRange.Max)
	assert.NotEmpty(t, full.Core)
	assert.NotEmpty(t, full.Complementary)
	assert.NotEmpty(t, full.Indicators)

	// Sections are omitted entirely, not emptied, when the flag is off.
	bare, err := svc.GetCompetencies("Backend Developer", "L3", query.CompetencyOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, bare.Core)
	assert.Nil(t, bare.Complementary)
	assert.Nil(t, bare.Indicators)
}

func TestService_GetAccumulatedCompetencies(t *testing.T) {
	svc := newService(t)

	acc, err := svc.GetAccumulatedCompetencies("Backend Developer", "L5")
	require.NoError(t, err)
	assert.Equal(t, "L5", acc.TargetLevel)
	require.Len(t, acc.Levels, 5)
	for i, level := range acc.Levels {
		assert.Equal(t, i+1, level.LevelNumber)
		assert.NotEmpty(t, level.Core)
	}
}

func TestService_GetAccumulatedCompetencies_SkipsMissingLevels(t *testing.T) {
	store := catalog.NewStore(zap.NewNop())
	var entries []models.Entry
	for _, e := range buildEntries() {
		if e.Role == "Backend Developer" && e.LevelNumber == 2 {
			continue
		}
		entries = append(entries, e)
	}
	store.Load(entries)
	tr := translation.New("es", "es", t.TempDir(), zap.NewNop())
	svc := query.NewService(store, tr, zap.NewNop())

	acc, err := svc.GetAccumulatedCompetencies("Backend Developer", "L4")
	require.NoError(t, err)
	require.Len(t, acc.Levels, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{
		acc.Levels[0].LevelNumber, acc.Levels[1].LevelNumber, acc.Levels[2].LevelNumber,
	})
}

func TestService_GetByExperience(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name  string
		years float64
		code  string
	}{
		{"Zero", 0, "BE-L1"},
		{"MidRange", 1.5, "BE-L2"},
		{"Boundary", 2, "BE-L2"},
		{"Veteran", 40, "BE-L9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.GetByExperience("Backend Developer", tt.years)
			require.NoError(t, err)
			assert.Equal(t, tt.code, entry.Code)
		})
	}

	_, err := svc.GetByExperience("Backend Developer", -1)
	assert.True(t, catalog.IsInvalidInput(err))

	_, err = svc.GetByExperience("Unknown Role", 2)
	assert.Equal(t, catalog.KindRoleNotFound, catalog.KindOf(err))
}

func TestService_GetNextLevel(t *testing.T) {
	svc := newService(t)

	next, err := svc.GetNextLevel("Backend Developer", "L3")
	require.NoError(t, err)
	assert.Equal(t, "BE-L3", next.Current.Code)
	require.NotNil(t, next.Next)
	assert.Contains(t, next.Next.Level, "L4")

	top, err := svc.GetNextLevel("Backend Developer", "L9")
	require.NoError(t, err)
	assert.Equal(t, "BE-L9", top.Current.Code)
	assert.Nil(t, top.Next)
}

func TestService_GetCareerPathComplete(t *testing.T) {
	svc := newService(t)

	path, err := svc.GetCareerPathComplete("Backend Developer", "L5")
	require.NoError(t, err)

	require.NotNil(t, path.CurrentLevel)
	assert.Equal(t, 5, path.CurrentLevel.LevelNumber)
	assert.Len(t, path.MasteredLevels, 4)
	assert.Len(t, path.GrowthPath, 4)

	// Five competencies per level: 20 mastered, 5 current, 20 remaining.
	assert.Equal(t, 20, path.Summary.MasteredCompetencies)
	assert.Equal(t, 5, path.Summary.CurrentCompetencies)
	assert.Equal(t, 20, path.Summary.RemainingCompetencies)
	assert.Equal(t, 56, path.Summary.ProgressPercentage)
	assert.GreaterOrEqual(t, path.Summary.ProgressPercentage, 0)
	assert.LessOrEqual(t, path.Summary.ProgressPercentage, 100)
}

func TestService_FilterByLevel(t *testing.T) {
	svc := newService(t)

	entries, err := svc.FilterByLevel(6)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, entry := range entries {
		assert.Equal(t, 6, entry.LevelNumber)
	}

	_, err = svc.FilterByLevel(0)
	assert.True(t, catalog.IsInvalidInput(err))
	_, err = svc.FilterByLevel(10)
	assert.True(t, catalog.IsInvalidInput(err))
}

func TestService_FilterByCategory(t *testing.T) {
	svc := newService(t)

	entries, err := svc.FilterByCategory("Engineering")
	require.NoError(t, err)
	assert.Len(t, entries, 18)

	entries, err = svc.FilterByCategory("Marketing")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = svc.FilterByCategory(" ")
	assert.True(t, catalog.IsInvalidInput(err))
}

func TestService_GetAllRolesWithMetadata(t *testing.T) {
	svc := newService(t)

	metadata, err := svc.GetAllRolesWithMetadata()
	require.NoError(t, err)
	assert.Equal(t, 3, metadata.Total)
	require.Len(t, metadata.Roles, 3)

	backend := metadata.Roles[0]
	assert.Equal(t, "Backend Developer", backend.OriginalRole)
	assert.Equal(t, "Engineering", backend.Category)
	assert.Equal(t, 9, backend.Levels)
	assert.Equal(t, 45, backend.Competencies)
	assert.Equal(t, 18, backend.Indicators)
	assert.Equal(t, 0, backend.YearsRange.Min)
	// The open-ended level 9 survives aggregation as a nil max.
	assert.Nil(t, backend.YearsRange.Max)

	assert.ElementsMatch(t, []string{"Backend Developer", "Frontend Developer"}, metadata.ByCategory["Engineering"])
	assert.ElementsMatch(t, []string{"QA Engineer"}, metadata.ByCategory["Quality"])
}

func TestService_GetAllRolesWithMetadata_BoundedMax(t *testing.T) {
	store := catalog.NewStore(zap.NewNop())
	var entries []models.Entry
	for _, e := range buildEntries() {
		if e.LevelNumber == 9 {
			continue
		}
		entries = append(entries, e)
	}
	store.Load(entries)
	tr := translation.New("es", "es", t.TempDir(), zap.NewNop())
	svc := query.NewService(store, tr, zap.NewNop())

	metadata, err := svc.GetAllRolesWithMetadata()
	require.NoError(t, err)
	backend := metadata.Roles[0]
	require.NotNil(t, backend.YearsRange.Max)
	assert.Equal(t, 8, *backend.YearsRange.Max)
}
