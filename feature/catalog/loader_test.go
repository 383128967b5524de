package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"competency-matrix/feature/catalog"
	"competency-matrix/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeDoc(t *testing.T, dir, name string, doc models.RoleDocument) {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func levelData(prefix string, n int, max *int) models.LevelData {
	return models.LevelData{
		Level:                     catalog.LevelLabel(n),
		LevelNumber:               n,
		YearsRange:                models.YearsRange{Min: n - 1, Max: max},
		CoreCompetencies:          []string{prefix + " skill"},
		ComplementaryCompetencies: []string{"Communication"},
		Indicators:                []string{prefix + " indicator"},
	}
}

func TestLoader_LoadDir(t *testing.T) {
	dir := t.TempDir()
	two, three := 2, 3

	writeDoc(t, dir, "frontend-developer.json", models.RoleDocument{
		Role:     "Frontend Developer",
		Category: "Engineering",
		Levels: map[string]models.LevelData{
			"FE-L2": levelData("FE", 2, &two),
		},
	})
	writeDoc(t, dir, "backend-developer.json", models.RoleDocument{
		Role:     "Backend Developer",
		Category: "Engineering",
		Levels: map[string]models.LevelData{
			"BE-L3": levelData("BE", 3, &three),
			"BE-L2": levelData("BE", 2, &two),
		},
	})
	// Files without the .json extension are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	entries, err := catalog.NewLoader(zap.NewNop()).LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Filename order first, then code order inside one document.
	assert.Equal(t, "BE-L2", entries[0].Code)
	assert.Equal(t, "BE-L3", entries[1].Code)
	assert.Equal(t, "FE-L2", entries[2].Code)

	assert.Equal(t, "Backend Developer", entries[0].Role)
	assert.Equal(t, "Engineering", entries[0].Category)
	assert.Equal(t, 2, entries[0].LevelNumber)
}

func TestLoader_LoadDir_MissingDir(t *testing.T) {
	_, err := catalog.NewLoader(zap.NewNop()).LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, catalog.KindLoadFailure, catalog.KindOf(err))
	assert.Contains(t, err.Error(), "nope")
}

func TestLoader_LoadDir_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := catalog.NewLoader(zap.NewNop()).LoadDir(dir)
	require.Error(t, err)
	assert.Equal(t, catalog.KindLoadFailure, catalog.KindOf(err))
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLoader_LoadDir_SkipsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	two := 2

	data := levelData("BE", 2, &two)
	mismatched := levelData("BE", 5, &two)
	writeDoc(t, dir, "backend-developer.json", models.RoleDocument{
		Role:     "Backend Developer",
		Category: "Engineering",
		Levels: map[string]models.LevelData{
			"BE-L2": data,
			// Embedded digit disagrees with levelNumber; dropped with a warning.
			"BE-L3": mismatched,
		},
	})

	entries, err := catalog.NewLoader(zap.NewNop()).LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "BE-L2", entries[0].Code)
}
