package models_test

import (
	"testing"

	"competency-matrix/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func validEntry() models.Entry {
	return models.Entry{
		Category:                  "Engineering",
		Role:                      "Backend Developer",
		Level:                     "L3 - Junior II",
		Code:                      "BE-L3",
		LevelNumber:               3,
		YearsRange:                models.YearsRange{Min: 2, Max: intPtr(3)},
		CoreCompetencies:          []string{"API design", "Relational modeling"},
		ComplementaryCompetencies: []string{"Communication"},
		Indicators:                []string{"Ships features unsupervised"},
	}
}

func TestLevelNumberFromCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		num  int
		ok   bool
	}{
		{"Simple", "BE-L3", 3, true},
		{"TopLevel", "QA-L9", 9, true},
		{"LongPrefix", "DEVOPS-L1", 1, true},
		{"Digits", "A1B2-L5", 5, true},
		{"LevelZero", "BE-L0", 0, false},
		{"TwoDigitLevel", "BE-L10", 0, false},
		{"Lowercase", "be-L3", 0, false},
		{"PrefixTooShort", "B-L3", 0, false},
		{"PrefixTooLong", "ABCDEFG-L3", 0, false},
		{"NoDash", "BEL3", 0, false},
		{"Empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, ok := models.LevelNumberFromCode(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.num, num)
		})
	}
}

func TestEntry_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Entry)
		reason string
	}{
		{"Valid", func(e *models.Entry) {}, ""},
		{"MissingRole", func(e *models.Entry) { e.Role = "" }, "missing role"},
		{"MissingCategory", func(e *models.Entry) { e.Category = "" }, "missing category"},
		{"MalformedCode", func(e *models.Entry) { e.Code = "be-3" }, `malformed code "be-3"`},
		{"CodeLevelMismatch", func(e *models.Entry) { e.LevelNumber = 4 }, "code BE-L3 does not match level number 4"},
		{"OpenRangeBelowTop", func(e *models.Entry) { e.YearsRange.Max = nil }, "open-ended years range below level 9"},
		{"InvertedRange", func(e *models.Entry) { e.YearsRange = models.YearsRange{Min: 5, Max: intPtr(3)} }, "years range min 5 above max 3"},
		{"EmptyCoreCompetency", func(e *models.Entry) { e.CoreCompetencies = []string{"ok", ""} }, "empty core competency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)
			assert.Equal(t, tt.reason, entry.Validate())
		})
	}
}

func TestEntry_Validate_OpenRangeAtTop(t *testing.T) {
	entry := validEntry()
	entry.Code = "BE-L9"
	entry.LevelNumber = 9
	entry.YearsRange = models.YearsRange{Min: 8, Max: nil}
	assert.Empty(t, entry.Validate())
}

func TestEntry_Clone_IsDeep(t *testing.T) {
	entry := validEntry()
	clone := entry.Clone()
	require.Equal(t, &entry, clone)

	clone.CoreCompetencies[0] = "mutated"
	clone.Indicators[0] = "mutated"
	*clone.YearsRange.Max = 99

	assert.Equal(t, "API design", entry.CoreCompetencies[0])
	assert.Equal(t, "Ships features unsupervised", entry.Indicators[0])
	assert.Equal(t, 3, *entry.YearsRange.Max)
}

func TestEntry_Clone_Nil(t *testing.T) {
	var entry *models.Entry
	assert.Nil(t, entry.Clone())
}

func TestYearsRange_Contains(t *testing.T) {
	bounded := models.YearsRange{Min: 2, Max: intPtr(3)}
	assert.False(t, bounded.Contains(1))
	assert.True(t, bounded.Contains(2))
	assert.True(t, bounded.Contains(2.5))
	assert.True(t, bounded.Contains(3))
	assert.False(t, bounded.Contains(3.5))

	open := models.YearsRange{Min: 8, Max: nil}
	assert.False(t, open.Contains(7))
	assert.True(t, open.Contains(8))
	assert.True(t, open.Contains(40))
}

func TestRoleDocument_Entry(t *testing.T) {
	doc := models.RoleDocument{
		Role:     "Backend Developer",
		Category: "Engineering",
	}
	data := models.LevelData{
		Level:            "L2 - Junior I",
		LevelNumber:      2,
		YearsRange:       models.YearsRange{Min: 1, Max: intPtr(2)},
		CoreCompetencies: []string{"HTTP basics"},
	}

	entry := doc.Entry("BE-L2", data)
	assert.Equal(t, "Backend Developer", entry.Role)
	assert.Equal(t, "Engineering", entry.Category)
	assert.Equal(t, "BE-L2", entry.Code)
	assert.Equal(t, 2, entry.LevelNumber)
	assert.Equal(t, []string{"HTTP basics"}, entry.CoreCompetencies)
}
