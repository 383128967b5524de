package utils_test

import (
	"testing"

	"competency-matrix/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, utils.Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, utils.Dedupe(nil))
}

func TestUnion(t *testing.T) {
	got := utils.Union([]string{"a", "b"}, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestIntersect(t *testing.T) {
	got := utils.Intersect([]string{"a", "b", "c"}, []string{"c", "a", "d"})
	assert.Equal(t, []string{"a", "c"}, got)

	assert.Empty(t, utils.Intersect([]string{"a"}, []string{"b"}))
}

func TestDifference(t *testing.T) {
	got := utils.Difference([]string{"a", "b", "c"}, []string{"b"})
	assert.Equal(t, []string{"a", "c"}, got)

	assert.Empty(t, utils.Difference(nil, []string{"a"}))
}
