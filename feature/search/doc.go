// Package search implements the filter/search layer: tokenized substring
// search over role names and categories with additive scoring, and substring
// search over competency text.
//
// Role deduplication in Search is first-match-wins: the first entry that
// scores for a role registers it, and later entries for the same role are
// ignored regardless of score.
package search
