// Package comparison implements set-based comparisons over the dataset:
// role-vs-role and level-vs-level competency diffs with Jaccard similarity,
// similar-role discovery, competency-gap reports with a heuristic learning
// estimate, and planned career paths between two levels.
//
// All entry lookups delegate to the query layer, so validation and not-found
// errors propagate unchanged.
package comparison
