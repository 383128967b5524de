// Package query implements the typed read operations of the competency
// matrix: code and role/level lookups, competency projections, accumulated
// competencies, experience-based level resolution, career-path breakdowns,
// category/level filters and the per-role metadata listing.
//
// Every operation validates its inputs through the catalog validation rules
// before touching the store, and passes each returned entry through the
// translator. Operations are pure reads; the service holds no state of its
// own.
package query
