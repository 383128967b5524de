// Package library provides the top-level entry point of the competency
// matrix: a lazily-initialized bundle of loader, indexed store, translator
// and the query, search and comparison services, scoped to one configured
// language.
//
// Initialization happens once, guarded by sync.Once, before any service
// reference is handed out. Reads after that point are pure and safe to run
// concurrently; Reload is the one mutating operation and must not race with
// readers.
package library
