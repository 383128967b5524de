// Package catalog implements the dataset foundation of the competency matrix.
//
// It owns three concerns:
//  1. Loader: reads per-role JSON documents from a language directory and
//     flattens them into entries (one per role/level pair).
//  2. Store: holds all entries behind five lookup indexes (code, role,
//     category, lowercased competency text, level number), built once at
//     load time. Every accessor returns deep copies, so readers can never
//     mutate shared index data.
//  3. Validation and errors: the shared input rules (role name, level token,
//     query string) and the closed error taxonomy (invalid input, role not
//     found, level not found, load failure) used by every read layer.
//
// The store is not safe for concurrent use with Load; loading is a one-time
// initialization barrier, after which reads are pure and may run freely.
package catalog
