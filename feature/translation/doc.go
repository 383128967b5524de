// Package translation resolves dataset entries into the configured language.
//
// The role-name map (roles.json) is loaded once at construction. Per-role
// translation documents are loaded lazily, keyed by the canonical role name,
// and cached per translator instance. Missing translations never fail a
// query: the original text is returned and a warning is logged.
//
// The document cache is guarded by a mutex so concurrent readers of an
// already-initialized library do not race on lazy loads.
package translation
