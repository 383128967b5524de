// Package models defines the data records of the competency dataset: the
// Entry (one role at one level), the RoleDocument source-file shape, and the
// dataset Statistics summary.
package models
