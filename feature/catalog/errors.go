package catalog

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error categories the dataset layer can produce.
type Kind int

const (
	// KindInvalidInput marks malformed role names, levels or query strings.
	KindInvalidInput Kind = iota + 1
	// KindRoleNotFound marks a role name or code with zero backing entries.
	KindRoleNotFound
	// KindLevelNotFound marks a known role without an entry at the
	// requested level.
	KindLevelNotFound
	// KindLoadFailure marks an unreadable directory or unparseable file.
	KindLoadFailure
)

// String returns the kind's stable identifier.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindRoleNotFound:
		return "role_not_found"
	case KindLevelNotFound:
		return "level_not_found"
	case KindLoadFailure:
		return "load_failure"
	default:
		return "unknown"
	}
}

// Error carries an error kind plus the structured context of the failed
// operation. Fields are only set when they apply.
type Error struct {
	Kind   Kind
	Role   string
	Level  string
	Code   string
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Role != "" {
		msg += fmt.Sprintf(" (role %q)", e.Role)
	}
	if e.Level != "" {
		msg += fmt.Sprintf(" (level %s)", e.Level)
	}
	if e.Code != "" {
		msg += fmt.Sprintf(" (code %s)", e.Code)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %s)", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput builds a KindInvalidInput error with a human-readable reason.
func InvalidInput(reason string) *Error {
	return &Error{Kind: KindInvalidInput, Reason: reason}
}

// RoleNotFound builds a KindRoleNotFound error for the given role name.
func RoleNotFound(role string) *Error {
	return &Error{Kind: KindRoleNotFound, Role: role}
}

// CodeNotFound builds a KindRoleNotFound error for the given entry code.
func CodeNotFound(code string) *Error {
	return &Error{Kind: KindRoleNotFound, Code: code}
}

// LevelNotFound builds a KindLevelNotFound error.
func LevelNotFound(role, level string) *Error {
	return &Error{Kind: KindLevelNotFound, Role: role, Level: level}
}

// LoadFailure builds a KindLoadFailure error wrapping the underlying cause.
func LoadFailure(path string, err error) *Error {
	return &Error{Kind: KindLoadFailure, Path: path, Err: err}
}

// KindOf extracts the error kind, or 0 for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a role or level lookup miss.
func IsNotFound(err error) bool {
	k := KindOf(err)
	return k == KindRoleNotFound || k == KindLevelNotFound
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}
