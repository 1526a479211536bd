package domain

import "fmt"

// ValidationError signals malformed or missing required input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

// AuthorizationError signals that the acting user lacks the role an
// operation requires.
type AuthorizationError struct {
	Actor    string
	Required Role
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %q requires role %q for this operation", e.Actor, e.Required)
}

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Kind string // "client", "project", "user", ...
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
