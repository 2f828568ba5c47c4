package models

import (
	"strings"
)

// ErrorNotFound covers both a nonexistent record and a record owned by
// someone else. Callers cannot tell the two apart.
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "record not found"
	}
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

// ErrorConflict is the defensive surface of the single-unsaved-article
// constraint: only a write that bypasses the get-or-create path can hit it.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the collected set of field failures from a single
// validation pass.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, ", ")
}
