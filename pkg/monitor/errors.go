package monitor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is an authentication failure: the credential resolved
	// to no active lunchbox. Reported distinctly from payload validation.
	ErrInvalidAPIKey = errors.New("invalid or inactive device API key")

	// ErrAlreadyResolved is returned by ResolveAlert on a closed alert. The
	// alert record is untouched.
	ErrAlreadyResolved = errors.New("alert was already resolved")
)

// ValidationError rejects a whole ingestion batch. Fields maps a field path
// like "readings[2].sensor_type" to its errors.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid ingest payload: %d field(s) rejected", len(e.Fields))
}
