package weather

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoLocation is returned when neither a city nor coordinates were given.
	ErrNoLocation = errors.New("city or coordinates required")
)

// MalformedResponseError reports an upstream payload that is missing a
// required field or carries one of the wrong type.
type MalformedResponseError struct {
	Op    string // normalization step, e.g. "current" or "forecast sample"
	Field string // offending field path, when known
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed %s response: field %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed %s response: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// TransportError reports a network or HTTP failure while talking to the provider.
// StatusCode is zero when no response was received.
type TransportError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the provider answered that the location is unknown.
func (e *TransportError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err carries a provider "location not found" answer.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.NotFound()
}
