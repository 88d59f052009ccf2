// Package apperr holds the error kinds shared by the content and theme pipelines.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation is malformed caller input, rejected before any external call.
	ErrValidation = errors.New("validation error")

	// ErrTranslation is a failed or schema-violating translator call.
	ErrTranslation = errors.New("translation error")

	// ErrReconciliation is a translated project list that cannot be aligned with the source.
	ErrReconciliation = fmt.Errorf("reconciliation error: %w", ErrTranslation)

	// ErrGeneration is a failed palette generator call.
	ErrGeneration = errors.New("generation error")

	// ErrSchemaValidation is a generated or supplied palette that violates the palette schema.
	ErrSchemaValidation = fmt.Errorf("schema validation error: %w", ErrGeneration)

	// ErrStorage is a durable storage read or write failure. It is logged, never surfaced.
	ErrStorage = errors.New("storage error")

	// ErrRequestInFlight rejects a request while an identical one is still pending.
	ErrRequestInFlight = errors.New("request already in flight")

	// ErrUnavailable marks a feature whose backing service is not configured.
	ErrUnavailable = errors.New("service unavailable")
)

// Validationf builds an ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error kind to the response status used at the HTTP edge.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrRequestInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrTranslation), errors.Is(err, ErrGeneration):
		return http.StatusBadGateway
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
