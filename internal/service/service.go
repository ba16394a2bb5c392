// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/racha-stats-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error, wrapped or not.
func FieldErrors(err error) []FieldError {
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PeriodQuery is the raw period selection as received from a client.
// Empty strings mean "not provided".
type PeriodQuery struct {
	Period       string
	Year         string
	Quadrimester string
}

// StandingsService defines the statistics use cases of a racha.
type StandingsService interface {
	// GetStandings recomputes athlete and team standings for the requested period.
	GetStandings(ctx context.Context, rachaID string, q PeriodQuery) (model.Standings, error)
	// ListYears returns the distinct years with matches, most recent first.
	ListYears(ctx context.Context, rachaID string) ([]int, error)
}
