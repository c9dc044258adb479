package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing principal or entity.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCorpus signals that no candidate entities exist in the required state.
	ErrEmptyCorpus = errors.New("empty corpus")
	// ErrDegenerateVector signals a principal without extractable features.
	ErrDegenerateVector = errors.New("degenerate feature vector")
	// ErrInvalidRequest signals malformed request parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized signals a missing or invalid caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals a caller without the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrCorpusUnavailable signals that the corpus could not be (re)built.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)

// SkipError records an entity that was skipped during a ranking or build pass.
type SkipError struct {
	Kind string
	ID   string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skip %s %q: %v", e.Kind, e.ID, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// NewSkip creates a skip error for the given entity.
func NewSkip(kind, id string, err error) error {
	return &SkipError{Kind: kind, ID: id, Err: err}
}
