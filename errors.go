package elicit

import (
	"errors"
	"fmt"
)

// Message codes produced by built-in conformance checks (exported consts for
// IDE completion and type safety by convention). Custom validators are free to
// return any message text; these codes feed the i18n translator.
const (
	CodeInvalidType = "invalid_type"
	CodeRequired    = "required"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeTooFew      = "too_few"
	CodeTooMany     = "too_many"
	CodeInvalidEnum = "invalid_enum"
)

// ErrCancelled indicates the run ended before every question was answered,
// e.g. a user-initiated abort at the collection surface.
var ErrCancelled = errors.New("elicit: survey cancelled")

// Store access errors. These mark contract violations in reconstruction or
// store population, a programming-error class distinct from ErrCancelled and
// BackendError; callers prevent them by upholding the collection obligations
// rather than catching them at runtime.
var (
	ErrMissingResponse = errors.New("elicit: missing response")
	ErrTypeMismatch    = errors.New("elicit: response type mismatch")
)

// BackendError wraps an I/O or presentation-layer fault unrelated to input
// validity.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return "elicit: backend error: " + e.Err.Error()
}

func (e *BackendError) Unwrap() error { return e.Err }

// WrapBackend wraps err as a backend failure. ErrCancelled and existing
// backend errors pass through untouched so the two run-level conditions stay
// distinguishable with errors.Is.
func WrapBackend(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCancelled) {
		return err
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Err: err}
}

func missingResponse(p Path) error {
	return fmt.Errorf("%w at %s", ErrMissingResponse, p)
}

func typeMismatch(p Path, expected, actual string) error {
	return fmt.Errorf("%w at %s: expected %s, got %s", ErrTypeMismatch, p, expected, actual)
}
