package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for workflow conflicts and aggregate completeness.
// ErrConflict marks a state that must be rendered as "already processed"
// or "locked" rather than a generic failure; ErrRecordIncomplete marks a
// verification record that cannot transition to its terminal state yet.
var (
	ErrConflict         = errors.New("conflict")
	ErrRecordIncomplete = errors.New("record is incomplete")
)

// ConflictError indicates that an operation lost a race or attempted to
// alter a value that is locked: a single-use access code that was already
// consumed, or a driver identity that is already recorded.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping the
// underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.ParamName))
}

func (e *ConflictError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConflict, e.Cause}
	}
	return []error{ErrConflict}
}

// IncompleteRecordError aggregates every unmet completion condition of a
// verification record into a single error, so the operator sees one
// actionable list instead of a stack of field errors.
type IncompleteRecordError struct {
	Missing []string
}

// NewIncompleteRecordError creates an IncompleteRecordError from the list
// of unmet conditions. The list must not be empty.
func NewIncompleteRecordError(missing []string) *IncompleteRecordError {
	return &IncompleteRecordError{Missing: missing}
}

func (e *IncompleteRecordError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrRecordIncomplete, sanitize(strings.Join(e.Missing, ", ")))
}

func (e *IncompleteRecordError) Unwrap() error {
	return ErrRecordIncomplete
}
