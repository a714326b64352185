package common

import (
	"errors"
	"fmt"
)

// Kind classifies domain failures so handlers can map them to a status.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindValidation   Kind = "validation_failure"
	KindComputation  Kind = "computation_error"
)

// Error is a classified domain error. Two Errors match under errors.Is when
// their kind and message agree, so the sentinels below work with wrapping.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

var (
	ErrTournamentNotFound = &Error{Kind: KindNotFound, Message: "tournament not found"}
	ErrTeamNotFound       = &Error{Kind: KindNotFound, Message: "team not found"}
	ErrFixtureNotFound    = &Error{Kind: KindNotFound, Message: "fixture not found"}
	ErrNoBalls            = &Error{Kind: KindNotFound, Message: "no balls recorded for fixture"}

	ErrNotEnoughStandings = &Error{Kind: KindInvalidState, Message: "knockouts need at least two teams in the standings"}
	ErrFixtureCompleted   = &Error{Kind: KindInvalidState, Message: "fixture is already completed"}
	ErrEmptyRoster        = &Error{Kind: KindInvalidState, Message: "team roster has no players"}
	ErrTeamsNotDecided    = &Error{Kind: KindInvalidState, Message: "fixture teams have not been decided"}
)

// NotFound builds a not-found error for an entity.
func NotFound(entity string) error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// InvalidState builds an invalid-state error.
func InvalidState(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Validation wraps a payload validation failure.
func Validation(message string, err error) error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

// Computation wraps an unexpected failure.
func Computation(message string, err error) error {
	return &Error{Kind: KindComputation, Message: message, Err: err}
}

// KindOf returns the classification of err, or KindComputation for anything
// unclassified.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindComputation
}
