package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("target not found")
	ErrUnknownAction      = errors.New("unknown action")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrReasonRequired     = errors.New("reason is required for this action")
	ErrAmbiguousTarget    = errors.New("identifier does not match the target this action expects")
	ErrPersistenceFailure = errors.New("persistence failure")
	ErrUnauthorized       = errors.New("insufficient privileges")
)

// TransitionError decorates ErrInvalidTransition with the current state and the
// actions still legal from it, so callers can surface both to the admin.
type TransitionError struct {
	CurrentStatus string
	Action        string
	Allowed       []string
}

func (e *TransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}
	return fmt.Sprintf("action %q is not allowed from status %s (allowed: %s)", e.Action, e.CurrentStatus, allowed)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func NewTransitionError(currentStatus, action string) error {
	return &TransitionError{
		CurrentStatus: currentStatus,
		Action:        action,
		Allowed:       AllowedActions(currentStatus),
	}
}
