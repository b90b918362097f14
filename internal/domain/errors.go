package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrNoOp                = errors.New("settlement changes nothing")
	ErrInsufficientPending = errors.New("requested quantity exceeds pending balance")
	ErrInsufficientStock   = errors.New("requested quantity exceeds stock on hand")
	ErrOrphanEvent         = errors.New("settlement event references a missing loan")
)

// ValidationError reports malformed input. It is raised before any persistence
// call is made, so no state has changed when the caller sees it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError wraps a transport or backend failure. The outcome of the
// underlying write is unknown; callers must re-read state to find out what
// landed instead of blindly retrying.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
