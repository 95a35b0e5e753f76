package engine

import "fmt"

// ValidationError is returned before any mutation when a check-in is malformed.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid check-in: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid check-in: %s=%v %s", e.Field, e.Value, e.Reason)
}

// PersistenceError means the check-in was computed but not durably saved.
type PersistenceError struct {
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("check-in not saved: %v", e.Err)
}

func (e PersistenceError) Unwrap() error { return e.Err }

// CorruptStateError is returned when a stored blob cannot be used.
// Service.Load recovers from it by starting over with default data.
type CorruptStateError struct {
	Reason string
	Err    error
}

func (e CorruptStateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt player data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("corrupt player data: %s", e.Reason)
}

func (e CorruptStateError) Unwrap() error { return e.Err }
