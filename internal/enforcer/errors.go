package enforcer

import "fmt"

// UnhandledSourceError is returned for events whose source is not governed.
type UnhandledSourceError struct {
	Source string
}

func (e *UnhandledSourceError) Error() string {
	return fmt.Sprintf("unhandled source: %q", e.Source)
}

// MissingFieldError is returned when an event lacks the field identifying the created resource.
type MissingFieldError struct {
	Source string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s event is missing %s", e.Source, e.Field)
}

// ContainedError wraps a fault the resource handled itself. It is reported but never aborts an invocation.
type ContainedError struct {
	Cause error
}

func (e *ContainedError) Error() string {
	return e.Cause.Error()
}

func (e *ContainedError) Unwrap() error {
	return e.Cause
}
