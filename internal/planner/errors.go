package planner

import "errors"

var (
	// ErrUnavailable indicates the collaborator endpoint is unreachable.
	ErrUnavailable = errors.New("planning collaborator unavailable")

	// ErrTimeout indicates the request exceeded its configured timeout.
	ErrTimeout = errors.New("planning collaborator request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into
	// the expected structured form.
	ErrInvalidOutput = errors.New("invalid collaborator output")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("collaborator retry attempts exhausted")

	// ErrDisabled indicates the collaborator is switched off by config.
	ErrDisabled = errors.New("planning collaborator disabled")
)
