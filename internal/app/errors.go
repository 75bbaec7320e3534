package app

type ErrorCode string

const (
	ErrGoalNotFound    ErrorCode = "GOAL_NOT_FOUND"
	ErrEventNotFound   ErrorCode = "EVENT_NOT_FOUND"
	ErrNoActiveGoals   ErrorCode = "NO_ACTIVE_GOALS"
	ErrNothingToPlan   ErrorCode = "NOTHING_TO_PLAN"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrInternal        ErrorCode = "INTERNAL_ERROR"
)

// Error is the typed error surfaced by every use case.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}
