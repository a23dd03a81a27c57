package errors

import "net/http"

// Queue lifecycle error types. Every engine operation fails with one of these
// (or the generic types in errors.go) before any mutation happens.
const (
	ErrorTypeQueueClosed       ErrorType = "queue_closed"
	ErrorTypeInvalidState      ErrorType = "invalid_state"
	ErrorTypeInvalidTransition ErrorType = "invalid_transition"
	ErrorTypeAlreadyServing    ErrorType = "already_serving"
)

// NewQueueClosedError reports an issue or advance attempt against a closed queue.
func NewQueueClosedError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeQueueClosed,
		Message: message,
		Code:    http.StatusConflict,
		Details: detail,
	}
}

// NewInvalidStateError reports an operation that is not valid from the
// aggregate's current state (e.g. resuming a closed queue).
func NewInvalidStateError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeInvalidState,
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Details: detail,
	}
}

// NewInvalidTransitionError reports a ticket state edge that does not exist
// in the lifecycle graph.
func NewInvalidTransitionError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Details: detail,
	}
}

// NewAlreadyServingError reports a call-next attempt while the queue's serving
// slot is still occupied.
func NewAlreadyServingError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    ErrorTypeAlreadyServing,
		Message: message,
		Code:    http.StatusConflict,
		Details: detail,
	}
}

// IsQueueClosedError checks if the error is a queue closed error
func IsQueueClosedError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeQueueClosed
}

// IsInvalidStateError checks if the error is an invalid state error
func IsInvalidStateError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidState
}

// IsInvalidTransitionError checks if the error is an invalid transition error
func IsInvalidTransitionError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidTransition
}

// IsAlreadyServingError checks if the error is an already serving error
func IsAlreadyServingError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeAlreadyServing
}
