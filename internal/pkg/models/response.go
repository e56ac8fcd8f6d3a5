package models

import "net/http"

// Result is the coded response envelope every auth flow resolves to.
// Flows return a Result instead of an error so that the full failure
// taxonomy (validation, dependency, internal, upstream-propagated) is
// explicit at the call site.
type Result struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success builds a 200 result carrying a payload.
func Success(message string, data interface{}) *Result {
	return &Result{Code: http.StatusOK, Message: message, Data: data}
}

// BadRequest builds a validation failure result.
func BadRequest(message string) *Result {
	return &Result{Code: http.StatusBadRequest, Message: message}
}

// DependencyError builds a failed-dependency result, used when the OTP
// store cannot be written or a stored record cannot be read back.
func DependencyError() *Result {
	return &Result{Code: http.StatusFailedDependency, Message: "A required dependency is unavailable"}
}

// InternalError builds the generic internal failure result. Unexpected
// faults are logged with context and collapsed to this; no detail of the
// underlying error reaches the caller.
func InternalError() *Result {
	return &Result{Code: http.StatusInternalServerError, Message: "An unexpected error occurred"}
}

// Upstream forwards an account-service status verbatim as the flow's own
// code and message.
func Upstream(code int, message string) *Result {
	return &Result{Code: code, Message: message}
}

// IsSuccess reports whether the result carries the success sentinel.
func (r *Result) IsSuccess() bool {
	return r.Code == http.StatusOK
}
