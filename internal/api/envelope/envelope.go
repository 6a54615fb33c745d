// Package envelope defines the uniform response shape returned by every
// endpoint, success and failure alike: {code, message?, data?}.
package envelope

// Code is the application-level result code carried in every response body,
// independent of the HTTP status.
type Code int

const (
	CodeSuccess         Code = 2000
	CodeAuthError       Code = 2001
	CodeDBError         Code = 2002
	CodeValidationError Code = 2003
	CodeInvalidArgs     Code = 2004
	CodeUnknownError    Code = 3000
)

// Response is the canonical body. Data, when present, is always an array of
// entities, even for single-entity results.
type Response struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success response.
func OK(message string, data any) Response {
	return Response{Code: CodeSuccess, Message: message, Data: data}
}

// Error builds a failure response. Failures never carry data.
func Error(code Code, message string) Response {
	return Response{Code: code, Message: message}
}
