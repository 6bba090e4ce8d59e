package dto

// ErrorCode is the stable machine-readable code carried by failure envelopes.
type ErrorCode string

const (
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	CodeNotFound   ErrorCode = "NOT_FOUND"
	CodeConstraint ErrorCode = "CONSTRAINT_VIOLATION"
	CodeStorage    ErrorCode = "STORAGE_FAILURE"
)

// Response is the success envelope returned by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the failure envelope: a human-readable error plus a
// stable code the caller can branch on.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKWithMessage wraps data in a success envelope with a message.
func OKWithMessage(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Fail builds a failure envelope.
func Fail(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Code: code}
}
