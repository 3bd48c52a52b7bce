package apperror

import "fmt"

const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeBackendError   = "BACKEND_ERROR"
	CodeUnexpectedResp = "UNEXPECTED_RESPONSE"
	CodeInternalError  = "INTERNAL_ERROR"
)

// AppError is the error currency between services and handlers.
// HTTPStatus decides the response status, Code is the machine-readable
// discriminator the storefront keys its copy on.
type AppError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by code, so a WithMessage clone still compares equal to its
// sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// WithMessage copies the error with a different user-facing message, keeping
// status and code. The original value stays untouched so sentinel comparisons
// by code remain valid.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func New(status int, code, message string) *AppError {
	return &AppError{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}
