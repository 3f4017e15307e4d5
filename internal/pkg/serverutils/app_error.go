package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a failure the client is allowed to see.
type AppError struct {
	Code    int
	Message string
	Errors  []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return NewAppError(fiber.StatusConflict, message)
}

func Unauthorized(message string) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message)
}

func ValidationFailed(errs []FieldError) *AppError {
	return &AppError{
		Code:    fiber.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	}
}
