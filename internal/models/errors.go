package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode classifies an AppError so the HTTP layer can map it to a
// status without inspecting messages.
type ErrorCode string

const (
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code,omitempty"`
	Details string    `json:"details,omitempty"`
}

// AppError carries a classification code alongside the message. The
// wrapped cause, if any, surfaces in the response details.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to the status the API responds with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes the standard error body for err. AppErrors
// keep their code and cause; anything else is passed through verbatim.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	response := ErrorResponse{Error: err.Error()}

	var appErr *AppError
	if errors.As(err, &appErr) {
		response.Error = appErr.Message
		response.Code = appErr.Code
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	}

	return c.Status(status).JSON(response)
}
