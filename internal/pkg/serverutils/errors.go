package serverutils

import "github.com/gofiber/fiber/v2"

// AppError carries an HTTP status alongside a human-readable message.
// Ownership mismatches are reported as not-found, never forbidden, so a
// caller cannot probe for the existence of other users' records.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}
