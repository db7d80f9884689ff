package apperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error carrying an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports a missing entity with enough context to render a precise
// message (entity kind, lookup field, offending value).
func NotFound(resource, field string, value any) *Error {
	return New(http.StatusNotFound, fmt.Sprintf("%s not found with %s: %v", resource, field, value), nil)
}

// Validation reports structurally invalid input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// InvalidState reports a business-rule violation given current state
// (out of stock, quantity exceeds availability). Safe to retry after the
// caller adjusts its input.
func InvalidState(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Conflict reports a concurrent-modification or duplicate-resource
// condition. The whole operation is safe to retry from scratch.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

func is(err error, code int) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}

func IsNotFound(err error) bool   { return is(err, http.StatusNotFound) }
func IsValidation(err error) bool { return is(err, http.StatusBadRequest) }
func IsConflict(err error) bool   { return is(err, http.StatusConflict) }

// Common error types
var (
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// ErrorMiddleware renders errors attached to the gin context using the
// embedded status code.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *Error
			if e, ok := err.(*Error); ok {
				appErr = e
			} else {
				appErr = ErrInternalServer
			}

			c.JSON(appErr.Code, appErr)
			c.Abort()
		}
	}
}
