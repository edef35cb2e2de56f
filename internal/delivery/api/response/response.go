// Package response writes the JSON bodies returned by the API.
package response

import (
	"net/http"

	deliverycontext "breachcheck/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message   string `json:"message"`              // Human-readable message
	Code      string `json:"code"`                 // Machine-readable error code, e.g. "INVALID_REQUEST"
	RequestID string `json:"request_id,omitempty"` // Request tracking ID
}

// Success writes data as the top-level JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
