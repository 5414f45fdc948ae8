// Package response contains the JSON payload helpers shared by the
// handlers and the error middleware.
package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the `{"message": ...}` payload used by every error
// response and by simple confirmations.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes any payload with the given status code.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Message writes a `{"message": ...}` payload with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
