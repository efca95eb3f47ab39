package handler

import "github.com/labstack/echo/v4"

// Envelope is the uniform response wrapper for every API result, success or
// failure: {"statusCode": ..., "message": ..., "data": ...}.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{StatusCode: code, Message: message, Data: data})
}
