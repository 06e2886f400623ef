package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the generic error envelope: a status-appropriate code and
// a single human-readable message naming the offending field or resource.
type ErrorBody struct {
	Message string `json:"message"`
}

// FieldErrorBody is the envelope for field-level user validation and
// authentication failures.
type FieldErrorBody struct {
	Code     int    `json:"code"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// Success writes the document (or list) as the raw response body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the new document with a Location header pointing at it.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent ends a delete with 204 and an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest covers missing fields, malformed identifiers and
// unique-constraint violations.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// NotFound ends the request with 404 and an empty body.
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// UnprocessableEntity reports a user validation failure for one field.
func UnprocessableEntity(c *gin.Context, message, location string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, FieldErrorBody{
		Code:     http.StatusUnprocessableEntity,
		Reason:   "ValidationError",
		Message:  message,
		Location: location,
	})
}

// Unauthorized reports an authentication failure. The message must not
// disclose which credential factor was wrong.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, FieldErrorBody{
		Code:    http.StatusUnauthorized,
		Reason:  "AuthenticationError",
		Message: message,
	})
}

// InternalError hides the underlying failure behind a generic message;
// details are logged server-side only.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{Message: "Internal server error"})
}
