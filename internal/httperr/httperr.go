package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Taxonomía de errores expuesta al cliente.
const (
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternal        = "INTERNAL"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Validation(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, CodeValidation, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, CodeNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, CodeConflict, message)
}

func Unauthenticated(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, CodeUnauthenticated, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, CodeForbidden, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, CodeInternal, message)
}
