package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response standard API response envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// Meta list metadata
type Meta struct {
	Total int64 `json:"total"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success returns a success response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMeta returns a success response with list metadata
func SuccessWithMeta(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Created returns a 201 Created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse returns an error response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	info := &ErrorInfo{
		Code:    getErrorCode(status),
		Message: message,
	}
	if err != nil {
		info.Details = err.Error()
	}
	c.JSON(status, Response{
		Success: false,
		Error:   info,
	})
}

// FailFromError maps a sentinel business error to its HTTP response
func FailFromError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, message, err)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBirthdayNotFound):
		ErrorResponse(c, http.StatusNotFound, message, err)
	case errors.Is(err, ErrAIService):
		ErrorResponse(c, http.StatusBadGateway, message, err)
	default:
		ErrorResponse(c, http.StatusInternalServerError, message, err)
	}
}

// getErrorCode generates error code from HTTP status
func getErrorCode(status int) string {
	switch status {
	case 400:
		return "BAD_REQUEST"
	case 404:
		return "NOT_FOUND"
	case 409:
		return "CONFLICT"
	case 429:
		return "TOO_MANY_REQUESTS"
	case 500:
		return "INTERNAL_SERVER_ERROR"
	case 502:
		return "BAD_GATEWAY"
	default:
		return "ERROR"
	}
}
