package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	ReasonCode string `json:"reasonCode,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:      "Internal Server Error",
					Message:    "An unexpected error occurred. Please try again later.",
					ReasonCode: ReasonInternalError,
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, reasonCode, errMsg, message string) {
	Logger := GetLogger()
	Logger.Warn(errMsg,
		zap.Int("status", status),
		zap.String("reasonCode", reasonCode),
		zap.String("details", message),
		zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: errMsg, Message: message, ReasonCode: reasonCode})
}
