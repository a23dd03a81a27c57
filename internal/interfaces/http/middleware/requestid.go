package middleware

import (
	"github.com/gin-gonic/gin"

	"lineup/internal/shared/constants"
	"lineup/internal/shared/id"
)

// RequestID tags every request with an identifier for log correlation.
// An incoming X-Request-ID from the gateway is kept as is.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = id.MustGenerate(id.DefaultLength)
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
