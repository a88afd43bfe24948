package middleware

import (
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags each request with an id (caller-supplied or
// generated) and stores a request-scoped logger in the context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("requestID", requestID)
		c.Set("logger", utils.GetLogger().With(zap.String("requestId", requestID)))
		c.Next()
	}
}
