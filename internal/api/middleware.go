package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"
const requestIDContextKey = "request_id"

// getOrCreateRequestID returns the caller-supplied request ID, or mints a
// fresh one — the per-request correlation ID every handler's log lines
// carry, grounded on handlers_debug.go's getOrCreateRequestID usage.
func getOrCreateRequestID(c *gin.Context) string {
	if id, ok := c.Get(requestIDContextKey); ok {
		return id.(string)
	}
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDContextKey, id)
	return id
}

// RequestID is middleware that stamps every response with the request ID
// used for correlation, generating one if the caller didn't supply one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := getOrCreateRequestID(c)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
