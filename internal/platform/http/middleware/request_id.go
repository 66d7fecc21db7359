// Package middleware provides cross-cutting HTTP middleware.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a UUID to each request, echoes it in the response
// header, and logs one structured line per request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()

		slog.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}
