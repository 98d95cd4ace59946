package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/lumen/internal/shared/id"
)

// RequestIDKey is the gin context key carrying the request ID.
const RequestIDKey = "request_id"

// RequestID tags every request with a req_* ULID so adapter logs and
// frontend traces line up. A caller-supplied X-Request-ID is honored;
// either way the ID is echoed in the response header and stored on
// the context for handlers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = id.NewRequestID().String()
		}
		c.Set(RequestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}
