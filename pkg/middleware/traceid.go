package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wanderlog/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware reuses a caller-supplied trace id when it parses as a
// UUID and mints a new one otherwise.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Request = c.Request.WithContext(utils.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
