package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"leadform/internal/util"
	"leadform/pkg/metrics"
	"leadform/pkg/trace"
)

// AuthMiddleware guards admin routes. Every failure mode (missing header,
// malformed token, bad signature, expired) maps to the same 401 body.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed!"})
			c.Abort()
			return
		}

		username, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed!"})
			c.Abort()
			return
		}

		// store username in context so handlers can use it
		c.Set("username", username)

		c.Next()
	}
}

// TraceMiddleware attaches a trace id to the request context, honoring an
// incoming X-Trace-ID header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(trace.HeaderName)
		if traceID == "" {
			traceID = trace.NewTraceID()
		}

		ctx := trace.WithContext(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(trace.HeaderName, traceID)

		c.Next()
	}
}

// MetricsMiddleware records request duration per method/path/status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
