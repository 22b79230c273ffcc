package middleware

import (
	"time"

	"gestion-etudiants/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLog logs one line per request with method, path, status,
// duration, and client IP.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"remote_ip":   c.ClientIP(),
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("http request", fields)
		case c.Writer.Status() >= 400:
			logger.Warn("http request", fields)
		default:
			logger.Info("http request", fields)
		}
	}
}
