// pkg/dashboard/middleware.go
package dashboard

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request id
const RequestIDKey = "X-Request-ID"

// Recovery turns a panic in a handler into a 500 response
func Recovery(logger *zap.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", string(c.Method())),
					zap.String("path", string(c.Path())),
					zap.String("panic", fmt.Sprintf("%v", err)),
					zap.String("stack", string(debug.Stack())))

				c.JSON(consts.StatusInternalServerError, utils.H{
					"code":    "INTERNAL_ERROR",
					"message": "Internal server error",
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}

// RequestLogger assigns a request id and logs every request except
// liveness probes
func RequestLogger(logger *zap.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())
		skipLogging := path == "/health/live"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		c.Next(ctx)

		if skipLogging {
			return
		}

		statusCode := c.Response.StatusCode()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", string(c.Method())),
			zap.String("path", path),
			zap.String("query", string(c.URI().QueryString())),
			zap.Int("status", statusCode),
			zap.Duration("latency", time.Since(start)),
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request completed with server error", fields...)
		case statusCode >= 400:
			logger.Warn("Request completed with client error", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}

// GetRequestID returns the id assigned by RequestLogger
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
