package api

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// Context keys set by the middleware.
const (
	CtxRequestID = "request_id"
	CtxLogger    = "logger"
)

// RequestID reuses the caller's X-Request-ID or assigns a fresh UUID,
// stores it in the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx.Set(CtxRequestID, id)
		ctx.Header(HeaderRequestID, id)
		ctx.Next()
	}
}

// RequestLogger attaches a request-scoped logrus entry to the context and
// logs one line per completed request.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		entry := log.WithFields(logrus.Fields{
			"request_id": ctx.GetString(CtxRequestID),
			"method":     ctx.Request.Method,
			"path":       ctx.FullPath(),
		})
		ctx.Set(CtxLogger, entry)

		ctx.Next()

		entry = entry.WithFields(logrus.Fields{
			"status":  ctx.Writer.Status(),
			"latency": time.Since(began).String(),
		})
		switch status := ctx.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Logger returns the request-scoped entry set by RequestLogger, or a
// discard logger when the middleware is not installed.
func Logger(ctx *gin.Context) logrus.FieldLogger {
	if v, ok := ctx.Get(CtxLogger); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
