package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger 는 HTTP 요청 로그 미들웨어다.
// 요청 컨텍스트로 기록하므로 OTel 이 켜져 있으면 trace_id 가 함께 남는다.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(c *gin.Context) {
		startedAt := time.Now()
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusBadRequest && len(c.Errors) == 0 && isQuietRequest(c) {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", route,
			"status", status,
			"latency", time.Since(startedAt),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		logger.Log(c.Request.Context(), levelForStatus(status), "http_request", fields...)
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// isQuietRequest: 상태 확인/메트릭 폴링과 CORS preflight 는 성공 시 기록하지 않는다.
func isQuietRequest(c *gin.Context) bool {
	if c.Request.Method == http.MethodOptions {
		return true
	}
	switch c.Request.URL.Path {
	case "/api/health", "/api/metrics", "/metrics":
		return true
	default:
		return false
	}
}
