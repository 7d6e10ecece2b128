package shared

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/park285/fakespotter-server-go/internal/httperror"
)

// LogError: 요청 실패를 기록합니다. 입력 거부(4xx)는 Info, 서버 측 실패는 Warn 입니다.
func LogError(ctx context.Context, logger *slog.Logger, operation string, requestID string, err error) {
	if logger == nil || err == nil {
		return
	}
	apiErr := httperror.FromError(err)

	level, event := slog.LevelWarn, operation+"_failed"
	if apiErr.Status < http.StatusInternalServerError {
		level, event = slog.LevelInfo, operation+"_rejected"
	}
	logger.Log(ctx, level, event,
		"request_id", requestID,
		"error_code", apiErr.Code,
		"err", err,
	)
}
