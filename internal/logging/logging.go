package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/park285/fakespotter-server-go/internal/config"
)

// LogFileName 은 LOG_DIR 아래 생성되는 로그 파일 이름이다.
const LogFileName = "fakespotter.log"

// NewLogger: 로거를 생성합니다.
func NewLogger(cfg config.LoggingConfig) (*slog.Logger, error) {
	return NewLoggerWithOTel(cfg, false)
}

// NewLoggerWithOTel: 로거를 생성하고 기본 로거로 설정합니다.
// enableOTel 이 true 면 trace_id/span_id 를 로그에 덧붙입니다.
func NewLoggerWithOTel(cfg config.LoggingConfig, enableOTel bool) (*slog.Logger, error) {
	writer, filePath, err := openWriter(cfg)
	if err != nil {
		return nil, err
	}

	// 파일로도 쓰거나 터미널이 아니면 ANSI 색상을 끈다.
	noColor := filePath != "" || !isatty.IsTerminal(os.Stdout.Fd())
	var handler slog.Handler = tint.NewHandler(writer, &tint.Options{
		Level:      parseLevel(cfg.Level),
		TimeFormat: time.RFC3339,
		AddSource:  true,
		NoColor:    noColor,
	})
	if enableOTel {
		handler = NewOTelHandler(handler)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	if filePath != "" {
		logger.Info("file_logging_enabled", "path", filePath, "otel_correlation", enableOTel)
	}
	return logger, nil
}

// openWriter: LOG_DIR 이 있으면 stdout 과 회전 파일에 함께 쓴다.
func openWriter(cfg config.LoggingConfig) (io.Writer, string, error) {
	logDir := strings.TrimSpace(cfg.LogDir)
	if logDir == "" {
		return os.Stdout, "", nil
	}
	if cfg.MaxSizeMB <= 0 || cfg.MaxBackups <= 0 || cfg.MaxAgeDays <= 0 {
		return nil, "", fmt.Errorf(
			"invalid log rotation: size=%d backups=%d age_days=%d",
			cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays,
		)
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFileName),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	return io.MultiWriter(os.Stdout, file), file.Filename, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
