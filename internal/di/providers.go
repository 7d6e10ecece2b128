package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/park285/fakespotter-server-go/internal/claude"
	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/gemini"
	"github.com/park285/fakespotter-server-go/internal/groq"
	"github.com/park285/fakespotter-server-go/internal/llm"
	"github.com/park285/fakespotter-server-go/internal/logging"
	"github.com/park285/fakespotter-server-go/internal/metrics"
	"github.com/park285/fakespotter-server-go/internal/telemetry"
)

// ProvideLogger: 로거를 구성해 반환합니다.
// OTel이 활성화된 경우 로그에 trace_id/span_id가 자동으로 추가됩니다.
func ProvideLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.NewLoggerWithOTel(cfg.Logging, cfg.Telemetry.Enabled)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// ProvideTelemetry: 트레이싱 provider 를 초기화합니다. 비활성화 시 no-op 입니다.
func ProvideTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	return provider, nil
}

// ProvideCompleter: LLM_PROVIDER 에 맞는 제공자 클라이언트를 만들고 메트릭 계측으로 감쌉니다.
func ProvideCompleter(ctx context.Context, cfg *config.Config, metricsStore *metrics.Store) (llm.Completer, error) {
	var (
		inner llm.Completer
		err   error
	)
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		inner, err = gemini.NewClient(ctx, cfg)
	case config.ProviderAnthropic:
		inner, err = claude.NewClient(cfg)
	case config.ProviderGroq:
		inner, err = groq.NewClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%s client: %w", cfg.LLM.Provider, err)
	}
	return metrics.Instrument(inner, cfg.LLM.Provider, metricsStore), nil
}
