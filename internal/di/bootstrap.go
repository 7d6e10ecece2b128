//go:build !wireinject

package di

import (
	"context"
	"fmt"

	"github.com/park285/fakespotter-server-go/internal/config"
	fakenewsdomain "github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/handler"
	"github.com/park285/fakespotter-server-go/internal/metrics"
	"github.com/park285/fakespotter-server-go/internal/server"
	fakenewsusecase "github.com/park285/fakespotter-server-go/internal/usecase/fakenews"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	telemetryProvider, err := ProvideTelemetry(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	metricsStore := metrics.NewStore()

	completer, err := ProvideCompleter(ctx, cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("completer: %w", err)
	}

	prompts, err := fakenewsdomain.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("fakenews prompts: %w", err)
	}

	service := fakenewsusecase.New(cfg, completer, prompts, metricsStore, logger)
	detectionHandler := handler.NewDetectionHandler(service, logger)

	router := handler.NewRouter(cfg, logger, metricsStore, detectionHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, telemetryProvider), nil
}
