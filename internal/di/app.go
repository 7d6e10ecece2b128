package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server    *http.Server
	Logger    *slog.Logger
	Config    *config.Config
	Telemetry *telemetry.Provider
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	telemetryProvider *telemetry.Provider,
) *App {
	return &App{
		Server:    server,
		Logger:    logger,
		Config:    cfg,
		Telemetry: telemetryProvider,
	}
}

// Run: HTTP 서버를 실행하고 ctx 가 취소되면 우아하게 종료합니다.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	a.Logger.Info(
		"http_server_start",
		"addr", a.Server.Addr,
		"http2", a.Config.HTTP.HTTP2Enabled,
		"provider", a.Config.LLM.Provider,
	)

	g.Go(func() error {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("http_server_shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			_ = a.Server.Close()
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("wait for server: %w", err)
	}
	return nil
}

// Close: 앱 리소스를 정리합니다.
func (a *App) Close() {
	if a.Telemetry == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Warn("telemetry_shutdown_failed", "err", err)
	}
}
