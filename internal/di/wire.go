//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"github.com/park285/fakespotter-server-go/internal/config"
	fakenewsdomain "github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/handler"
	"github.com/park285/fakespotter-server-go/internal/metrics"
	"github.com/park285/fakespotter-server-go/internal/server"
	fakenewsusecase "github.com/park285/fakespotter-server-go/internal/usecase/fakenews"
)

func InitializeApp(ctx context.Context) (*App, error) {
	wire.Build(
		config.ProvideConfig,
		ProvideLogger,
		ProvideTelemetry,
		metrics.NewStore,
		ProvideCompleter,
		fakenewsdomain.NewPrompts,
		fakenewsusecase.New,
		wire.Bind(new(handler.DetectionService), new(*fakenewsusecase.Service)),
		handler.NewDetectionHandler,
		handler.NewRouter,
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}
