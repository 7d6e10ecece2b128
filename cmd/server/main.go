package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.InitializeApp(ctx)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	config.LogEnvStatus(app.Config, app.Logger)

	runErr := app.Run(ctx)
	app.Close()
	if runErr != nil {
		app.Logger.Error("http_server_failed", "err", runErr)
		os.Exit(1)
	}
}
