package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/metrics"
	"github.com/park285/fakespotter-server-go/internal/middleware"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	metricsStore *metrics.Store,
	detectionHandler *DetectionHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg.HTTP)),
	)
	if cfg.HTTP.GzipEnabled {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}

	RegisterHealthRoutes(router, cfg, metricsStore)
	detectionHandler.RegisterRoutes(router)

	return router
}

func corsConfig(httpCfg config.HTTPConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if httpCfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = httpCfg.CORSOrigins
	corsCfg.AllowCredentials = true
	return corsCfg
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
