package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/health"
	"github.com/park285/fakespotter-server-go/internal/llm"
	"github.com/park285/fakespotter-server-go/internal/metrics"
)

// MetricsResponse: 호출 통계 응답입니다.
type MetricsResponse struct {
	Provider      string             `json:"provider"`
	Model         string             `json:"model"`
	TransportMode string             `json:"transport_mode"`
	Calls         map[string]float64 `json:"calls"`
	Tokens        llm.Usage          `json:"tokens"`
}

// RegisterHealthRoutes: 상태 확인/메트릭 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, metricsStore *metrics.Store) {
	// Liveness: 제공자 상태와 무관하게 항상 200 입니다.
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	// Prometheus 메트릭 (장기 히스토리 분석용)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/api/metrics", func(c *gin.Context) {
		transportMode := "h1"
		if cfg != nil && cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}

		response := MetricsResponse{
			TransportMode: transportMode,
			Calls:         map[string]float64{},
		}
		if cfg != nil {
			response.Provider = cfg.LLM.Provider
			response.Model = cfg.LLM.Model()
		}
		if metricsStore != nil {
			response.Calls = metricsStore.Snapshot()
			response.Tokens = metricsStore.UsageTotals()
		}
		c.JSON(http.StatusOK, response)
	})
}
