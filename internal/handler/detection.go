package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	fakenewsdomain "github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/handler/shared"
	"github.com/park285/fakespotter-server-go/internal/middleware"
)

const (
	detectFailureMessage = "Failed to analyze the news text"
	chatFailureMessage   = "Failed to process chat message"
)

// DetectionService 는 핸들러가 사용하는 판별/대화 기능이다.
type DetectionService interface {
	Detect(ctx context.Context, req fakenewsdomain.DetectionRequest) (fakenewsdomain.DetectionResult, error)
	Chat(ctx context.Context, req fakenewsdomain.ChatRequest) (fakenewsdomain.ChatResponse, error)
}

// DetectionHandler 는 가짜 뉴스 판별/대화 API 핸들러다.
type DetectionHandler struct {
	service DetectionService
	logger  *slog.Logger
}

// NewDetectionHandler 는 판별 핸들러를 생성한다.
func NewDetectionHandler(service DetectionService, logger *slog.Logger) *DetectionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectionHandler{service: service, logger: logger}
}

// RegisterRoutes 는 판별/대화 라우트를 등록한다.
func (h *DetectionHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/detect-fake-news", h.handleDetect)
	api.POST("/chat", h.handleChat)
}

func (h *DetectionHandler) handleDetect(c *gin.Context) {
	var req fakenewsdomain.DetectionRequest
	if !shared.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Detect(c.Request.Context(), req)
	if err != nil {
		shared.LogError(c.Request.Context(), h.logger, "detect", middleware.GetRequestID(c), err)
		shared.WriteOperationError(c, err, detectFailureMessage)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *DetectionHandler) handleChat(c *gin.Context) {
	var req fakenewsdomain.ChatRequest
	if !shared.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		shared.LogError(c.Request.Context(), h.logger, "chat", middleware.GetRequestID(c), err)
		shared.WriteOperationError(c, err, chatFailureMessage)
		return
	}
	c.JSON(http.StatusOK, resp)
}
