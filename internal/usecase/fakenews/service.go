package fakenews

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/park285/fakespotter-server-go/internal/config"
	fakenewsdomain "github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/llm"
	"github.com/park285/fakespotter-server-go/internal/metrics"
	"github.com/park285/fakespotter-server-go/internal/middleware"
)

// Service: 가짜 뉴스 판별/대화 비즈니스 로직 구현체입니다.
// 요청 간 상태를 갖지 않습니다.
type Service struct {
	cfg       *config.Config
	completer llm.Completer
	prompts   *fakenewsdomain.Prompts
	metrics   *metrics.Store
	logger    *slog.Logger
}

// New: Service 인스턴스를 생성합니다.
func New(
	cfg *config.Config,
	completer llm.Completer,
	prompts *fakenewsdomain.Prompts,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		completer: completer,
		prompts:   prompts,
		metrics:   metricsStore,
		logger:    logger,
	}
}

// Detect: 텍스트를 판별합니다. 빈 텍스트는 예시 검증보다 먼저 ErrTextRequired 로 거부합니다.
// 제공자 실패는 그대로 반환하고, 응답 파싱 실패는 UNKNOWN/0/원문 결과로 처리합니다.
func (s *Service) Detect(ctx context.Context, req fakenewsdomain.DetectionRequest) (fakenewsdomain.DetectionResult, error) {
	if req.Text == "" {
		return fakenewsdomain.DetectionResult{}, fakenewsdomain.ErrTextRequired
	}
	if err := req.Validate(); err != nil {
		return fakenewsdomain.DetectionResult{}, err
	}

	text := norm.NFC.String(req.Text)
	multishot := s.cfg.Detection.UseMultishot(len(req.Examples))

	var (
		promptText string
		err        error
	)
	if multishot {
		promptText, err = s.prompts.Multishot(text, req.Examples)
	} else {
		promptText, err = s.prompts.SingleShot(text)
	}
	if err != nil {
		return fakenewsdomain.DetectionResult{}, fmt.Errorf("build detect prompt: %w", err)
	}

	startedAt := time.Now()
	completion, err := s.completer.Complete(ctx, llm.Request{
		Prompt: promptText,
		Options: llm.Options{
			Temperature: s.cfg.Detection.Temperature,
			MaxTokens:   s.cfg.Detection.MaxTokens,
		},
		Task: llm.TaskDetect,
	})
	if err != nil {
		s.logFailure(ctx, llm.TaskDetect, err)
		return fakenewsdomain.DetectionResult{}, err
	}

	result := fakenewsdomain.ParseVerdict(completion.Text)
	result.MultishotUsed = multishot
	if s.metrics != nil {
		s.metrics.RecordVerdict(string(result.Verdict), multishot)
	}

	s.logger.Info("detect_completed",
		"request_id", middleware.RequestIDFromContext(ctx),
		"model", completion.Model,
		"verdict", result.Verdict,
		"confidence", result.Confidence,
		"multishot", multishot,
		"caller_examples", len(req.Examples),
		"latency", time.Since(startedAt),
	)
	return result, nil
}

// Chat: 페르소나 시스템 프롬프트와 함께 메시지를 전달하고 응답 원문을 반환합니다.
func (s *Service) Chat(ctx context.Context, req fakenewsdomain.ChatRequest) (fakenewsdomain.ChatResponse, error) {
	if req.Message == "" {
		return fakenewsdomain.ChatResponse{}, fakenewsdomain.ErrMessageRequired
	}

	system, user, err := s.prompts.Chat(req.Message)
	if err != nil {
		return fakenewsdomain.ChatResponse{}, fmt.Errorf("build chat prompt: %w", err)
	}

	startedAt := time.Now()
	completion, err := s.completer.Complete(ctx, llm.Request{
		Prompt:       user,
		SystemPrompt: system,
		Options: llm.Options{
			Temperature: s.cfg.Chat.Temperature,
			MaxTokens:   s.cfg.Chat.MaxTokens,
		},
		Task: llm.TaskChat,
	})
	if err != nil {
		s.logFailure(ctx, llm.TaskChat, err)
		return fakenewsdomain.ChatResponse{}, err
	}

	s.logger.Info("chat_completed",
		"request_id", middleware.RequestIDFromContext(ctx),
		"model", completion.Model,
		"response_chars", len(completion.Text),
		"latency", time.Since(startedAt),
	)
	return fakenewsdomain.ChatResponse{Response: completion.Text}, nil
}

func (s *Service) logFailure(ctx context.Context, task string, err error) {
	s.logger.Warn("llm_request_failed",
		"request_id", middleware.RequestIDFromContext(ctx),
		"task", task,
		"provider", s.cfg.LLM.Provider,
		"err", err,
	)
}
