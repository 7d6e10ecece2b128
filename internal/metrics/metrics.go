package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/park285/fakespotter-server-go/internal/llm"
)

var (
	completionCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakespotter",
		Name:      "llm_completions_total",
		Help:      "LLM completion calls by provider, task and outcome.",
	}, []string{"provider", "task", "outcome"})

	completionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fakespotter",
		Name:      "llm_completion_duration_seconds",
		Help:      "LLM completion latency.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	}, []string{"provider", "task"})

	completionTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakespotter",
		Name:      "llm_tokens_total",
		Help:      "Tokens consumed by direction.",
	}, []string{"provider", "direction"})

	verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fakespotter",
		Name:      "detect_verdicts_total",
		Help:      "Parsed detection verdicts.",
	}, []string{"verdict", "multishot"})
)

// Store 는 LLM 호출 통계를 저장한다.
type Store struct {
	totalCalls        int64
	totalErrors       int64
	totalInputTokens  int64
	totalOutputTokens int64
	totalDurationMs   int64
}

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess 는 성공 호출 통계를 기록한다.
func (s *Store) RecordSuccess(provider string, task string, duration time.Duration, usage llm.Usage) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalInputTokens, int64(usage.InputTokens))
	atomic.AddInt64(&s.totalOutputTokens, int64(usage.OutputTokens))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())

	completionCalls.WithLabelValues(provider, task, "success").Inc()
	completionLatency.WithLabelValues(provider, task).Observe(duration.Seconds())
	completionTokens.WithLabelValues(provider, "input").Add(float64(usage.InputTokens))
	completionTokens.WithLabelValues(provider, "output").Add(float64(usage.OutputTokens))
}

// RecordError 는 실패 호출 통계를 기록한다.
func (s *Store) RecordError(provider string, task string, duration time.Duration) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())

	completionCalls.WithLabelValues(provider, task, "error").Inc()
	completionLatency.WithLabelValues(provider, task).Observe(duration.Seconds())
}

// RecordVerdict 는 파싱된 판정 결과를 집계한다.
func (s *Store) RecordVerdict(verdict string, multishot bool) {
	label := "false"
	if multishot {
		label = "true"
	}
	verdicts.WithLabelValues(verdict, label).Inc()
}

// UsageTotals 는 누적 사용량을 반환한다.
func (s *Store) UsageTotals() llm.Usage {
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	return llm.Usage{
		InputTokens:  int(input),
		OutputTokens: int(output),
		TotalTokens:  int(input + output),
	}
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]float64 {
	totalCalls := atomic.LoadInt64(&s.totalCalls)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalCalls > 0 {
		avgDuration = float64(durationMs) / float64(totalCalls)
	}

	return map[string]float64{
		"total_calls":         float64(totalCalls),
		"total_errors":        float64(totalErrors),
		"total_input_tokens":  float64(input),
		"total_output_tokens": float64(output),
		"total_tokens":        float64(input + output),
		"total_duration_ms":   float64(durationMs),
		"avg_duration_ms":     avgDuration,
	}
}
