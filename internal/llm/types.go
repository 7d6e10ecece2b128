package llm

import "context"

// 호출 작업 유형입니다. 메트릭 라벨과 로그에 사용됩니다.
const (
	TaskDetect = "detect"
	TaskChat   = "chat"
)

// Completer: 텍스트 완성 제공자 인터페이스입니다.
// 구현체는 컨텍스트 취소와 데드라인을 존중해야 하며, 실패는 패닉 대신 에러로 반환합니다.
type Completer interface {
	Complete(ctx context.Context, req Request) (Result, error)
}

// Options: 샘플링 옵션입니다.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Request: 완성 요청입니다. SystemPrompt 가 비어 있으면 user 메시지만 전송합니다.
type Request struct {
	Prompt       string
	SystemPrompt string
	Options      Options
	Task         string
}

// Usage: 토큰 사용량 정보를 담습니다.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result: 제공자가 돌려준 원문 텍스트와 사용량입니다.
type Result struct {
	Text  string
	Model string
	Usage Usage
}
