package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey 는 제공자 API 키가 없을 때 반환된다.
	ErrMissingAPIKey = errors.New("missing llm api key")
	// ErrEmptyResponse 는 제공자 응답에 텍스트가 없을 때 반환된다.
	ErrEmptyResponse = errors.New("empty completion response")
)

// ProviderError: 제공자 호출 실패(네트워크, 상태 코드, 응답 형식 오류)를 감쌉니다.
type ProviderError struct {
	Provider   string
	Model      string
	StatusCode int
	Err        error
}

// NewProviderError: 원인 에러를 ProviderError 로 감쌉니다. 이미 ProviderError 면 그대로 반환합니다.
func NewProviderError(provider string, model string, err error) *ProviderError {
	var existing *ProviderError
	if errors.As(err, &existing) {
		return existing
	}
	return &ProviderError{Provider: provider, Model: model, Err: err}
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
