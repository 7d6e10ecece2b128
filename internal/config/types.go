package config

import "strings"

// 지원하는 LLM 제공자 이름입니다.
const (
	ProviderGroq      = "groq"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// 탐지 프롬프트 모드입니다.
const (
	DetectModeAuto      = "auto"
	DetectModeMultishot = "multishot"
	DetectModeSingle    = "single"
)

// GroqConfig: Groq(OpenAI 호환) 설정입니다.
type GroqConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GeminiConfig: Gemini 모델 설정입니다.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AnthropicConfig: Anthropic 모델 설정입니다.
type AnthropicConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
}

// LLMConfig: 완성(completion) 제공자 선택 및 공통 설정입니다.
type LLMConfig struct {
	Provider       string
	TimeoutSeconds int
	Groq           GroqConfig
	Gemini         GeminiConfig
	Anthropic      AnthropicConfig
}

// APIKey: 선택된 제공자의 API 키를 반환합니다.
func (l LLMConfig) APIKey() string {
	switch l.Provider {
	case ProviderGemini:
		return l.Gemini.APIKey
	case ProviderAnthropic:
		return l.Anthropic.APIKey
	default:
		return l.Groq.APIKey
	}
}

// Model: 선택된 제공자의 모델 이름을 반환합니다.
func (l LLMConfig) Model() string {
	switch l.Provider {
	case ProviderGemini:
		return l.Gemini.Model
	case ProviderAnthropic:
		return l.Anthropic.Model
	default:
		return l.Groq.Model
	}
}

// DetectionConfig: 가짜 뉴스 판별 호출 설정입니다.
type DetectionConfig struct {
	Mode        string
	Temperature float64
	MaxTokens   int
}

// UseMultishot: 요청 예시 개수에 따라 multishot 프롬프트 사용 여부를 결정합니다.
func (d DetectionConfig) UseMultishot(exampleCount int) bool {
	switch d.Mode {
	case DetectModeMultishot:
		return true
	case DetectModeSingle:
		return false
	default:
		return exampleCount > 0
	}
}

// ChatConfig: 자유 대화 호출 설정입니다.
type ChatConfig struct {
	Temperature float64
	MaxTokens   int
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
	GzipEnabled  bool
	CORSOrigins  []string
}

// AllowAllOrigins: CORS 허용 목록이 와일드카드인지 확인합니다.
func (h HTTPConfig) AllowAllOrigins() bool {
	if len(h.CORSOrigins) == 0 {
		return true
	}
	for _, origin := range h.CORSOrigins {
		if strings.TrimSpace(origin) == "*" {
			return true
		}
	}
	return false
}

// TelemetryConfig: OpenTelemetry 설정입니다.
type TelemetryConfig struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPInsecure   bool
	SampleRate     float64
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	LLM       LLMConfig
	Detection DetectionConfig
	Chat      ChatConfig
	Logging   LoggingConfig
	HTTP      HTTPConfig
	Telemetry TelemetryConfig
}
