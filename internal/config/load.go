package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load: 환경 변수 기반 설정을 로드합니다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig: 설정을 로드하고 검증합니다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate: 설정 유효성을 검사합니다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.LLM.Provider {
	case ProviderGroq, ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unsupported llm provider: %q", c.LLM.Provider)
	}

	switch c.Detection.Mode {
	case DetectModeAuto, DetectModeMultishot, DetectModeSingle:
	default:
		return fmt.Errorf("unsupported detect mode: %q", c.Detection.Mode)
	}

	if err := validateSampling("detect", c.Detection.Temperature, c.Detection.MaxTokens); err != nil {
		return err
	}
	if err := validateSampling("chat", c.Chat.Temperature, c.Chat.MaxTokens); err != nil {
		return err
	}

	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port: %d", c.HTTP.Port)
	}
	if !c.HTTP.AllowAllOrigins() {
		for _, origin := range c.HTTP.CORSOrigins {
			if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
				return fmt.Errorf("invalid cors origin: %q", origin)
			}
		}
	}
	return nil
}

func validateSampling(task string, temperature float64, maxTokens int) error {
	if temperature < 0 || temperature > 2 {
		return fmt.Errorf("%s temperature out of range: %v", task, temperature)
	}
	if maxTokens <= 0 {
		return fmt.Errorf("%s max tokens must be positive: %d", task, maxTokens)
	}
	return nil
}

// LogEnvStatus: 환경 설정 상태를 로그로 남깁니다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model(),
		"api_key", maskSecret(cfg.LLM.APIKey()),
		"timeout", cfg.LLM.TimeoutSeconds,
		"detect_mode", cfg.Detection.Mode,
		"detect_temperature", cfg.Detection.Temperature,
		"chat_temperature", cfg.Chat.Temperature,
	)

	if cfg.LLM.APIKey() == "" {
		logger.Error("env_missing_api_key", "provider", cfg.LLM.Provider)
	}
}

func buildConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:       strings.ToLower(getEnvString("LLM_PROVIDER", ProviderGroq)),
			TimeoutSeconds: max(1, getEnvInt("LLM_TIMEOUT", 60)),
			Groq: GroqConfig{
				APIKey:  getEnvString("GROQ_API_KEY", ""),
				Model:   getEnvString("GROQ_MODEL", "llama3-8b-8192"),
				BaseURL: getEnvString("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			},
			Gemini: GeminiConfig{
				APIKey: getEnvString("GOOGLE_API_KEY", ""),
				Model:  getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
			},
			Anthropic: AnthropicConfig{
				APIKey:     getEnvString("ANTHROPIC_API_KEY", ""),
				Model:      getEnvString("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
				MaxRetries: getEnvNonNegativeInt("ANTHROPIC_MAX_RETRIES", 0),
			},
		},
		Detection: DetectionConfig{
			Mode:        strings.ToLower(getEnvString("DETECT_MODE", DetectModeAuto)),
			Temperature: getEnvFloat("DETECT_TEMPERATURE", 0.3),
			MaxTokens:   getEnvInt("DETECT_MAX_TOKENS", 500),
		},
		Chat: ChatConfig{
			Temperature: getEnvFloat("CHAT_TEMPERATURE", 0.7),
			MaxTokens:   getEnvInt("CHAT_MAX_TOKENS", 1000),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         readHTTPPort(5000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", false),
			GzipEnabled:  getEnvBool("HTTP_GZIP_ENABLED", true),
			CORSOrigins:  splitList(getEnvString("CORS_ALLOW_ORIGINS", "*")),
		},
		Telemetry: readTelemetryConfig(),
	}
}
