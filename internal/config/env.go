package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// lookupEnv: 공백만 있는 값은 미설정으로 봅니다.
func lookupEnv(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// parseEnv: 값이 없거나 파싱에 실패하면 def 를 반환합니다.
func parseEnv[T any](key string, def T, parse func(string) (T, error)) T {
	value, ok := lookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := parse(value)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvString(key string, def string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return def
}

func getEnvInt(key string, def int) int {
	return parseEnv(key, def, strconv.Atoi)
}

func getEnvNonNegativeInt(key string, def int) int {
	return max(0, getEnvInt(key, def))
}

func getEnvFloat(key string, def float64) float64 {
	return parseEnv(key, def, func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	})
}

func getEnvBool(key string, def bool) bool {
	return parseEnv(key, def, parseBool)
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "y", "on":
		return true, nil
	case "false", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool: %q", value)
	}
}

// readHTTPPort: HTTP_PORT 가 없으면 PORT(호스팅 플랫폼 관례)를 사용합니다.
func readHTTPPort(def int) int {
	if _, ok := lookupEnv("HTTP_PORT"); ok {
		return getEnvInt("HTTP_PORT", def)
	}
	return getEnvInt("PORT", def)
}

// splitList: 쉼표/공백 구분 목록을 나눕니다.
func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func maskSecret(value string) string {
	switch {
	case value == "":
		return "<missing>"
	case len(value) <= 4:
		return strings.Repeat("*", len(value))
	default:
		return value[:2] + "***" + value[len(value)-2:]
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readTelemetryConfig: OpenTelemetry 설정을 환경 변수에서 읽습니다.
func readTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:        getEnvBool("OTEL_ENABLED", false),
		ServiceName:    getEnvString("OTEL_SERVICE_NAME", "fakespotter-server"),
		ServiceVersion: getEnvString("OTEL_SERVICE_VERSION", "1.0.0"),
		Environment:    getEnvString("OTEL_ENVIRONMENT", "production"),
		OTLPEndpoint:   getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4317"),
		OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		SampleRate:     getEnvFloat("OTEL_SAMPLE_RATE", 1.0),
	}
}
