package health

import (
	"time"

	"github.com/park285/fakespotter-server-go/internal/config"
)

// StatusRunning 는 상태 확인 응답의 고정 문구다.
const StatusRunning = "Backend is running!"

var startTime = time.Now()

// Response 는 상태 응답 본문이다.
// 제공자 호출 없이 설정만 보고하며 항상 200 으로 응답한다.
type Response struct {
	Status        string `json:"status"`
	UptimeSeconds int    `json:"uptime_seconds"`
	Provider      string `json:"provider,omitempty"`
	Model         string `json:"model,omitempty"`
	APIKeyPresent bool   `json:"api_key_present"`
}

// Collect 는 헬스 상태를 수집한다.
func Collect(cfg *config.Config) Response {
	resp := Response{
		Status:        StatusRunning,
		UptimeSeconds: int(Uptime().Seconds()),
	}
	if cfg != nil {
		resp.Provider = cfg.LLM.Provider
		resp.Model = cfg.LLM.Model()
		resp.APIKeyPresent = cfg.LLM.APIKey() != ""
	}
	return resp
}

// Uptime 은 프로세스 시작 이후 경과 시간이다.
func Uptime() time.Duration {
	return time.Since(startTime)
}
