package server

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/park285/fakespotter-server-go/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 120 * time.Second
	// 응답 작성 여유 시간 (LLM 타임아웃 이후 에러 JSON 작성분)
	writeTimeoutSlack = 10 * time.Second
)

// NewHTTPServer 는 판별 API HTTP 서버를 생성한다.
// WriteTimeout 은 LLM 호출 타임아웃보다 길게 잡아 타임아웃 에러 응답이 잘리지 않게 한다.
func NewHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	var handler http.Handler = router
	if cfg.HTTP.HTTP2Enabled {
		handler = h2c.NewHandler(router, &http2.Server{IdleTimeout: idleTimeout})
	}

	return &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout(cfg.LLM.TimeoutSeconds),
		IdleTimeout:       idleTimeout,
	}
}

func writeTimeout(llmTimeoutSeconds int) time.Duration {
	if llmTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(llmTimeoutSeconds)*time.Second + writeTimeoutSlack
}
