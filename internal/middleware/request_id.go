package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader 는 요청 ID 헤더 키다.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey       = "request_id"
	maxRequestIDLength = 128
)

type requestIDContextKey struct{}

// RequestID 는 요청 ID를 부여하는 미들웨어다.
// 헤더 값이 비었거나 형식이 맞지 않으면 새로 생성한다.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = generateRequestID()
		}
		c.Set(requestIDKey, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDContextKey{}, requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID: 컨텍스트의 요청 ID를 반환합니다.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	requestID, ok := value.(string)
	if !ok {
		return ""
	}
	return requestID
}

// RequestIDFromContext: 요청 context 에 저장된 요청 ID를 반환합니다. 핸들러 밖(usecase)에서 사용합니다.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}

func validRequestID(value string) bool {
	if value == "" || len(value) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch < 0x21 || ch > 0x7e {
			return false
		}
	}
	return true
}

func generateRequestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)
}
