package shared

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/park285/fakespotter-server-go/internal/httperror"
	"github.com/park285/fakespotter-server-go/internal/middleware"
)

// WriteError 는 에러 응답을 작성한다.
func WriteError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err, middleware.GetRequestID(c))
	c.JSON(status, payload)
}

// WriteOperationError 는 서버 측 실패를 failureMessage 와 원인으로 응답한다.
// 검증 오류는 원래 메시지를 유지한다.
func WriteOperationError(c *gin.Context, err error, failureMessage string) {
	WriteError(c, httperror.FromOperation(err, failureMessage))
}

// BindJSON 는 요청 본문을 JSON으로 파싱한다. 빈 본문은 빈 요청으로 취급한다.
// 필드 검증 실패는 VALIDATION_ERROR, 형식 오류는 INVALID_INPUT 으로 응답한다.
func BindJSON(c *gin.Context, out any) bool {
	if c == nil {
		return false
	}
	if err := c.ShouldBindJSON(out); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			WriteError(c, httperror.NewValidationError(err))
			return false
		}
		WriteError(c, httperror.NewInvalidInput("Invalid request body", err))
		return false
	}
	return true
}
