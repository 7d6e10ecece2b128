package httperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation 는 검증 오류 코드다.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeInvalidInput 는 요청 본문 형식 오류 코드다.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorCodeLLM 는 LLM 오류 코드다.
	ErrorCodeLLM ErrorCode = "LLM_ERROR"
	// ErrorCodeLLMTimeout 는 LLM 타임아웃 코드다.
	ErrorCodeLLMTimeout ErrorCode = "LLM_TIMEOUT"
)

// ErrorResponse 는 API 오류 응답 본문이다.
// error/details 는 기존 클라이언트가 읽는 필드이고 error_code/request_id 는 추가 정보다.
type ErrorResponse struct {
	Error     string  `json:"error"`
	Details   any     `json:"details,omitempty"`
	ErrorCode string  `json:"error_code"`
	RequestID *string `json:"request_id,omitempty"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Type    string
	Message string
	Details any
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		Error:     apiErr.Message,
		Details:   apiErr.Details,
		ErrorCode: string(apiErr.Code),
		RequestID: requestIDPtr,
	}
}

// FromError 는 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var domainErr *fakenews.ValidationError
	if errors.As(err, &domainErr) {
		return NewFieldRequired(domainErr.Field, domainErr.Message)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationError(err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewLLMTimeoutError("LLM request timed out", err)
	}

	var providerErr *llm.ProviderError
	if errors.As(err, &providerErr) {
		return NewLLMError(providerErr.Error(), err)
	}

	return NewInternalError(err.Error())
}

// FromOperation 은 작업 실패를 응답 오류로 변환한다.
// 클라이언트 오류(4xx)는 그대로 두고, 서버 오류는 failureMessage 와 원인(details)으로 바꾼다.
func FromOperation(err error, failureMessage string) *Error {
	apiErr := FromError(err)
	if apiErr == nil || apiErr.Status < http.StatusInternalServerError {
		return apiErr
	}
	return &Error{
		Code:    apiErr.Code,
		Status:  apiErr.Status,
		Type:    apiErr.Type,
		Message: failureMessage,
		Details: causeMessage(err),
	}
}

// NewInternalError 는 내부 오류를 생성한다.
func NewInternalError(message string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Type:    "InternalError",
		Message: message,
	}
}

// NewValidationError 는 바인딩 검증 오류를 생성한다.
func NewValidationError(err error) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusBadRequest,
		Type:    "ValidationError",
		Message: "Input validation failed",
		Details: validationDetails(err),
	}
}

// NewFieldRequired 는 필수 필드 누락 오류를 생성한다.
func NewFieldRequired(field string, message string) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusBadRequest,
		Type:    "ValidationError",
		Message: message,
		Details: map[string]any{"field": field},
	}
}

// NewInvalidInput 는 요청 본문 형식 오류를 생성한다.
func NewInvalidInput(message string, err error) *Error {
	var details any
	if err != nil {
		details = err.Error()
	}
	return &Error{
		Code:    ErrorCodeInvalidInput,
		Status:  http.StatusBadRequest,
		Type:    "InvalidInputError",
		Message: message,
		Details: details,
	}
}

// NewLLMTimeoutError 는 LLM 타임아웃 오류를 생성한다.
func NewLLMTimeoutError(message string, cause error) *Error {
	return &Error{
		Code:    ErrorCodeLLMTimeout,
		Status:  http.StatusInternalServerError,
		Type:    "LLMTimeoutError",
		Message: message,
		Details: causeMessage(cause),
	}
}

// NewLLMError 는 LLM 오류를 생성한다.
func NewLLMError(message string, cause error) *Error {
	return &Error{
		Code:    ErrorCodeLLM,
		Status:  http.StatusInternalServerError,
		Type:    "LLMError",
		Message: message,
		Details: causeMessage(cause),
	}
}

// FieldError 는 필드 오류 상세 정보다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func causeMessage(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}

func validationDetails(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Namespace(),
				Message: validationErr.Error(),
				Value:   validationErr.Value(),
			})
		}
		return fields
	}

	return []FieldError{
		{
			Field:   "body",
			Message: err.Error(),
			Value:   nil,
		},
	}
}
