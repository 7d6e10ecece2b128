package fakenews

// ValidationError 는 요청 입력 검증 실패다. 제공자 호출 전에 반환된다.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// ErrTextRequired 는 판별 텍스트가 비었을 때 반환된다.
	ErrTextRequired = &ValidationError{Field: "text", Message: "Text is required"}
	// ErrMessageRequired 는 대화 메시지가 비었을 때 반환된다.
	ErrMessageRequired = &ValidationError{Field: "message", Message: "Message is required"}
)
