package fakenews

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate 는 호출자 예시의 라벨/신뢰도 범위를 검사한다.
// 실패 시 validator.ValidationErrors 를 감싸서 반환한다.
func (r DetectionRequest) Validate() error {
	if len(r.Examples) == 0 {
		return nil
	}
	if err := requestValidator.Struct(r); err != nil {
		return fmt.Errorf("validate detection request: %w", err)
	}
	return nil
}
