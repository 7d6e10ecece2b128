package prompt

import (
	"fmt"
	"strings"
)

// FormatTemplate: {key} 자리표시자를 값으로 치환합니다. {{ 와 }} 는 중괄호 리터럴입니다.
// 치환된 값은 다시 해석하지 않으므로 사용자 입력에 중괄호가 있어도 안전합니다.
func FormatTemplate(template string, values map[string]string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(template))

	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				builder.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("invalid template: missing '}'")
			}
			key := template[i+1 : i+1+end]
			value, ok := values[key]
			if !ok {
				return "", fmt.Errorf("missing template value for %q", key)
			}
			builder.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				builder.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("invalid template: unexpected '}'")
		default:
			builder.WriteByte(template[i])
			i++
		}
	}

	return builder.String(), nil
}

// Placeholders: 템플릿에 등장하는 자리표시자 이름을 순서대로 반환합니다.
func Placeholders(template string) ([]string, error) {
	keys := make([]string, 0)
	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("invalid template: missing '}'")
			}
			keys = append(keys, template[i+1:i+1+end])
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i += 2
				continue
			}
			return nil, fmt.Errorf("invalid template: unexpected '}'")
		default:
			i++
		}
	}
	return keys, nil
}

// ValidateSystemStatic: 시스템 프롬프트의 템플릿 사용 여부를 검사합니다.
func ValidateSystemStatic(name string, system string) error {
	keys, err := Placeholders(system)
	if err != nil {
		return fmt.Errorf("%s: invalid system prompt template syntax", name)
	}
	if len(keys) > 0 {
		return fmt.Errorf("%s: system prompt must not contain template variables %q", name, keys[0])
	}
	return nil
}
