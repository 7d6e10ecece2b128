package prompt

import (
	"fmt"
	"io/fs"
)

// Bundle: 특정 도메인의 프롬프트 모음과 에러 메시지 라벨을 함께 관리합니다.
type Bundle struct {
	label   string
	prompts promptSet
}

// LoadBundle: fs 내 dir 디렉터리의 YAML 프롬프트들을 로드하여 Bundle로 반환합니다.
func LoadBundle(fsys fs.FS, dir string, label string) (*Bundle, error) {
	loaded, err := loadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load %s prompts: %w", label, err)
	}
	return &Bundle{label: label, prompts: loaded}, nil
}

// Text: name.key 필드를 치환 없이 반환합니다.
func (b *Bundle) Text(name string, key string) (string, error) {
	if b == nil || b.prompts == nil {
		return "", fmt.Errorf("prompts not initialized")
	}
	value, err := b.prompts.field(name, key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.label, err)
	}
	return value, nil
}

// Render: name.key 템플릿을 values 로 치환합니다.
func (b *Bundle) Render(name string, key string, values map[string]string) (string, error) {
	template, err := b.Text(name, key)
	if err != nil {
		return "", err
	}
	rendered, err := FormatTemplate(template, values)
	if err != nil {
		return "", fmt.Errorf("format %s.%s: %w", name, key, err)
	}
	return rendered, nil
}

// Require: 각 프롬프트에 필요한 필드가 모두 있는지 검사합니다. 로드 직후 호출합니다.
func (b *Bundle) Require(fields map[string][]string) error {
	for name, keys := range fields {
		for _, key := range keys {
			if _, err := b.Text(name, key); err != nil {
				return err
			}
		}
	}
	return nil
}
