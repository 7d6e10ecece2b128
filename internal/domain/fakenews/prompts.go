package fakenews

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/park285/fakespotter-server-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

const (
	canonicalLabel = "Example"
	callerLabel    = "User Example"
)

// Prompts 는 가짜 뉴스 판별/대화 프롬프트 모음이다.
type Prompts struct {
	bundle *prompt.Bundle
}

// NewPrompts: 내장 YAML 프롬프트를 로드하고 필수 필드와 고정 예시를 검사합니다.
func NewPrompts() (*Prompts, error) {
	bundle, err := prompt.LoadBundle(promptsFS, "prompts", "fakenews")
	if err != nil {
		return nil, err
	}
	if err := bundle.Require(map[string][]string{
		"detect": {"single", "multishot", "example", "user_examples"},
		"chat":   {"system"},
	}); err != nil {
		return nil, fmt.Errorf("fakenews prompts: %w", err)
	}
	if err := (DetectionRequest{Examples: canonicalExamples}).Validate(); err != nil {
		return nil, fmt.Errorf("canonical examples: %w", err)
	}
	return &Prompts{bundle: bundle}, nil
}

// SingleShot: 대상 텍스트와 출력 형식 지시만 담은 프롬프트를 반환합니다.
func (p *Prompts) SingleShot(text string) (string, error) {
	return p.bundle.Render("detect", "single", map[string]string{"text": text})
}

// Multishot: 고정 예시, 호출자 예시(입력 순서 그대로), 대상 텍스트 순으로 프롬프트를 구성합니다.
// 호출자 예시가 없으면 해당 섹션은 통째로 생략됩니다.
func (p *Prompts) Multishot(text string, examples []DetectionExample) (string, error) {
	canonical, err := p.renderExamples(canonicalLabel, canonicalExamples)
	if err != nil {
		return "", err
	}

	callerSection := ""
	if len(examples) > 0 {
		header, err := p.bundle.Text("detect", "user_examples")
		if err != nil {
			return "", err
		}
		blocks, err := p.renderExamples(callerLabel, examples)
		if err != nil {
			return "", err
		}
		callerSection = header + "\n\n" + blocks + "\n\n"
	}

	return p.bundle.Render("detect", "multishot", map[string]string{
		"examples":      canonical,
		"user_examples": callerSection,
		"text":          text,
	})
}

// Chat: 고정 페르소나 시스템 프롬프트와 사용자 메시지 원문을 반환합니다.
func (p *Prompts) Chat(message string) (system string, user string, err error) {
	system, err = p.bundle.Text("chat", "system")
	if err != nil {
		return "", "", err
	}
	return system, message, nil
}

func (p *Prompts) renderExamples(label string, examples []DetectionExample) (string, error) {
	blocks := make([]string, 0, len(examples))
	for i, example := range examples {
		block, err := p.bundle.Render("detect", "example", map[string]string{
			"label":      label + " " + strconv.Itoa(i+1),
			"text":       example.Text,
			"verdict":    string(example.Verdict),
			"confidence": strconv.Itoa(example.Confidence),
			"reasoning":  example.Reasoning,
		})
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}
