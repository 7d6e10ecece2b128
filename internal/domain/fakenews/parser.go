package fakenews

import (
	"regexp"
	"strconv"
	"strings"
)

// 라벨은 대소문자/공백/마크다운 강조(**, _)를 허용한다.
var (
	verdictPattern    = regexp.MustCompile(`(?i)\bverdict[*_]*\s*:[\s*_\[]*(real|fake)\b`)
	confidencePattern = regexp.MustCompile(`(?i)\bconfidence[*_]*\s*:[\s*_\[]*(\d+)\s*%`)
	reasoningPattern  = regexp.MustCompile(`(?is)\b(?:reasoning|explanation)[*_]*\s*:[*_]*(.*)`)
)

// ParseVerdict 는 모델 응답 원문에서 판정/신뢰도/근거를 추출한다.
// 실패하지 않으며 찾지 못한 필드는 UNKNOWN, 0, 원문으로 채운다.
func ParseVerdict(raw string) DetectionResult {
	verdict, ok := matchVerdict(raw)
	if !ok {
		verdict = VerdictUnknown
	}
	confidence, ok := matchConfidence(raw)
	if !ok {
		confidence = 0
	}
	reasoning, ok := matchReasoning(raw)
	if !ok {
		reasoning = raw
	}

	return DetectionResult{
		Verdict:     verdict,
		Confidence:  confidence,
		Reasoning:   reasoning,
		Explanation: reasoning,
		RawResponse: raw,
	}
}

func matchVerdict(raw string) (Verdict, bool) {
	match := verdictPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return Verdict(strings.ToUpper(match[1])), true
}

// matchConfidence 는 0..100 범위를 벗어나거나 정수로 변환되지 않으면 실패로 본다.
func matchConfidence(raw string) (int, bool) {
	match := confidencePattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, false
	}
	value, err := strconv.Atoi(match[1])
	if err != nil || value < 0 || value > 100 {
		return 0, false
	}
	return value, true
}

func matchReasoning(raw string) (string, bool) {
	match := reasoningPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}
