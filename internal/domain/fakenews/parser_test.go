package fakenews

import "testing"

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		verdict    Verdict
		confidence int
		reasoning  string
	}{
		{
			name:       "multishot layout",
			raw:        "Verdict: FAKE\nConfidence: 95%\nReasoning: No peer review.",
			verdict:    VerdictFake,
			confidence: 95,
			reasoning:  "No peer review.",
		},
		{
			name:       "single-shot layout",
			raw:        "Verdict: REAL\nConfidence: 88%\nExplanation: Official source.\nSecond line.",
			verdict:    VerdictReal,
			confidence: 88,
			reasoning:  "Official source.\nSecond line.",
		},
		{
			name:       "label case and spacing",
			raw:        "VERDICT :  real\nconfidence:70 %\nreasoning :   spaced out  ",
			verdict:    VerdictReal,
			confidence: 70,
			reasoning:  "spaced out",
		},
		{
			name:       "markdown emphasis",
			raw:        "**Verdict:** FAKE\n**Confidence:** 91%\n**Reasoning:** Sensational tone.",
			verdict:    VerdictFake,
			confidence: 91,
			reasoning:  "Sensational tone.",
		},
		{
			name:       "no labels",
			raw:        "I cannot determine this.",
			verdict:    VerdictUnknown,
			confidence: 0,
			reasoning:  "I cannot determine this.",
		},
		{
			name:       "verdict value is not a word match",
			raw:        "Verdict: REALLY unclear\nConfidence: 40%",
			verdict:    VerdictUnknown,
			confidence: 40,
			reasoning:  "Verdict: REALLY unclear\nConfidence: 40%",
		},
		{
			name:       "first verdict wins",
			raw:        "Verdict: FAKE\nVerdict: REAL",
			verdict:    VerdictFake,
			confidence: 0,
			reasoning:  "Verdict: FAKE\nVerdict: REAL",
		},
		{
			name:       "confidence above range",
			raw:        "Verdict: FAKE\nConfidence: 150%",
			verdict:    VerdictFake,
			confidence: 0,
			reasoning:  "Verdict: FAKE\nConfidence: 150%",
		},
		{
			name:       "confidence overflow",
			raw:        "Confidence: 99999999999999999999999%",
			verdict:    VerdictUnknown,
			confidence: 0,
			reasoning:  "Confidence: 99999999999999999999999%",
		},
		{
			name:       "confidence without percent",
			raw:        "Verdict: REAL\nConfidence: high",
			verdict:    VerdictReal,
			confidence: 0,
			reasoning:  "Verdict: REAL\nConfidence: high",
		},
		{
			name:       "earliest reasoning label",
			raw:        "Explanation: first\nReasoning: second",
			verdict:    VerdictUnknown,
			confidence: 0,
			reasoning:  "first\nReasoning: second",
		},
		{
			name:       "empty reply",
			raw:        "",
			verdict:    VerdictUnknown,
			confidence: 0,
			reasoning:  "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseVerdict(tc.raw)
			if result.Verdict != tc.verdict {
				t.Errorf("verdict = %q, want %q", result.Verdict, tc.verdict)
			}
			if result.Confidence != tc.confidence {
				t.Errorf("confidence = %d, want %d", result.Confidence, tc.confidence)
			}
			if result.Reasoning != tc.reasoning {
				t.Errorf("reasoning = %q, want %q", result.Reasoning, tc.reasoning)
			}
			if result.Explanation != result.Reasoning {
				t.Errorf("explanation should mirror reasoning")
			}
			if result.RawResponse != tc.raw {
				t.Errorf("raw response not preserved")
			}
		})
	}
}

func TestParseVerdictIdempotent(t *testing.T) {
	raw := "Verdict: fake\nConfidence: 12%\nReasoning: Unverified claims."
	first := ParseVerdict(raw)
	second := ParseVerdict(raw)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
	if first.Verdict != VerdictFake {
		t.Fatalf("expected upper-case verdict, got %q", first.Verdict)
	}
}
