package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

func TestBuildGenerateConfig(t *testing.T) {
	cfg := buildGenerateConfig(llm.Request{
		SystemPrompt: "persona",
		Options:      llm.Options{Temperature: 0.7, MaxTokens: 1000},
	})
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.7) {
		t.Fatalf("unexpected temperature: %v", cfg.Temperature)
	}
	if cfg.MaxOutputTokens != 1000 {
		t.Fatalf("unexpected max tokens: %d", cfg.MaxOutputTokens)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "persona" {
		t.Fatalf("expected system instruction")
	}

	bare := buildGenerateConfig(llm.Request{Options: llm.Options{Temperature: 0.3}})
	if bare.SystemInstruction != nil {
		t.Fatalf("did not expect system instruction")
	}
	if bare.MaxOutputTokens != 0 {
		t.Fatalf("expected unset max tokens, got %d", bare.MaxOutputTokens)
	}
}

func TestExtractParts(t *testing.T) {
	if texts := extractParts(nil); texts != nil {
		t.Fatalf("expected nil parts for nil response")
	}

	response := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Verdict: FAKE\n"},
						{Text: "thought", Thought: true},
						{Text: ""},
						nil,
						{Text: "Confidence: 90%"},
					},
				},
			},
		},
	}
	texts := extractParts(response)
	if len(texts) != 2 || texts[0] != "Verdict: FAKE\n" || texts[1] != "Confidence: 90%" {
		t.Fatalf("unexpected texts: %v", texts)
	}
}

func TestExtractUsage(t *testing.T) {
	response := &genai.GenerateContentResponse{
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 20,
			ThoughtsTokenCount:   3,
			TotalTokenCount:      33,
		},
	}
	usage := extractUsage(response)
	if usage.InputTokens != 10 {
		t.Fatalf("unexpected input tokens: %d", usage.InputTokens)
	}
	if usage.OutputTokens != 23 {
		t.Fatalf("unexpected output tokens: %d", usage.OutputTokens)
	}
	if usage.TotalTokens != 33 {
		t.Fatalf("unexpected total tokens: %d", usage.TotalTokens)
	}
	if extractUsage(nil) != (llm.Usage{}) {
		t.Fatalf("expected zero usage for nil response")
	}
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{
		TimeoutSeconds: 5,
		Gemini:         config.GeminiConfig{Model: "gemini-2.5-flash"},
	}}
	client, err := NewClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = client.Complete(context.Background(), llm.Request{Prompt: "hi"})
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Fatalf("expected missing api key, got %v", err)
	}
	var providerErr *llm.ProviderError
	if !errors.As(err, &providerErr) || providerErr.Provider != ProviderName {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestNewClientNilConfig(t *testing.T) {
	if _, err := NewClient(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
