package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

// ProviderName 은 메트릭/로그에 쓰이는 제공자 이름이다.
const ProviderName = config.ProviderGemini

// Client 는 Gemini 호출을 담당한다.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ llm.Completer = (*Client)(nil)

// NewClient 는 Gemini 클라이언트를 생성한다.
// API 키가 없으면 genai 클라이언트 없이 생성되며, Complete 호출 시 ErrMissingAPIKey 를 반환한다.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	c := &Client{
		model:   cfg.LLM.Gemini.Model,
		timeout: timeout,
	}
	if strings.TrimSpace(cfg.LLM.Gemini.APIKey) == "" {
		return c, nil
	}

	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  cfg.LLM.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.client = client
	return c, nil
}

// Complete 는 단일 턴 텍스트 완성을 수행한다.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Result, error) {
	if c.client == nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrMissingAPIKey)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	response, err := c.client.Models.GenerateContent(ctx, c.model, contents, buildGenerateConfig(req))
	if err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("generate content: %w", err))
	}

	text := strings.Join(extractParts(response), "")
	if text == "" {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrEmptyResponse)
	}

	return llm.Result{
		Text:  text,
		Model: c.model,
		Usage: extractUsage(response),
	}, nil
}

func buildGenerateConfig(req llm.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Options.Temperature)),
	}
	if req.Options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.Options.MaxTokens)
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	return config
}

// extractParts 는 첫 후보의 답변 텍스트만 모은다. thought 파트는 제외한다.
func extractParts(response *genai.GenerateContentResponse) []string {
	if response == nil || len(response.Candidates) == 0 {
		return nil
	}
	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil
	}

	texts := make([]string, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part == nil || part.Text == "" || part.Thought {
			continue
		}
		texts = append(texts, part.Text)
	}
	return texts
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	usage := response.UsageMetadata
	return llm.Usage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount) + int(usage.ThoughtsTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}
