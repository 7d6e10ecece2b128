// Package claude 는 Anthropic Messages API 를 llm.Completer 로 노출한다.
package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

// ProviderName 은 메트릭/로그에 쓰이는 제공자 이름이다.
const ProviderName = config.ProviderAnthropic

// defaultMaxTokens 는 요청에 MaxTokens 가 없을 때 사용한다. Messages API 는 max_tokens 가 필수다.
const defaultMaxTokens = 1024

// Client 는 Anthropic 호출을 담당한다.
type Client struct {
	client  anthropic.Client
	apiKey  string
	model   string
	timeout time.Duration
}

var _ llm.Completer = (*Client)(nil)

// NewClient 는 Anthropic 클라이언트를 생성한다. extra 옵션은 기본 옵션 뒤에 적용된다.
func NewClient(cfg *config.Config, extra ...option.RequestOption) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.Anthropic.APIKey),
		option.WithMaxRetries(cfg.LLM.Anthropic.MaxRetries),
	}
	opts = append(opts, extra...)

	return &Client{
		client:  anthropic.NewClient(opts...),
		apiKey:  cfg.LLM.Anthropic.APIKey,
		model:   cfg.LLM.Anthropic.Model,
		timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	}, nil
}

// Complete 는 Messages API 로 단일 완성을 요청한다.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Result, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrMissingAPIKey)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(ctx, buildParams(c.model, req))
	if err != nil {
		providerErr := llm.NewProviderError(ProviderName, c.model, fmt.Errorf("create message: %w", err))
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			providerErr.StatusCode = apiErr.StatusCode
		}
		return llm.Result{Model: c.model}, providerErr
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}
	if text.Len() == 0 {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrEmptyResponse)
	}

	input := int(msg.Usage.InputTokens)
	output := int(msg.Usage.OutputTokens)
	return llm.Result{
		Text:  text.String(),
		Model: string(msg.Model),
		Usage: llm.Usage{
			InputTokens:  input,
			OutputTokens: output,
			TotalTokens:  input + output,
		},
	}, nil
}

func buildParams(model string, req llm.Request) anthropic.MessageNewParams {
	maxTokens := int64(defaultMaxTokens)
	if req.Options.MaxTokens > 0 {
		maxTokens = int64(req.Options.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(req.Options.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	return params
}
