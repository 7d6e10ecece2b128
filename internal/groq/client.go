// Package groq 는 OpenAI 호환 chat/completions 엔드포인트(Groq)를 호출한다.
package groq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/park285/fakespotter-server-go/internal/config"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

// ProviderName 은 메트릭/로그에 쓰이는 제공자 이름이다.
const ProviderName = config.ProviderGroq

const (
	// maxErrorBody 는 에러 메시지에 포함할 응답 본문 최대 바이트 수다.
	maxErrorBody = 512
	// maxResponseBody 는 읽어 들일 응답 본문 상한이다.
	maxResponseBody = 4 << 20
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client 는 Groq chat/completions 호출을 담당한다.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	endpoint   string
}

var _ llm.Completer = (*Client)(nil)

// NewClient 는 Groq 클라이언트를 생성한다.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.LLM.Groq.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("groq base url is empty")
	}
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second},
		apiKey:     cfg.LLM.Groq.APIKey,
		model:      cfg.LLM.Groq.Model,
		endpoint:   baseURL + "/chat/completions",
	}, nil
}

// Complete 는 system/user 메시지로 단일 완성을 요청한다. 재시도하지 않는다.
func (c *Client) Complete(ctx context.Context, req llm.Request) (llm.Result, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrMissingAPIKey)
	}

	payload, err := json.Marshal(buildRequest(c.model, req))
	if err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("create request: %w", err))
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("send request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody+1))
	if err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("read response: %w", err))
	}
	if len(body) > maxResponseBody {
		return llm.Result{Model: c.model}, &llm.ProviderError{
			Provider:   ProviderName,
			Model:      c.model,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", maxResponseBody),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return llm.Result{Model: c.model}, &llm.ProviderError{
			Provider:   ProviderName,
			Model:      c.model,
			StatusCode: resp.StatusCode,
			Err:        errors.New(errorMessage(body)),
		}
	}

	var decoded completionResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, fmt.Errorf("decode response: %w", err))
	}
	// 공백뿐인 응답은 그대로 돌려주고 파서가 UNKNOWN 으로 처리한다.
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return llm.Result{Model: c.model}, llm.NewProviderError(ProviderName, c.model, llm.ErrEmptyResponse)
	}

	model := decoded.Model
	if model == "" {
		model = c.model
	}
	return llm.Result{
		Text:  decoded.Choices[0].Message.Content,
		Model: model,
		Usage: llm.Usage{
			InputTokens:  decoded.Usage.PromptTokens,
			OutputTokens: decoded.Usage.CompletionTokens,
			TotalTokens:  decoded.Usage.TotalTokens,
		},
	}, nil
}

func buildRequest(model string, req llm.Request) completionRequest {
	messages := make([]message, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, message{Role: "system", Content: req.SystemPrompt})
	}
	messages = append(messages, message{Role: "user", Content: req.Prompt})
	return completionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Options.Temperature,
		MaxTokens:   req.Options.MaxTokens,
	}
}

// errorMessage 는 제공자 에러 본문에서 사람이 읽을 메시지를 뽑는다.
func errorMessage(body []byte) string {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error.Message != "" {
		return decoded.Error.Message
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "empty error body"
	}
	if len(text) > maxErrorBody {
		// 잘린 멀티바이트 문자는 버린다.
		text = strings.ToValidUTF8(text[:maxErrorBody], "")
	}
	return text
}
