package shared_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/park285/fakespotter-server-go/internal/domain/fakenews"
	"github.com/park285/fakespotter-server-go/internal/handler/shared"
	"github.com/park285/fakespotter-server-go/internal/httperror"
	"github.com/park285/fakespotter-server-go/internal/llm"
)

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/", reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperror.ErrorResponse {
	t.Helper()
	var payload httperror.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return payload
}

func TestBindJSONMalformed(t *testing.T) {
	c, w := newContext("{invalid")

	var req fakenews.DetectionRequest
	if shared.BindJSON(c, &req) {
		t.Fatalf("expected BindJSON to fail")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	payload := decodeError(t, w)
	if payload.ErrorCode != string(httperror.ErrorCodeInvalidInput) || payload.Details == nil {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

type taggedRequest struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"min=1"`
}

func TestBindJSONValidationFailure(t *testing.T) {
	c, w := newContext(`{"name":"","count":0}`)

	var req taggedRequest
	if shared.BindJSON(c, &req) {
		t.Fatalf("expected BindJSON to fail")
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if payload := decodeError(t, w); payload.ErrorCode != string(httperror.ErrorCodeValidation) {
		t.Fatalf("unexpected code: %s", payload.ErrorCode)
	}
}

func TestBindJSONLeavesExampleValidationToService(t *testing.T) {
	c, _ := newContext(`{"text":"","examples":[{"text":"e","verdict":"MAYBE","confidence":50}]}`)

	var req fakenews.DetectionRequest
	if !shared.BindJSON(c, &req) {
		t.Fatalf("expected detection request to bind without validation")
	}
	if len(req.Examples) != 1 || req.Examples[0].Verdict != "MAYBE" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestBindJSONEmptyBody(t *testing.T) {
	c, _ := newContext("")

	var req fakenews.DetectionRequest
	if !shared.BindJSON(c, &req) {
		t.Fatalf("expected empty body to be accepted")
	}
	if req.Text != "" {
		t.Fatalf("expected zero request")
	}
}

func TestWriteOperationError(t *testing.T) {
	c, w := newContext("")
	shared.WriteOperationError(c, llm.NewProviderError("groq", "m", errors.New("connection refused")), "Failed to process chat message")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	payload := decodeError(t, w)
	if payload.Error != "Failed to process chat message" {
		t.Fatalf("unexpected error: %s", payload.Error)
	}
	if details, ok := payload.Details.(string); !ok || details == "" {
		t.Fatalf("expected non-empty details, got %v", payload.Details)
	}
}

func TestLogErrorLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	shared.LogError(context.Background(), logger, "detect", "req-1", fakenews.ErrTextRequired)
	out := buf.String()
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "msg=detect_rejected") {
		t.Fatalf("expected info rejection, got %s", out)
	}

	buf.Reset()
	shared.LogError(context.Background(), logger, "chat", "req-2", llm.NewProviderError("groq", "m", errors.New("boom")))
	out = buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "msg=chat_failed") || !strings.Contains(out, "error_code=LLM_ERROR") {
		t.Fatalf("expected warn failure, got %s", out)
	}

	buf.Reset()
	shared.LogError(context.Background(), logger, "chat", "req-3", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nil error to be ignored")
	}
}
