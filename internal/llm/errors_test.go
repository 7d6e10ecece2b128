package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestProviderErrorUnwrap(t *testing.T) {
	err := NewProviderError("groq", "llama", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded to unwrap")
	}
	if !strings.HasPrefix(err.Error(), "groq: ") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestProviderErrorWithStatus(t *testing.T) {
	err := &ProviderError{Provider: "groq", StatusCode: 503, Err: errors.New("unavailable")}
	if err.Error() != "groq: status 503: unavailable" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNewProviderErrorKeepsExisting(t *testing.T) {
	inner := &ProviderError{Provider: "gemini", Err: ErrEmptyResponse}
	wrapped := NewProviderError("other", "", inner)
	if wrapped != inner {
		t.Fatalf("expected existing provider error to be reused")
	}
	if !errors.Is(wrapped, ErrEmptyResponse) {
		t.Fatalf("expected empty response sentinel")
	}
}
