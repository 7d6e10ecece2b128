package server

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/park285/fakespotter-server-go/internal/config"
)

func TestNewHTTPServer(t *testing.T) {
	router := gin.New()
	cfg := &config.Config{
		LLM:  config.LLMConfig{TimeoutSeconds: 60},
		HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 5000, HTTP2Enabled: false},
	}

	server := NewHTTPServer(cfg, router)
	if server.Addr != "127.0.0.1:5000" {
		t.Fatalf("unexpected addr: %s", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected plain router handler")
	}
	if server.WriteTimeout != 70*time.Second {
		t.Fatalf("unexpected write timeout: %s", server.WriteTimeout)
	}

	cfg.HTTP.HTTP2Enabled = true
	server = NewHTTPServer(cfg, router)
	if server.Handler == router {
		t.Fatalf("expected wrapped handler")
	}
}

func TestNewHTTPServerIPv6Host(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "::1", Port: 5000}}
	server := NewHTTPServer(cfg, gin.New())
	if server.Addr != "[::1]:5000" {
		t.Fatalf("unexpected addr: %s", server.Addr)
	}
	if server.WriteTimeout != 0 {
		t.Fatalf("expected no write timeout without llm timeout, got %s", server.WriteTimeout)
	}
}
