package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return cfg
}

func TestOllamaClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		json.NewEncoder(w).Encode(ollamaResponse{Model: req.Model, Response: `{"ok":true}`})
	}))
	defer srv.Close()

	client := NewOllamaClient(enabledConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskStrategy, UserPrompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, resp.Text)
}

func TestOllamaClient_DisabledShortCircuits(t *testing.T) {
	cfg := DefaultConfig() // disabled
	client := NewOllamaClient(cfg, nil)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskStrategy})
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestOllamaClient_ServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOllamaClient(enabledConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskStrategy})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_ObserverSeesFailure(t *testing.T) {
	events := &captureObserver{}
	cfg := enabledConfig("http://127.0.0.1:1") // nothing listens here
	client := NewOllamaClient(cfg, events)

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskMasterPlan})

	require.Error(t, err)
	require.Len(t, events.calls, 1)
	assert.False(t, events.calls[0].Success)
	assert.Equal(t, TaskMasterPlan, events.calls[0].Task)
}

type captureObserver struct {
	calls []CallEvent
}

func (c *captureObserver) OnCallComplete(e CallEvent) { c.calls = append(c.calls, e) }

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DLULU_PLANNER_ENABLED", "true")
	t.Setenv("DLULU_PLANNER_ENDPOINT", "http://example.test:11434")
	t.Setenv("DLULU_PLANNER_MODEL", "qwen2.5")
	t.Setenv("DLULU_PLANNER_TIMEOUT_MS", "2500")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://example.test:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
}
