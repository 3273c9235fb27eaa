package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogbot/internal/config"
	"catalogbot/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLLMClient(t *testing.T, handler http.HandlerFunc) *LLMClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.LLMConfig{
		APIKey:    "test-key",
		APIBase:   server.URL,
		ChatModel: "test-model",
		Timeout:   5,
		Enabled:   true,
	}
	return NewLLMClient(cfg, logger.NewNop())
}

func TestLLMClientComplete(t *testing.T) {
	client := newTestLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"index":0,"message":{"role":"assistant","content":"0.8"},"finish_reason":"stop"}]}`)
	})

	reply, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})

	require.NoError(t, err)
	assert.Equal(t, "0.8", reply)
}

func TestLLMClientCompleteErrors(t *testing.T) {
	t.Run("disabled client", func(t *testing.T) {
		client := NewLLMClient(&config.LLMConfig{Enabled: false, Timeout: 1}, logger.NewNop())
		_, err := client.Complete(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		client := newTestLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})
		_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
		assert.ErrorContains(t, err, "429")
	})

	t.Run("empty choices", func(t *testing.T) {
		client := newTestLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"choices":[]}`)
		})
		_, err := client.Complete(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
		assert.ErrorContains(t, err, "no choices")
	})
}

func TestLLMClientCompleteStream(t *testing.T) {
	client := newTestLLMClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"role\":\"assistant\",\"content\":\"Xin \"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"chào\"},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	var chunks []string
	full, err := client.CompleteStream(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, func(chunk *StreamChunk) error {
		chunks = append(chunks, chunk.Content)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "Xin chào", full)
	assert.Equal(t, []string{"Xin ", "chào"}, chunks)
}
