package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://openrouter.ai/api/v1"})
	assert.False(t, c.Configured())

	_, err := c.Suggest(context.Background(), "improve my summary", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Suggest(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "- Quantify your impact\n- Lead with outcomes"}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key", Model: "test-model"})
	text, err := c.Suggest(context.Background(), "improve my bullets", map[string]string{"summary": "engineer"})
	require.NoError(t, err)
	assert.Equal(t, "- Quantify your impact\n- Lead with outcomes", text)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "improve my bullets")
	assert.Contains(t, got.Messages[1].Content, "Resume Context:")
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 1000, got.MaxTokens)
}

func TestClient_Suggest_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Suggest_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	_, err := c.Suggest(context.Background(), "prompt", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
