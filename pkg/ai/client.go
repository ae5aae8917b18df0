// Package ai calls the external chat-completion endpoint for resume text
// suggestions and parses what comes back into usable shapes.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const systemPrompt = "You are a professional resume optimization expert. Provide specific, actionable advice to improve resumes for better job prospects and ATS compatibility. Be concise and practical."

// ErrNotConfigured is returned when no API key was injected. It is a
// configuration error: surfaced to the user as-is, never retried.
var ErrNotConfigured = errors.New("ai suggestions are not configured: missing API key")

// Config is injected at startup by the configuration loader. The key is
// never read from a package global.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{Timeout: 60 * time.Second}}
}

// Configured reports whether the client holds credentials.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest sends the prompt, optionally with the resume as context, and
// returns the model's free text. Callers decide where the text lands.
func (c *Client) Suggest(ctx context.Context, prompt string, resumeContext interface{}) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	userContent := prompt
	if resumeContext != nil {
		ctxJSON, err := json.Marshal(resumeContext)
		if err != nil {
			return "", err
		}
		userContent = fmt.Sprintf("%s\n\nResume Context: %s", prompt, ctxJSON)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/chat/completions", body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(rb, &parsed); err != nil {
		return "", fmt.Errorf("ai endpoint returned non-json content: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("ai endpoint returned no content")
	}
	return parsed.Choices[0].Message.Content, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
