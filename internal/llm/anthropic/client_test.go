package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcmkit/contract-analyzer/internal/llm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:    "test-key",
		BaseURL:   baseURL,
		Model:     "claude-opus-4-5-20251101",
		MaxTokens: 4096,
		Timeout:   2 * time.Second,
	}, testLogger())
}

func TestAnalyzeContract_Success(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "claude-opus-4-5-20251101",
			"content": []map[string]any{
				{"type": "text", "text": `{"vendor_information": {"vendor_name": "Acme"}}`},
			},
			"usage": map[string]any{"input_tokens": 900, "output_tokens": 120},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{
		DocumentText: "some contract text",
		FilenameHint: "msa.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, "claude-opus-4-5-20251101", gotBody["model"])
	assert.Equal(t, llm.SystemPrompt, gotBody["system"])

	assert.Contains(t, res.RawOutput, "Acme")
	assert.Equal(t, "claude-opus-4-5-20251101", res.ModelName)
	assert.Equal(t, 900, res.PromptTokens)
	assert.Equal(t, 120, res.CompletionTokens)
}

func TestAnalyzeContract_ConcatenatesTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": `{"vendor_information":`},
				{"type": "tool_use", "text": "ignored"},
				{"type": "text", "text": ` {"vendor_name": "Acme"}}`},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	res, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor_information": {"vendor_name": "Acme"}}`, res.RawOutput)
	// model missing from the response falls back to the configured one
	assert.Equal(t, "claude-opus-4-5-20251101", res.ModelName)
}

func TestAnalyzeContract_RateLimitedIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "rate_limit_error"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})
	require.Error(t, err)

	var se *llm.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode)
	assert.True(t, se.Transient)
	assert.True(t, llm.IsTransient(err))
}

func TestAnalyzeContract_ServerErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})

	var se *llm.ServiceError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.Transient)
}

func TestAnalyzeContract_BadRequestIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "invalid_request_error"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})

	var se *llm.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.False(t, se.Transient)
	assert.False(t, llm.IsTransient(err))
}

func TestAnalyzeContract_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []map[string]any{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})

	var se *llm.ServiceError
	require.True(t, errors.As(err, &se))
	assert.False(t, se.Transient)
}

func TestAnalyzeContract_ConnectionRefusedIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := newTestClient(srv.URL)
	_, err := c.AnalyzeContract(context.Background(), llm.AnalyzeRequest{DocumentText: "text"})

	require.Error(t, err)
	assert.True(t, llm.IsTransient(err))
}
