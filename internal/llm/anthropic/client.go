package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/internal/llm"
)

const anthropicVersion = "2023-06-01"

// AnalyzeContract implements llm.ContractAnalyzer over the Messages API.
// Temperature is pinned low so repeated extraction of the same text stays
// stable.
func (c *Client) AnalyzeContract(ctx context.Context, req llm.AnalyzeRequest) (llm.AnalyzeResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.analyze.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.DocumentText),
		"filename_hint", req.FilenameHint,
	)

	body := map[string]any{
		"model":       c.cfg.Model,
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": c.cfg.Temperature,
		"system":      llm.SystemPrompt,
		"messages": []map[string]any{
			{"role": "user", "content": llm.BuildAnalysisPrompt(req.DocumentText)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.log.Error("llm.analyze.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.AnalyzeResult{}, err
	}

	var msg struct {
		Model   string `json:"model"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		Usage struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.log.Error("llm.analyze.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.AnalyzeResult{}, &llm.ServiceError{Err: fmt.Errorf("decode anthropic response: %w", err)}
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		c.log.Error("llm.analyze.empty_content",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.AnalyzeResult{}, &llm.ServiceError{Err: errors.New("no text content in anthropic response")}
	}

	model := msg.Model
	if model == "" {
		model = c.cfg.Model
	}

	c.log.Info("llm.analyze.ok",
		"req_id", rid,
		"model", model,
		"output_len", text.Len(),
		"prompt_tokens", msg.Usage.InputTokens,
		"completion_tokens", msg.Usage.OutputTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.AnalyzeResult{
		RawOutput:        text.String(),
		ModelName:        model,
		PromptTokens:     msg.Usage.InputTokens,
		CompletionTokens: msg.Usage.OutputTokens,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, &llm.ServiceError{Err: fmt.Errorf("marshal request: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, &llm.ServiceError{Err: err}
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// network failures and context timeouts are retryable
		return nil, &llm.ServiceError{Transient: true, Err: err}
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("anthropic response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, &llm.ServiceError{Transient: true, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &llm.ServiceError{
			StatusCode: resp.StatusCode,
			Transient:  transientStatus(resp.StatusCode),
			Err:        fmt.Errorf("anthropic status %d: %s", resp.StatusCode, buf.String()),
		}
	}
	return buf.Bytes(), nil
}

// transientStatus classifies HTTP statuses per the retry policy: request
// timeouts, rate limits, and server errors are retryable; other 4xx are
// rejected for good.
func transientStatus(code int) bool {
	switch {
	case code == http.StatusRequestTimeout:
		return true
	case code == http.StatusTooManyRequests:
		return true
	case code >= 500:
		return true
	default:
		return false
	}
}
