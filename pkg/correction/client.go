package correction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Agent is the correction agent contract consumed by the service and the
// transcription backend (initial-prompt construction).
type Agent interface {
	CorrectTranscript(ctx context.Context, req *CorrectTranscriptRequest) (*CorrectResponse, error)
	CorrectTargeted(ctx context.Context, req *CorrectTargetedRequest) (*CorrectResponse, error)
	AnswerCorrectionQuestions(ctx context.Context, req *AnswerQuestionsRequest) error
	ListCorrections(ctx context.Context, req *ListCorrectionsRequest) (*ListCorrectionsResponse, error)
}

// Client is a stateless HTTP client over the external correction agent.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a correction agent client. Timeout bounds every call
// including body read; correction of long transcripts can take minutes, so
// callers should pass a generous value.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CorrectTranscript implements Agent.
func (c *Client) CorrectTranscript(ctx context.Context, req *CorrectTranscriptRequest) (*CorrectResponse, error) {
	var resp CorrectResponse
	if err := c.postJSON(ctx, "/api/v1/correct-transcript", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CorrectTargeted implements Agent.
func (c *Client) CorrectTargeted(ctx context.Context, req *CorrectTargetedRequest) (*CorrectResponse, error) {
	var resp CorrectResponse
	if err := c.postJSON(ctx, "/api/v1/correct-targeted", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnswerCorrectionQuestions implements Agent. The agent stores the answers
// as persistent correction rules; there is no response body to parse.
func (c *Client) AnswerCorrectionQuestions(ctx context.Context, req *AnswerQuestionsRequest) error {
	return c.postJSON(ctx, "/api/v1/answer-questions", req, nil)
}

// ListCorrections implements Agent.
func (c *Client) ListCorrections(ctx context.Context, req *ListCorrectionsRequest) (*ListCorrectionsResponse, error) {
	var resp ListCorrectionsResponse
	if err := c.postJSON(ctx, "/api/v1/list-corrections", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// postJSON sends one request/response round trip. A nil out skips body
// decoding.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("correction agent call %s failed: %w", path, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		slog.Warn("Correction agent returned non-OK status",
			"path", path, "status", httpResp.StatusCode, "body", string(detail))
		return fmt.Errorf("correction agent %s returned status %d: %s", path, httpResp.StatusCode, string(detail))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode correction agent response from %s: %w", path, err)
	}
	return nil
}
