package transcriber

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// RemoteBackend streams the audio to a remote transcription service via a
// chunked POST and consumes a server-sent event stream of progress ticks
// ending in a result or error event.
type RemoteBackend struct {
	cfg      *config.TranscriptionConfig
	builder  *optionsBuilder
	notifier *Notifier

	// httpClient has no overall timeout: the stream stays open for the whole
	// transcription. The per-call budget is enforced via context deadline.
	httpClient *http.Client
}

// NewRemoteBackend creates the remote streaming HTTP backend.
func NewRemoteBackend(cfg *config.TranscriptionConfig, builder *optionsBuilder, notifier *Notifier) *RemoteBackend {
	return &RemoteBackend{
		cfg:        cfg,
		builder:    builder,
		notifier:   notifier,
		httpClient: &http.Client{},
	}
}

// Transcribe implements Backend.
func (b *RemoteBackend) Transcribe(ctx context.Context, req *Request) (*Result, error) {
	opts := b.builder.build(ctx, req, "")
	return b.stream(ctx, req, opts, b.builder.transcribeTimeout(req.AudioPath))
}

// Retranscribe implements Backend.
func (b *RemoteBackend) Retranscribe(ctx context.Context, req *Request, ranges []models.ExtractionRange) (*Result, error) {
	opts := b.builder.buildRetranscribe(ctx, req, "", ranges)
	return b.stream(ctx, req, opts, retranscribeTimeout(ranges))
}

// IsAvailable implements Backend via the remote health endpoint.
func (b *RemoteBackend) IsAvailable(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(checkCtx, http.MethodGet, b.cfg.RestRemoteURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// FindActiveJobForMeeting implements Backend. Remote transcriptions die with
// the connection, so there is never a job to re-attach to.
func (b *RemoteBackend) FindActiveJobForMeeting(ctx context.Context, meetingID string) (string, error) {
	return "", nil
}

// DeleteJobsForMeeting implements Backend.
func (b *RemoteBackend) DeleteJobsForMeeting(ctx context.Context, meetingID string) (bool, error) {
	return false, nil
}

// WaitForExistingJob implements Backend.
func (b *RemoteBackend) WaitForExistingJob(ctx context.Context, jobName, audioPath, meetingID, clientID string) (*Result, error) {
	return nil, fmt.Errorf("rest_remote mode has no re-attachable jobs")
}

// stream uploads the audio and follows the SSE event stream to its terminal
// event.
func (b *RemoteBackend) stream(ctx context.Context, req *Request, opts Options, timeout time.Duration) (*Result, error) {
	audio, err := os.Open(req.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %s: %w", req.AudioPath, err)
	}
	defer func() { _ = audio.Close() }()

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options payload: %w", err)
	}

	streamCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(streamCtx, http.MethodPost, b.cfg.RestRemoteURL+"/transcribe", audio)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcription request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/octet-stream")
	httpReq.Header.Set("X-Whisper-Options", string(optsJSON))

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("remote transcription request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote transcription returned status %d", resp.StatusCode)
	}

	return b.consumeEvents(streamCtx, resp, req.MeetingID, req.ClientID)
}

// consumeEvents walks the SSE stream. Progress events are mirrored to the
// notifier; the first result or error event terminates the stream.
func (b *RemoteBackend) consumeEvents(ctx context.Context, resp *http.Response, meetingID, clientID string) (*Result, error) {
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	event := ""
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			switch event {
			case "progress":
				var p Progress
				if err := json.Unmarshal([]byte(data), &p); err != nil {
					slog.Debug("Skipping malformed progress event", "meeting_id", meetingID, "error", err)
					continue
				}
				b.notifier.Notify(ctx, meetingID, clientID, p)
			case "result":
				var result Result
				if err := json.Unmarshal([]byte(data), &result); err != nil {
					return nil, fmt.Errorf("failed to parse result event: %w", err)
				}
				if result.Error != "" {
					return nil, fmt.Errorf("transcription failed: %s", result.Error)
				}
				return &result, nil
			case "error":
				var payload struct {
					Error string `json:"error"`
				}
				if err := json.Unmarshal([]byte(data), &payload); err != nil {
					return nil, fmt.Errorf("remote transcription failed: %s", data)
				}
				return nil, fmt.Errorf("remote transcription failed: %s", payload.Error)
			}
		case line == "":
			event = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("transcription stream interrupted: %w", err)
	}
	return nil, fmt.Errorf("transcription stream ended without a result")
}
