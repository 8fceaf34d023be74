package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// LocalBackend runs the transcription engine as a subprocess. The binary
// gets (audioPath, optionsJSON) as arguments, writes the result JSON to
// stdout and progress updates to the shared progress file.
type LocalBackend struct {
	cfg      *config.TranscriptionConfig
	builder  *optionsBuilder
	notifier *Notifier
}

// NewLocalBackend creates the subprocess backend.
func NewLocalBackend(cfg *config.TranscriptionConfig, builder *optionsBuilder, notifier *Notifier) *LocalBackend {
	return &LocalBackend{cfg: cfg, builder: builder, notifier: notifier}
}

// Transcribe implements Backend.
func (b *LocalBackend) Transcribe(ctx context.Context, req *Request) (*Result, error) {
	opts := b.builder.build(ctx, req, progressFilePath(req.AudioPath))
	return b.run(ctx, req, opts, b.builder.transcribeTimeout(req.AudioPath))
}

// Retranscribe implements Backend.
func (b *LocalBackend) Retranscribe(ctx context.Context, req *Request, ranges []models.ExtractionRange) (*Result, error) {
	opts := b.builder.buildRetranscribe(ctx, req, progressFilePath(req.AudioPath), ranges)
	return b.run(ctx, req, opts, retranscribeTimeout(ranges))
}

// IsAvailable implements Backend: the binary must be on PATH or an absolute
// path that exists.
func (b *LocalBackend) IsAvailable(ctx context.Context) bool {
	_, err := exec.LookPath(b.cfg.LocalBinary)
	return err == nil
}

// FindActiveJobForMeeting implements Backend. Subprocesses die with the
// parent, so there is never a job to re-attach to.
func (b *LocalBackend) FindActiveJobForMeeting(ctx context.Context, meetingID string) (string, error) {
	return "", nil
}

// DeleteJobsForMeeting implements Backend.
func (b *LocalBackend) DeleteJobsForMeeting(ctx context.Context, meetingID string) (bool, error) {
	return false, nil
}

// WaitForExistingJob implements Backend.
func (b *LocalBackend) WaitForExistingJob(ctx context.Context, jobName, audioPath, meetingID, clientID string) (*Result, error) {
	return nil, fmt.Errorf("local_subprocess mode has no re-attachable jobs")
}

// run executes the binary, tailing the progress file while it works.
// Exchange files are removed whatever the outcome.
func (b *LocalBackend) run(ctx context.Context, req *Request, opts Options, timeout time.Duration) (*Result, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %s: %w", req.AudioPath, err)
	}

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options payload: %w", err)
	}

	progressFile := progressFilePath(req.AudioPath)
	defer func() { _ = os.Remove(progressFile) }()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, b.cfg.LocalBinary, req.AudioPath, string(optsJSON))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start transcription subprocess: %w", err)
	}

	tailDone := make(chan struct{})
	go b.tailProgress(runCtx, progressFile, req.MeetingID, req.ClientID, tailDone)

	waitErr := cmd.Wait()
	close(tailDone)

	if stderr.Len() > 0 {
		slog.Debug("Transcription subprocess stderr",
			"meeting_id", req.MeetingID, "stderr", stderr.String())
	}

	if waitErr != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("transcription subprocess timed out after %s", timeout)
		}
		return nil, fmt.Errorf("transcription subprocess failed: %w (stderr: %s)", waitErr, stderr.String())
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse subprocess output: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("transcription failed: %s", result.Error)
	}
	return &result, nil
}

// tailProgress polls the progress file on the job cadence until the
// subprocess finishes.
func (b *LocalBackend) tailProgress(ctx context.Context, progressFile, meetingID, clientID string, done <-chan struct{}) {
	ticker := time.NewTicker(b.cfg.JobPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p, ok := readProgressFile(progressFile); ok {
				b.notifier.Notify(ctx, meetingID, clientID, p)
			}
		}
	}
}
