package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// Reattacher re-binds running external transcription jobs to the state
// machine after a restart. It runs once, before the pipeline workers start,
// so orphaned meetings are either re-attached or reverted before anyone
// else touches them.
type Reattacher struct {
	store      store.MeetingStore
	backend    transcriber.Backend
	emitter    events.Emitter
	transcribe *TranscribeHandler

	wg sync.WaitGroup
}

// NewReattacher wires the controller.
func NewReattacher(st store.MeetingStore, backend transcriber.Backend, emitter events.Emitter, transcribe *TranscribeHandler) *Reattacher {
	return &Reattacher{store: st, backend: backend, emitter: emitter, transcribe: transcribe}
}

// Run scans both transient states and either re-attaches or reverts each
// meeting. Attached jobs are awaited in background tasks; Run itself
// returns once the scan is complete.
func (r *Reattacher) Run(ctx context.Context) error {
	for _, state := range []models.MeetingState{models.StateTranscribing, models.StateCorrecting} {
		meetings, err := r.store.ListByState(ctx, state)
		if err != nil {
			return fmt.Errorf("re-attach scan failed for state %s: %w", state, err)
		}
		for _, m := range meetings {
			r.reattachOne(ctx, m)
		}
	}
	return nil
}

// Wait blocks until every awaited job has finished. Used on shutdown.
func (r *Reattacher) Wait() {
	r.wg.Wait()
}

// reattachOne handles a single orphaned meeting.
func (r *Reattacher) reattachOne(ctx context.Context, m *models.Meeting) {
	jobName, err := r.backend.FindActiveJobForMeeting(ctx, m.ID)
	if err != nil {
		slog.Error("Re-attach job lookup failed", "meeting_id", m.ID, "error", err)
		return
	}

	if jobName == "" {
		r.revert(ctx, m)
		return
	}

	slog.Info("Re-attaching to running transcription job",
		"meeting_id", m.ID, "job", jobName, "state", m.State)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.awaitJob(ctx, m, jobName)
	}()
}

// revert moves a meeting with no surviving job back to its predecessor
// state so the pipeline redoes the lost work.
func (r *Reattacher) revert(ctx context.Context, m *models.Meeting) {
	var back models.MeetingState
	switch m.State {
	case models.StateTranscribing:
		back = models.StateUploaded
	case models.StateCorrecting:
		// Correction itself has no durable external job.
		back = models.StateTranscribed
	default:
		return
	}

	slog.Info("Reverting orphaned meeting", "meeting_id", m.ID, "from", m.State, "to", back)
	if err := r.store.SetState(ctx, m.ID, back, ""); err != nil {
		slog.Error("Failed to revert orphaned meeting", "meeting_id", m.ID, "error", err)
		return
	}
	r.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, back, m.Title, "")
}

// awaitJob waits for the surviving job and finishes the meeting the same
// way the original pipeline worker would have.
func (r *Reattacher) awaitJob(ctx context.Context, m *models.Meeting, jobName string) {
	result, err := r.backend.WaitForExistingJob(ctx, jobName, m.AudioFilePath, m.ID, m.ClientID)
	if err != nil {
		slog.Error("Re-attached job failed", "meeting_id", m.ID, "job", jobName, "error", err)
		message := fmt.Sprintf("Transcription error: %v", err)
		if setErr := r.store.SetState(ctx, m.ID, models.StateFailed, message); setErr != nil {
			slog.Error("Failed to persist FAILED state", "meeting_id", m.ID, "error", setErr)
			return
		}
		r.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateFailed, m.Title, message)
		return
	}

	switch m.State {
	case models.StateTranscribing:
		if err := r.transcribe.PersistResult(ctx, m, result); err != nil {
			slog.Error("Failed to persist re-attached result", "meeting_id", m.ID, "error", err)
		}
	case models.StateCorrecting:
		// The job was a targeted re-transcription; its in-memory correction
		// context is gone, so hand the meeting back to the user.
		if err := r.store.SetState(ctx, m.ID, models.StateCorrectionReview, ""); err != nil {
			slog.Error("Failed to revert re-attached correction", "meeting_id", m.ID, "error", err)
			return
		}
		r.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateCorrectionReview, m.Title, "")
	}
}
