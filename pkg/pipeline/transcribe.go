package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// TranscribeHandler moves meetings UPLOADED → TRANSCRIBED by running the
// transcription backend and persisting its result.
type TranscribeHandler struct {
	store   store.MeetingStore
	backend transcriber.Backend
	emitter events.Emitter
	cfg     *config.TranscriptionConfig
}

// NewTranscribeHandler wires the first pipeline stage.
func NewTranscribeHandler(st store.MeetingStore, backend transcriber.Backend, emitter events.Emitter, cfg *config.TranscriptionConfig) *TranscribeHandler {
	return &TranscribeHandler{store: st, backend: backend, emitter: emitter, cfg: cfg}
}

// Handle processes one uploaded meeting. Losing the compare-and-swap is not
// an error: another worker owns the meeting.
func (h *TranscribeHandler) Handle(ctx context.Context, m *models.Meeting) error {
	ok, err := h.store.TransitionState(ctx, m.ID, models.StateUploaded, models.StateTranscribing)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	h.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateTranscribing, m.Title, "")
	slog.Info("Transcription started", "meeting_id", m.ID, "audio", m.AudioFilePath)

	result, err := h.backend.Transcribe(ctx, &transcriber.Request{
		AudioPath:     m.AudioFilePath,
		WorkspacePath: h.cfg.WorkspacePath,
		MeetingID:     m.ID,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
	})
	if err != nil {
		return fmt.Errorf("Transcription error: %w", err)
	}

	return h.PersistResult(ctx, m, result)
}

// PersistResult writes the transcription outcome and moves the meeting to
// TRANSCRIBED. Shared with the re-attach controller, which finishes
// orphaned jobs the same way.
func (h *TranscribeHandler) PersistResult(ctx context.Context, m *models.Meeting, result *transcriber.Result) error {
	m.TranscriptText = result.Text
	m.TranscriptSegments = result.ModelSegments()
	if result.Language != "" {
		m.Language = result.Language
	}
	if result.Duration > 0 {
		m.DurationSeconds = result.Duration
	}
	m.State = models.StateTranscribed
	m.StateChangedAt = time.Now()
	m.ErrorMessage = ""

	if err := h.store.Save(ctx, m); err != nil {
		return err
	}
	h.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateTranscribed, m.Title, "")
	slog.Info("Transcription finished",
		"meeting_id", m.ID, "segments", len(m.TranscriptSegments), "language", m.Language)
	return nil
}
