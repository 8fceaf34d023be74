package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
)

// IndexHandler moves meetings CORRECTED → INDEXED: it renders the Markdown
// content blob and enqueues it for the downstream knowledge-base indexer.
type IndexHandler struct {
	store   store.MeetingStore
	queue   store.IndexQueue
	emitter events.Emitter
}

// NewIndexHandler wires the third pipeline stage.
func NewIndexHandler(st store.MeetingStore, queue store.IndexQueue, emitter events.Emitter) *IndexHandler {
	return &IndexHandler{store: st, queue: queue, emitter: emitter}
}

// Handle enqueues one corrected meeting for indexing.
func (h *IndexHandler) Handle(ctx context.Context, m *models.Meeting) error {
	task := &store.IndexTask{
		MeetingID:     m.ID,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
		Title:         m.Title,
		CorrelationID: "meeting:" + m.ID,
		Content:       RenderIndexBlob(m),
	}
	if err := h.queue.Enqueue(ctx, task); err != nil {
		return err
	}

	ok, err := h.store.TransitionState(ctx, m.ID, models.StateCorrected, models.StateIndexed)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("Meeting left CORRECTED before indexing finished", "meeting_id", m.ID)
		return nil
	}
	h.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateIndexed, m.Title, "")
	slog.Info("Meeting indexed", "meeting_id", m.ID)
	return nil
}

// RenderIndexBlob renders the Markdown document handed to the indexer.
// Deterministic for a given meeting.
func RenderIndexBlob(m *models.Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Title)
	if m.StartedAt != nil {
		fmt.Fprintf(&b, "**Date:** %s\n", m.StartedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "**Duration:** %s\n", FormatDuration(m.DurationSeconds))
	fmt.Fprintf(&b, "**Type:** %s\n", m.MeetingType)
	fmt.Fprintf(&b, "**Audio Input:** %s\n", m.AudioInputType)
	b.WriteString("\n---\n\n## Transcript\n\n")

	for _, seg := range m.BestSegments() {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = "speaker"
		}
		fmt.Fprintf(&b, "[%s] **%s:** %s\n", FormatTimestamp(seg.StartSec), speaker, seg.Text)
	}

	b.WriteString("\n## Source Metadata\n\n")
	fmt.Fprintf(&b, "- Meeting ID: %s\n", m.ID)
	fmt.Fprintf(&b, "- Client ID: %s\n", m.ClientID)
	if m.ProjectID != "" {
		fmt.Fprintf(&b, "- Project ID: %s\n", m.ProjectID)
	}
	if m.Language != "" {
		fmt.Fprintf(&b, "- Language: %s\n", m.Language)
	}
	fmt.Fprintf(&b, "- Audio File: %s\n", m.AudioFilePath)

	return b.String()
}

// FormatDuration renders seconds as "1h01m01s" when hours are present,
// "1m01s" otherwise.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	mnt := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, mnt, sec)
	}
	return fmt.Sprintf("%dm%02ds", mnt, sec)
}

// FormatTimestamp renders seconds as "1:01:01" when hours are present,
// "01:01" otherwise.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	mnt := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mnt, sec)
	}
	return fmt.Sprintf("%02d:%02d", mnt, sec)
}
