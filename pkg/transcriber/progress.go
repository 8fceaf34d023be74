package transcriber

import (
	"context"
	"encoding/json"
	"os"

	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
)

// Progress is the shared progress contract: written continuously by the
// transcription container and the local subprocess, streamed as SSE events
// by the remote backend.
type Progress struct {
	Percent         float64 `json:"percent"`
	SegmentsDone    int     `json:"segmentsDone"`
	ElapsedSeconds  float64 `json:"elapsedSeconds"`
	UpdatedAt       float64 `json:"updatedAt"`
	LastSegmentText string  `json:"lastSegmentText,omitempty"`
}

// CorrectingChecker reports whether the meeting is currently in CORRECTING.
// Heartbeats are only meaningful there, so the notifier asks before touching.
type CorrectingChecker func(ctx context.Context, meetingID string) bool

// Notifier adapts raw progress ticks into notification events and heartbeat
// touches. A nil Notifier is a valid no-op.
type Notifier struct {
	emitter      events.Emitter
	beats        *heartbeat.Tracker
	isCorrecting CorrectingChecker
}

// NewNotifier wires the progress adapter. Any argument may be nil; missing
// pieces are skipped.
func NewNotifier(emitter events.Emitter, beats *heartbeat.Tracker, isCorrecting CorrectingChecker) *Notifier {
	return &Notifier{emitter: emitter, beats: beats, isCorrecting: isCorrecting}
}

// Notify mirrors one progress tick to subscribers and, when the meeting is
// mid-correction, refreshes its heartbeat so the stuck detector leaves it
// alone.
func (n *Notifier) Notify(ctx context.Context, meetingID, clientID string, p Progress) {
	if n == nil || meetingID == "" {
		return
	}
	if n.emitter != nil {
		n.emitter.EmitTranscriptionProgress(ctx, meetingID, clientID,
			p.Percent, p.SegmentsDone, p.ElapsedSeconds, p.LastSegmentText)
	}
	if n.beats != nil && n.isCorrecting != nil && n.isCorrecting(ctx, meetingID) {
		n.beats.Touch(meetingID)
	}
}

// readProgressFile parses the progress file; a missing or partially written
// file is a skip, not an error.
func readProgressFile(path string) (Progress, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Progress{}, false
	}
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return Progress{}, false
	}
	return p, true
}
