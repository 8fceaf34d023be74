package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Emitter is what pipeline components use to fire notifications.
// Implementations must be fire-and-forget safe: callers do not treat a
// failed emit as a pipeline failure.
type Emitter interface {
	EmitStateChanged(ctx context.Context, meetingID, clientID string, state models.MeetingState, title, errorMessage string)
	EmitTranscriptionProgress(ctx context.Context, meetingID, clientID string, percent float64, segmentsDone int, elapsedSeconds float64, lastSegmentText string)
}

// Publisher broadcasts meeting events via PostgreSQL NOTIFY. State changes
// are persisted to the events table then broadcast atomically; progress
// ticks go out via NOTIFY only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database connection from
// database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// EmitStateChanged persists and broadcasts a meeting.state_changed event to
// the meeting channel and, transiently, to the global meetings channel.
// Errors are logged, never returned: notification failure must not block a
// state transition that is already persisted.
func (p *Publisher) EmitStateChanged(ctx context.Context, meetingID, clientID string, state models.MeetingState, title, errorMessage string) {
	payload := MeetingStateChangedPayload{
		Type:         EventTypeMeetingStateChanged,
		MeetingID:    meetingID,
		ClientID:     clientID,
		State:        state,
		Title:        title,
		ErrorMessage: errorMessage,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal state change payload", "meeting_id", meetingID, "error", err)
		return
	}

	if err := p.persistAndNotify(ctx, meetingID, MeetingChannel(meetingID), payloadJSON); err != nil {
		slog.Warn("Failed to publish state change to meeting channel",
			"meeting_id", meetingID, "state", state, "error", err)
	}
	if err := p.notifyOnly(ctx, GlobalMeetingsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish state change to global channel",
			"meeting_id", meetingID, "state", state, "error", err)
	}
}

// EmitTranscriptionProgress broadcasts a transient progress tick.
func (p *Publisher) EmitTranscriptionProgress(ctx context.Context, meetingID, clientID string, percent float64, segmentsDone int, elapsedSeconds float64, lastSegmentText string) {
	payload := TranscriptionProgressPayload{
		Type:            EventTypeMeetingTranscriptionProgress,
		MeetingID:       meetingID,
		ClientID:        clientID,
		Percent:         percent,
		SegmentsDone:    segmentsDone,
		ElapsedSeconds:  elapsedSeconds,
		LastSegmentText: lastSegmentText,
		Timestamp:       time.Now().Format(time.RFC3339Nano),
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal progress payload", "meeting_id", meetingID, "error", err)
		return
	}

	if err := p.notifyOnly(ctx, MeetingChannel(meetingID), payloadJSON); err != nil {
		slog.Debug("Failed to publish progress tick", "meeting_id", meetingID, "error", err)
	}
}

// persistAndNotify stores the event and broadcasts it in one transaction
// (pg_notify is transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, meetingID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (meeting_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		meetingID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventID(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventID adds db_event_id to the NOTIFY copy of a persisted event
// so subscribers can catch up from the events table after a reconnect.
func injectDBEventID(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return string(enriched), nil
}
