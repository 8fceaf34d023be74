// Package store persists meeting documents and index tasks in PostgreSQL
// through the Ent client. State transitions into transient states go through
// a compare-and-swap predicate update so that at most one worker ever owns a
// meeting in TRANSCRIBING or CORRECTING.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/JanDamek/jervis-transcribe/ent"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// MeetingStore is the persistence contract used by the pipeline and the
// correction service.
type MeetingStore interface {
	// FindByID loads one meeting document.
	FindByID(ctx context.Context, id string) (*models.Meeting, error)

	// Create inserts a new meeting document.
	Create(ctx context.Context, m *models.Meeting) error

	// Save replaces the whole meeting document.
	Save(ctx context.Context, m *models.Meeting) error

	// ListByState returns meetings in the given state, oldest stopped_at
	// first. Restartable: each poll re-queries.
	ListByState(ctx context.Context, state models.MeetingState) ([]*models.Meeting, error)

	// TransitionState performs a compare-and-swap state transition and bumps
	// state_changed_at. Returns false when the meeting was not in the
	// expected from state (someone else got there first).
	TransitionState(ctx context.Context, id string, from, to models.MeetingState) (bool, error)

	// SetState unconditionally moves a meeting to the given state with an
	// optional error message (empty clears it). Used for reverts and FAILED.
	SetState(ctx context.Context, id string, to models.MeetingState, errorMessage string) error
}

// ErrNotFound is returned when a meeting does not exist.
var ErrNotFound = fmt.Errorf("meeting not found")

// EntMeetingStore implements MeetingStore over the Ent client.
type EntMeetingStore struct {
	client *ent.Client
}

// NewMeetingStore creates an Ent-backed MeetingStore.
func NewMeetingStore(client *ent.Client) *EntMeetingStore {
	return &EntMeetingStore{client: client}
}

// FindByID implements MeetingStore.
func (s *EntMeetingStore) FindByID(ctx context.Context, id string) (*models.Meeting, error) {
	row, err := s.client.Meeting.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load meeting %s: %w", id, err)
	}
	return fromEnt(row), nil
}

// Create implements MeetingStore.
func (s *EntMeetingStore) Create(ctx context.Context, m *models.Meeting) error {
	builder := s.client.Meeting.Create().
		SetID(m.ID).
		SetClientID(m.ClientID).
		SetTitle(m.Title).
		SetDurationSeconds(m.DurationSeconds).
		SetMeetingType(m.MeetingType).
		SetAudioInputType(m.AudioInputType).
		SetAudioFilePath(m.AudioFilePath).
		SetState(meeting.State(m.State)).
		SetStateChangedAt(m.StateChangedAt).
		SetTranscriptText(m.TranscriptText).
		SetTranscriptSegments(m.TranscriptSegments).
		SetCorrectedTranscriptSegments(m.CorrectedTranscriptSegments).
		SetCorrectionQuestions(m.CorrectionQuestions)

	if m.ProjectID != "" {
		builder.SetProjectID(m.ProjectID)
	}
	if m.StartedAt != nil {
		builder.SetStartedAt(*m.StartedAt)
	}
	if m.StoppedAt != nil {
		builder.SetStoppedAt(*m.StoppedAt)
	}
	if m.ErrorMessage != "" {
		builder.SetErrorMessage(m.ErrorMessage)
	}
	if m.CorrectedTranscriptText != "" {
		builder.SetCorrectedTranscriptText(m.CorrectedTranscriptText)
	}
	if m.Language != "" {
		builder.SetLanguage(m.Language)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create meeting %s: %w", m.ID, err)
	}
	return nil
}

// Save implements MeetingStore: full document replacement.
func (s *EntMeetingStore) Save(ctx context.Context, m *models.Meeting) error {
	update := s.client.Meeting.UpdateOneID(m.ID).
		SetClientID(m.ClientID).
		SetTitle(m.Title).
		SetDurationSeconds(m.DurationSeconds).
		SetMeetingType(m.MeetingType).
		SetAudioInputType(m.AudioInputType).
		SetAudioFilePath(m.AudioFilePath).
		SetState(meeting.State(m.State)).
		SetStateChangedAt(m.StateChangedAt).
		SetTranscriptText(m.TranscriptText).
		SetTranscriptSegments(m.TranscriptSegments).
		SetCorrectedTranscriptSegments(m.CorrectedTranscriptSegments).
		SetCorrectionQuestions(m.CorrectionQuestions)

	if m.ProjectID != "" {
		update.SetProjectID(m.ProjectID)
	} else {
		update.ClearProjectID()
	}
	if m.StartedAt != nil {
		update.SetStartedAt(*m.StartedAt)
	} else {
		update.ClearStartedAt()
	}
	if m.StoppedAt != nil {
		update.SetStoppedAt(*m.StoppedAt)
	} else {
		update.ClearStoppedAt()
	}
	if m.ErrorMessage != "" {
		update.SetErrorMessage(m.ErrorMessage)
	} else {
		update.ClearErrorMessage()
	}
	if m.CorrectedTranscriptText != "" {
		update.SetCorrectedTranscriptText(m.CorrectedTranscriptText)
	} else {
		update.ClearCorrectedTranscriptText()
	}
	if m.Language != "" {
		update.SetLanguage(m.Language)
	} else {
		update.ClearLanguage()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save meeting %s: %w", m.ID, err)
	}
	return nil
}

// ListByState implements MeetingStore. Oldest stopped_at first so pipelines
// process meetings FIFO; NULL stopped_at sorts last.
func (s *EntMeetingStore) ListByState(ctx context.Context, state models.MeetingState) ([]*models.Meeting, error) {
	rows, err := s.client.Meeting.Query().
		Where(meeting.StateEQ(meeting.State(state))).
		Order(ent.Asc(meeting.FieldStoppedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings in state %s: %w", state, err)
	}

	meetings := make([]*models.Meeting, len(rows))
	for i, row := range rows {
		meetings[i] = fromEnt(row)
	}
	return meetings, nil
}

// TransitionState implements MeetingStore. The predicate on the current
// state makes the update a compare-and-swap: zero affected rows means the
// meeting moved on and the caller must not proceed.
func (s *EntMeetingStore) TransitionState(ctx context.Context, id string, from, to models.MeetingState) (bool, error) {
	if !models.CanTransition(from, to) {
		return false, fmt.Errorf("invalid transition %s → %s for meeting %s", from, to, id)
	}

	n, err := s.client.Meeting.Update().
		Where(
			meeting.IDEQ(id),
			meeting.StateEQ(meeting.State(from)),
		).
		SetState(meeting.State(to)).
		SetStateChangedAt(time.Now()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to transition meeting %s %s → %s: %w", id, from, to, err)
	}
	return n == 1, nil
}

// SetState implements MeetingStore.
func (s *EntMeetingStore) SetState(ctx context.Context, id string, to models.MeetingState, errorMessage string) error {
	update := s.client.Meeting.UpdateOneID(id).
		SetState(meeting.State(to)).
		SetStateChangedAt(time.Now())

	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	} else {
		update.ClearErrorMessage()
	}

	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set meeting %s state %s: %w", id, to, err)
	}
	return nil
}

// fromEnt converts the Ent row into the domain document.
func fromEnt(row *ent.Meeting) *models.Meeting {
	m := &models.Meeting{
		ID:                          row.ID,
		ClientID:                    row.ClientID,
		Title:                       row.Title,
		StartedAt:                   row.StartedAt,
		StoppedAt:                   row.StoppedAt,
		DurationSeconds:             row.DurationSeconds,
		MeetingType:                 row.MeetingType,
		AudioInputType:              row.AudioInputType,
		AudioFilePath:               row.AudioFilePath,
		State:                       models.MeetingState(row.State),
		StateChangedAt:              row.StateChangedAt,
		TranscriptText:              row.TranscriptText,
		TranscriptSegments:          row.TranscriptSegments,
		CorrectedTranscriptSegments: row.CorrectedTranscriptSegments,
		CorrectionQuestions:         row.CorrectionQuestions,
		CreatedAt:                   row.CreatedAt,
	}
	if row.ProjectID != nil {
		m.ProjectID = *row.ProjectID
	}
	if row.ErrorMessage != nil {
		m.ErrorMessage = *row.ErrorMessage
	}
	if row.CorrectedTranscriptText != nil {
		m.CorrectedTranscriptText = *row.CorrectedTranscriptText
	}
	if row.Language != nil {
		m.Language = *row.Language
	}
	return m
}
