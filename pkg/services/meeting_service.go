package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JanDamek/jervis-transcribe/pkg/correction"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
)

// CreateMeetingInput is the validated payload for registering an uploaded
// recording.
type CreateMeetingInput struct {
	ClientID        string
	ProjectID       string
	Title           string
	StartedAt       *time.Time
	StoppedAt       *time.Time
	DurationSeconds float64
	MeetingType     string
	AudioInputType  string
	AudioFilePath   string
}

// MeetingService exposes the user-facing meeting operations. The pipeline
// picks up created meetings on its own; the service never drives state
// forward directly except through the correction service.
type MeetingService struct {
	store      store.MeetingStore
	correction *correction.Service
	emitter    events.Emitter
}

// NewMeetingService wires the service.
func NewMeetingService(st store.MeetingStore, corr *correction.Service, emitter events.Emitter) *MeetingService {
	return &MeetingService{store: st, correction: corr, emitter: emitter}
}

// Create registers an uploaded meeting in state UPLOADED.
func (s *MeetingService) Create(ctx context.Context, input *CreateMeetingInput) (*models.Meeting, error) {
	if input.ClientID == "" {
		return nil, NewValidationError("clientId is required")
	}
	if input.AudioFilePath == "" {
		return nil, NewValidationError("audioFilePath is required")
	}
	if input.Title == "" {
		return nil, NewValidationError("title is required")
	}
	if input.DurationSeconds < 0 {
		return nil, NewValidationError("durationSeconds must not be negative")
	}

	now := time.Now()
	m := &models.Meeting{
		ID:              uuid.NewString(),
		ClientID:        input.ClientID,
		ProjectID:       input.ProjectID,
		Title:           input.Title,
		StartedAt:       input.StartedAt,
		StoppedAt:       input.StoppedAt,
		DurationSeconds: input.DurationSeconds,
		MeetingType:     input.MeetingType,
		AudioInputType:  input.AudioInputType,
		AudioFilePath:   input.AudioFilePath,
		State:           models.StateUploaded,
		StateChangedAt:  now,
		CreatedAt:       now,
	}
	if m.StoppedAt == nil {
		m.StoppedAt = &now
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, m.State, m.Title, "")
	return m, nil
}

// Get loads one meeting.
func (s *MeetingService) Get(ctx context.Context, id string) (*models.Meeting, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: meeting %s", ErrNotFound, id)
		}
		return nil, err
	}
	return m, nil
}

// ListByState returns meetings in the given state; an empty state is
// rejected.
func (s *MeetingService) ListByState(ctx context.Context, state models.MeetingState) ([]*models.Meeting, error) {
	switch state {
	case models.StateUploaded, models.StateTranscribing, models.StateTranscribed,
		models.StateCorrecting, models.StateCorrected, models.StateCorrectionReview,
		models.StateIndexed, models.StateFailed:
		return s.store.ListByState(ctx, state)
	default:
		return nil, NewValidationError("unknown state: %s", state)
	}
}

// AnswerQuestions forwards user answers to the correction service.
func (s *MeetingService) AnswerQuestions(ctx context.Context, meetingID string, answers []models.CorrectionAnswer) error {
	if len(answers) == 0 {
		return NewValidationError("answers must not be empty")
	}
	err := s.correction.AnswerQuestions(ctx, meetingID, answers)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	return err
}

// Retranscribe triggers a user-initiated re-transcription of the given
// segment indices.
func (s *MeetingService) Retranscribe(ctx context.Context, meetingID string, indices []int) error {
	if len(indices) == 0 {
		return NewValidationError("segmentIndices must not be empty")
	}
	err := s.correction.RetranscribeSelectedSegments(ctx, meetingID, indices)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	return err
}
