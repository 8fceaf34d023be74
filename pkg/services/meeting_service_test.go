package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
)

type fakeStore struct {
	mu       sync.Mutex
	meetings map[string]*models.Meeting
}

func newFakeStore(meetings ...*models.Meeting) *fakeStore {
	s := &fakeStore{meetings: make(map[string]*models.Meeting)}
	for _, m := range meetings {
		clone := *m
		s.meetings[m.ID] = &clone
	}
	return s
}

func (s *fakeStore) FindByID(_ context.Context, id string) (*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *fakeStore) Create(_ context.Context, m *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *m
	s.meetings[m.ID] = &clone
	return nil
}

func (s *fakeStore) Save(_ context.Context, m *models.Meeting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *m
	s.meetings[m.ID] = &clone
	return nil
}

func (s *fakeStore) ListByState(_ context.Context, state models.MeetingState) ([]*models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Meeting
	for _, m := range s.meetings {
		if m.State == state {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *fakeStore) TransitionState(_ context.Context, id string, from, to models.MeetingState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return false, store.ErrNotFound
	}
	if m.State != from {
		return false, nil
	}
	m.State = to
	return true, nil
}

func (s *fakeStore) SetState(_ context.Context, id string, to models.MeetingState, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return store.ErrNotFound
	}
	m.State = to
	m.ErrorMessage = errorMessage
	return nil
}

type fakeEmitter struct {
	mu     sync.Mutex
	states []models.MeetingState
}

func (e *fakeEmitter) EmitStateChanged(_ context.Context, _, _ string, state models.MeetingState, _, _ string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.states = append(e.states, state)
}

func (e *fakeEmitter) EmitTranscriptionProgress(_ context.Context, _, _ string, _ float64, _ int, _ float64, _ string) {
}

func validInput() *CreateMeetingInput {
	return &CreateMeetingInput{
		ClientID:        "client-1",
		ProjectID:       "proj-1",
		Title:           "Weekly sync",
		DurationSeconds: 1800,
		MeetingType:     "standup",
		AudioInputType:  "microphone",
		AudioFilePath:   "/workspace/recording.wav",
	}
}

func TestCreateMeeting(t *testing.T) {
	st := newFakeStore()
	emitter := &fakeEmitter{}
	svc := NewMeetingService(st, nil, emitter)

	before := time.Now()
	m, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, models.StateUploaded, m.State)
	assert.Equal(t, "client-1", m.ClientID)
	require.NotNil(t, m.StoppedAt, "StoppedAt defaults to now")
	assert.False(t, m.StoppedAt.Before(before))

	stored, err := st.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateUploaded, stored.State)
	assert.Equal(t, []models.MeetingState{models.StateUploaded}, emitter.states)
}

func TestCreateMeetingKeepsExplicitStoppedAt(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	stopped := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	input := validInput()
	input.StoppedAt = &stopped

	m, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, stopped, *m.StoppedAt)
}

func TestCreateMeetingValidation(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	tests := []struct {
		name   string
		mutate func(*CreateMeetingInput)
	}{
		{"missing clientId", func(in *CreateMeetingInput) { in.ClientID = "" }},
		{"missing audioFilePath", func(in *CreateMeetingInput) { in.AudioFilePath = "" }},
		{"missing title", func(in *CreateMeetingInput) { in.Title = "" }},
		{"negative duration", func(in *CreateMeetingInput) { in.DurationSeconds = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestGetMeetingNotFound(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByStateRejectsUnknownState(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	_, err := svc.ListByState(context.Background(), models.MeetingState("SLEEPING"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestListByState(t *testing.T) {
	st := newFakeStore(
		&models.Meeting{ID: "m-1", State: models.StateUploaded},
		&models.Meeting{ID: "m-2", State: models.StateIndexed},
	)
	svc := NewMeetingService(st, nil, &fakeEmitter{})

	meetings, err := svc.ListByState(context.Background(), models.StateUploaded)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "m-1", meetings[0].ID)
}

func TestAnswerQuestionsRequiresAnswers(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	err := svc.AnswerQuestions(context.Background(), "m-1", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRetranscribeRequiresIndices(t *testing.T) {
	svc := NewMeetingService(newFakeStore(), nil, &fakeEmitter{})

	err := svc.Retranscribe(context.Background(), "m-1", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
