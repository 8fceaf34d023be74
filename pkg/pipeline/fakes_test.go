package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// fakeStore is an in-memory MeetingStore honoring the compare-and-swap
// discipline.
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
	if _, ok := s.meetings[m.ID]; !ok {
		return store.ErrNotFound
	}
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
	if !models.CanTransition(from, to) {
		return false, fmt.Errorf("invalid transition %s → %s", from, to)
	}
	if m.State != from {
		return false, nil
	}
	m.State = to
	m.StateChangedAt = time.Now()
	m.ErrorMessage = ""
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
	m.StateChangedAt = time.Now()
	m.ErrorMessage = errorMessage
	return nil
}

func (s *fakeStore) get(t *testing.T, id string) models.Meeting {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	require.True(t, ok, "meeting %s not in store", id)
	return *m
}

// fakeEmitter records emitted state changes.
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

func (e *fakeEmitter) emitted() []models.MeetingState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.MeetingState(nil), e.states...)
}

// fakeBackend implements transcriber.Backend with overridable behavior.
type fakeBackend struct {
	transcribe func(*transcriber.Request) (*transcriber.Result, error)
	activeJob  func(meetingID string) (string, error)
	waitForJob func(jobName string) (*transcriber.Result, error)
}

func (b *fakeBackend) Transcribe(_ context.Context, req *transcriber.Request) (*transcriber.Result, error) {
	if b.transcribe == nil {
		return &transcriber.Result{}, nil
	}
	return b.transcribe(req)
}

func (b *fakeBackend) Retranscribe(_ context.Context, _ *transcriber.Request, _ []models.ExtractionRange) (*transcriber.Result, error) {
	return &transcriber.Result{}, nil
}

func (b *fakeBackend) IsAvailable(_ context.Context) bool { return true }

func (b *fakeBackend) FindActiveJobForMeeting(_ context.Context, meetingID string) (string, error) {
	if b.activeJob == nil {
		return "", nil
	}
	return b.activeJob(meetingID)
}

func (b *fakeBackend) DeleteJobsForMeeting(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (b *fakeBackend) WaitForExistingJob(_ context.Context, jobName, _, _, _ string) (*transcriber.Result, error) {
	if b.waitForJob == nil {
		return &transcriber.Result{}, nil
	}
	return b.waitForJob(jobName)
}

// fakeQueue records enqueued index tasks.
type fakeQueue struct {
	tasks []*store.IndexTask
}

func (q *fakeQueue) Enqueue(_ context.Context, task *store.IndexTask) error {
	q.tasks = append(q.tasks, task)
	return nil
}
