package correction

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// fakeStore is an in-memory MeetingStore honoring the compare-and-swap
// discipline.
type fakeStore struct {
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
	m, ok := s.meetings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *fakeStore) Create(_ context.Context, m *models.Meeting) error {
	clone := *m
	s.meetings[m.ID] = &clone
	return nil
}

func (s *fakeStore) Save(_ context.Context, m *models.Meeting) error {
	if _, ok := s.meetings[m.ID]; !ok {
		return store.ErrNotFound
	}
	clone := *m
	s.meetings[m.ID] = &clone
	return nil
}

func (s *fakeStore) ListByState(_ context.Context, state models.MeetingState) ([]*models.Meeting, error) {
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
	m, ok := s.meetings[id]
	if !ok {
		return store.ErrNotFound
	}
	m.State = to
	m.StateChangedAt = time.Now()
	m.ErrorMessage = errorMessage
	return nil
}

func (s *fakeStore) get(t *testing.T, id string) *models.Meeting {
	t.Helper()
	m, ok := s.meetings[id]
	require.True(t, ok, "meeting %s not in store", id)
	return m
}

// fakeEmitter records emitted state changes.
type fakeEmitter struct {
	states []models.MeetingState
}

func (e *fakeEmitter) EmitStateChanged(_ context.Context, _, _ string, state models.MeetingState, _, _ string) {
	e.states = append(e.states, state)
}

func (e *fakeEmitter) EmitTranscriptionProgress(_ context.Context, _, _ string, _ float64, _ int, _ float64, _ string) {
}

// fakeAgent implements Agent with overridable behavior.
type fakeAgent struct {
	correctTranscript func(*CorrectTranscriptRequest) (*CorrectResponse, error)
	correctTargeted   func(*CorrectTargetedRequest) (*CorrectResponse, error)
	answered          []*AnswerQuestionsRequest
	answerErr         error
}

func (a *fakeAgent) CorrectTranscript(_ context.Context, req *CorrectTranscriptRequest) (*CorrectResponse, error) {
	if a.correctTranscript == nil {
		return &CorrectResponse{}, nil
	}
	return a.correctTranscript(req)
}

func (a *fakeAgent) CorrectTargeted(_ context.Context, req *CorrectTargetedRequest) (*CorrectResponse, error) {
	if a.correctTargeted == nil {
		return &CorrectResponse{}, nil
	}
	return a.correctTargeted(req)
}

func (a *fakeAgent) AnswerCorrectionQuestions(_ context.Context, req *AnswerQuestionsRequest) error {
	a.answered = append(a.answered, req)
	return a.answerErr
}

func (a *fakeAgent) ListCorrections(_ context.Context, _ *ListCorrectionsRequest) (*ListCorrectionsResponse, error) {
	return &ListCorrectionsResponse{}, nil
}

// fakeBackend implements transcriber.Backend; only Retranscribe matters
// here.
type fakeBackend struct {
	retranscribe func(*transcriber.Request, []models.ExtractionRange) (*transcriber.Result, error)
	gotRanges    []models.ExtractionRange
}

func (b *fakeBackend) Transcribe(_ context.Context, _ *transcriber.Request) (*transcriber.Result, error) {
	return &transcriber.Result{}, nil
}

func (b *fakeBackend) Retranscribe(_ context.Context, req *transcriber.Request, ranges []models.ExtractionRange) (*transcriber.Result, error) {
	b.gotRanges = ranges
	if b.retranscribe == nil {
		return &transcriber.Result{}, nil
	}
	return b.retranscribe(req, ranges)
}

func (b *fakeBackend) IsAvailable(_ context.Context) bool { return true }

func (b *fakeBackend) FindActiveJobForMeeting(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (b *fakeBackend) DeleteJobsForMeeting(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (b *fakeBackend) WaitForExistingJob(_ context.Context, _, _, _, _ string) (*transcriber.Result, error) {
	return nil, errors.New("not supported")
}

func testMeeting(state models.MeetingState) *models.Meeting {
	return &models.Meeting{
		ID:             "m-1",
		ClientID:       "client-1",
		Title:          "Weekly sync",
		State:          state,
		TranscriptText: "helo world goodby",
		TranscriptSegments: []models.Segment{
			{StartSec: 0, EndSec: 5, Text: "helo world", Speaker: "alice"},
			{StartSec: 5, EndSec: 10, Text: "goodby", Speaker: "bob"},
		},
		AudioFilePath:  "/workspace/m-1.wav",
		StateChangedAt: time.Now(),
	}
}

func newTestService(st store.MeetingStore, agent Agent, backend transcriber.Backend, emitter *fakeEmitter) *Service {
	return NewService(st, agent, backend, emitter, heartbeat.NewTracker(), config.DefaultTranscriptionConfig())
}

func TestCorrectHappyPath(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	agent := &fakeAgent{
		correctTranscript: func(req *CorrectTranscriptRequest) (*CorrectResponse, error) {
			require.Len(t, req.Segments, 2)
			return &CorrectResponse{
				Segments: []WireSegment{
					{Index: 0, Text: "hello world"},
					{Index: 1, Text: "goodbye"},
				},
			}, nil
		},
	}
	emitter := &fakeEmitter{}
	svc := newTestService(st, agent, &fakeBackend{}, emitter)

	m, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), m))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrected, saved.State)
	assert.Equal(t, "hello world goodbye", saved.CorrectedTranscriptText)
	assert.Empty(t, saved.CorrectionQuestions)
	assert.Empty(t, saved.ErrorMessage)
	// Timing and speakers survive the overlay.
	assert.Equal(t, 5.0, saved.CorrectedTranscriptSegments[0].EndSec)
	assert.Equal(t, "alice", saved.CorrectedTranscriptSegments[0].Speaker)
	assert.Equal(t, []models.MeetingState{models.StateCorrecting, models.StateCorrected}, emitter.states)
}

func TestCorrectEmptyTranscriptShortCircuits(t *testing.T) {
	m := testMeeting(models.StateTranscribed)
	m.TranscriptText = ""
	m.TranscriptSegments = nil
	st := newFakeStore(m)
	agent := &fakeAgent{
		correctTranscript: func(*CorrectTranscriptRequest) (*CorrectResponse, error) {
			t.Fatal("agent must not be called for an empty transcript")
			return nil, nil
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	loaded, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), loaded))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrected, saved.State)
	assert.Empty(t, saved.CorrectedTranscriptText)
}

func TestCorrectQuestionsPauseInReview(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	agent := &fakeAgent{
		correctTranscript: func(*CorrectTranscriptRequest) (*CorrectResponse, error) {
			return &CorrectResponse{
				Segments: []WireSegment{{Index: 0, Text: "hello world"}, {Index: 1, Text: "goodby"}},
				Questions: []WireQuestion{
					{ID: "q-1", Index: 1, Original: "goodby", Options: []string{"goodbye", "good buy"}, Question: "Which?"},
				},
			}, nil
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	m, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), m))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrectionReview, saved.State)
	require.Len(t, saved.CorrectionQuestions, 1)
	assert.Equal(t, "q-1", saved.CorrectionQuestions[0].QuestionID)
	assert.Equal(t, 1, saved.CorrectionQuestions[0].SegmentIndex)
}

func TestCorrectConnectionErrorReverts(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	agent := &fakeAgent{
		correctTranscript: func(*CorrectTranscriptRequest) (*CorrectResponse, error) {
			return nil, fmt.Errorf("post failed: %w", syscall.ECONNREFUSED)
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	m, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), m))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateTranscribed, saved.State)
	assert.Empty(t, saved.ErrorMessage, "connection errors must not leave an error message")
}

func TestCorrectAgentErrorFails(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	agent := &fakeAgent{
		correctTranscript: func(*CorrectTranscriptRequest) (*CorrectResponse, error) {
			return nil, errors.New("malformed agent response")
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	m, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), m))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateFailed, saved.State)
	assert.Contains(t, saved.ErrorMessage, "Correction error:")
}

func TestCorrectNoTextAfterCorrection(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	agent := &fakeAgent{
		correctTranscript: func(*CorrectTranscriptRequest) (*CorrectResponse, error) {
			return &CorrectResponse{
				Segments: []WireSegment{{Index: 0, Text: ""}, {Index: 1, Text: ""}},
			}, nil
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	m, _ := st.FindByID(context.Background(), "m-1")
	require.NoError(t, svc.Correct(context.Background(), m))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateFailed, saved.State)
	assert.Equal(t, "No transcript text after correction", saved.ErrorMessage)
}

func TestCorrectLosesCASRace(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	svc := newTestService(st, &fakeAgent{}, &fakeBackend{}, &fakeEmitter{})

	m, _ := st.FindByID(context.Background(), "m-1")
	// Another worker claims the meeting first.
	_, err := st.TransitionState(context.Background(), "m-1", models.StateTranscribed, models.StateCorrecting)
	require.NoError(t, err)

	require.NoError(t, svc.Correct(context.Background(), m))
	assert.Equal(t, models.StateCorrecting, st.get(t, "m-1").State, "loser must not touch the meeting")
}

func reviewMeeting() *models.Meeting {
	m := testMeeting(models.StateCorrectionReview)
	m.TranscriptSegments = []models.Segment{
		{StartSec: 0, EndSec: 5, Text: "hello world", Speaker: "alice"},
		{StartSec: 20, EndSec: 25, Text: "Nevim", Speaker: "bob"},
		{StartSec: 25, EndSec: 30, Text: "see you", Speaker: "alice"},
	}
	m.CorrectionQuestions = []models.CorrectionQuestion{
		{QuestionID: "q-1", SegmentIndex: 1, OriginalText: "Nevim", Question: "What was said?"},
	}
	return m
}

func TestAnswerQuestionsAllKnown(t *testing.T) {
	st := newFakeStore(reviewMeeting())
	agent := &fakeAgent{}
	emitter := &fakeEmitter{}
	svc := newTestService(st, agent, &fakeBackend{}, emitter)

	err := svc.AnswerQuestions(context.Background(), "m-1", []models.CorrectionAnswer{
		{QuestionID: "q-1", Original: "Nevim", Corrected: "meeting notes", Category: "term"},
	})
	require.NoError(t, err)

	require.Len(t, agent.answered, 1)
	assert.Equal(t, "meeting notes", agent.answered[0].Answers[0].Corrected)

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateTranscribed, saved.State)
	assert.Empty(t, saved.CorrectionQuestions)
}

func TestAnswerQuestionsUnknownTriggersRetranscription(t *testing.T) {
	st := newFakeStore(reviewMeeting())
	backend := &fakeBackend{
		retranscribe: func(req *transcriber.Request, ranges []models.ExtractionRange) (*transcriber.Result, error) {
			return &transcriber.Result{TextBySegment: map[string]string{"1": "project deadline"}}, nil
		},
	}
	var targeted *CorrectTargetedRequest
	agent := &fakeAgent{
		correctTargeted: func(req *CorrectTargetedRequest) (*CorrectResponse, error) {
			targeted = req
			segments := make([]WireSegment, len(req.Segments))
			copy(segments, req.Segments)
			return &CorrectResponse{Segments: segments}, nil
		},
	}
	svc := newTestService(st, agent, backend, &fakeEmitter{})

	err := svc.AnswerQuestions(context.Background(), "m-1", []models.CorrectionAnswer{
		{QuestionID: "q-1", Original: "Nevim", Corrected: ""},
	})
	require.NoError(t, err)

	// Extraction range: segment (20,25) padded by 10 s.
	require.Len(t, backend.gotRanges, 1)
	assert.Equal(t, models.ExtractionRange{Start: 10, End: 35, SegmentIndex: 1}, backend.gotRanges[0])

	require.NotNil(t, targeted)
	assert.Equal(t, []int{1}, targeted.RetranscribedIndices)
	assert.Empty(t, targeted.UserCorrectedIndices)
	assert.Equal(t, "project deadline", targeted.Segments[1].Text)

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrected, saved.State)
	// Untouched segments keep timing, speaker and text.
	assert.Equal(t, models.Segment{StartSec: 0, EndSec: 5, Text: "hello world", Speaker: "alice"},
		saved.CorrectedTranscriptSegments[0])
	assert.Equal(t, models.Segment{StartSec: 25, EndSec: 30, Text: "see you", Speaker: "alice"},
		saved.CorrectedTranscriptSegments[2])
}

func TestRetranscriptionClampsRangeStart(t *testing.T) {
	m := reviewMeeting()
	m.TranscriptSegments[1] = models.Segment{StartSec: 5, EndSec: 12, Text: "Nevim", Speaker: "bob"}
	st := newFakeStore(m)
	backend := &fakeBackend{}
	svc := newTestService(st, &fakeAgent{}, backend, &fakeEmitter{})

	err := svc.AnswerQuestions(context.Background(), "m-1", []models.CorrectionAnswer{
		{QuestionID: "q-1", Corrected: ""},
	})
	require.NoError(t, err)

	require.Len(t, backend.gotRanges, 1)
	assert.Equal(t, 0.0, backend.gotRanges[0].Start, "padded start must clamp at zero")
	assert.Equal(t, 22.0, backend.gotRanges[0].End)
}

func TestRetranscriptionConnectionErrorRevertsToReview(t *testing.T) {
	st := newFakeStore(reviewMeeting())
	agent := &fakeAgent{
		correctTargeted: func(*CorrectTargetedRequest) (*CorrectResponse, error) {
			return nil, fmt.Errorf("post failed: %w", syscall.ECONNRESET)
		},
	}
	svc := newTestService(st, agent, &fakeBackend{}, &fakeEmitter{})

	err := svc.AnswerQuestions(context.Background(), "m-1", []models.CorrectionAnswer{
		{QuestionID: "q-1", Corrected: ""},
	})
	require.NoError(t, err)

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrectionReview, saved.State)
	assert.Empty(t, saved.ErrorMessage)
}

func TestRetranscribeSelectedSegments(t *testing.T) {
	m := testMeeting(models.StateTranscribed)
	st := newFakeStore(m)
	backend := &fakeBackend{
		retranscribe: func(req *transcriber.Request, ranges []models.ExtractionRange) (*transcriber.Result, error) {
			return &transcriber.Result{TextBySegment: map[string]string{"0": "hello world"}}, nil
		},
	}
	agent := &fakeAgent{
		correctTargeted: func(req *CorrectTargetedRequest) (*CorrectResponse, error) {
			segments := make([]WireSegment, len(req.Segments))
			copy(segments, req.Segments)
			return &CorrectResponse{Segments: segments}, nil
		},
	}
	svc := newTestService(st, agent, backend, &fakeEmitter{})

	require.NoError(t, svc.RetranscribeSelectedSegments(context.Background(), "m-1", []int{0}))

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateCorrected, saved.State)
	assert.Equal(t, "hello world", saved.CorrectedTranscriptSegments[0].Text)
}

func TestAnswerQuestionsWrongStateRejected(t *testing.T) {
	st := newFakeStore(testMeeting(models.StateTranscribed))
	svc := newTestService(st, &fakeAgent{}, &fakeBackend{}, &fakeEmitter{})

	err := svc.AnswerQuestions(context.Background(), "m-1", []models.CorrectionAnswer{
		{QuestionID: "q-1", Corrected: "x"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORRECTION_REVIEW")
}
