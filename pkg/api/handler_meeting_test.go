package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/correction"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/services"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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
	m.ErrorMessage = errorMessage
	return nil
}

type fakeEmitter struct{}

func (fakeEmitter) EmitStateChanged(_ context.Context, _, _ string, _ models.MeetingState, _, _ string) {
}

func (fakeEmitter) EmitTranscriptionProgress(_ context.Context, _, _ string, _ float64, _ int, _ float64, _ string) {
}

type fakeAgent struct{}

func (fakeAgent) CorrectTranscript(_ context.Context, _ *correction.CorrectTranscriptRequest) (*correction.CorrectResponse, error) {
	return &correction.CorrectResponse{}, nil
}

func (fakeAgent) CorrectTargeted(_ context.Context, _ *correction.CorrectTargetedRequest) (*correction.CorrectResponse, error) {
	return &correction.CorrectResponse{}, nil
}

func (fakeAgent) AnswerCorrectionQuestions(_ context.Context, _ *correction.AnswerQuestionsRequest) error {
	return nil
}

func (fakeAgent) ListCorrections(_ context.Context, _ *correction.ListCorrectionsRequest) (*correction.ListCorrectionsResponse, error) {
	return &correction.ListCorrectionsResponse{}, nil
}

type fakeBackend struct{}

func (fakeBackend) Transcribe(_ context.Context, _ *transcriber.Request) (*transcriber.Result, error) {
	return &transcriber.Result{}, nil
}

func (fakeBackend) Retranscribe(_ context.Context, _ *transcriber.Request, _ []models.ExtractionRange) (*transcriber.Result, error) {
	return &transcriber.Result{}, nil
}

func (fakeBackend) IsAvailable(_ context.Context) bool { return true }

func (fakeBackend) FindActiveJobForMeeting(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (fakeBackend) DeleteJobsForMeeting(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (fakeBackend) WaitForExistingJob(_ context.Context, _, _, _, _ string) (*transcriber.Result, error) {
	return &transcriber.Result{}, nil
}

func newTestRouter(st *fakeStore) *gin.Engine {
	corr := correction.NewService(st, fakeAgent{}, fakeBackend{}, fakeEmitter{},
		heartbeat.NewTracker(), config.DefaultTranscriptionConfig())
	meetings := services.NewMeetingService(st, corr, fakeEmitter{})
	return NewServer(meetings, fakeBackend{}, nil).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateMeetingEndpoint(t *testing.T) {
	st := newFakeStore()
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/meetings", gin.H{
		"clientId":        "client-1",
		"title":           "Weekly sync",
		"audioFilePath":   "/workspace/recording.wav",
		"durationSeconds": 1800,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp MeetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, models.StateUploaded, resp.State)

	_, err := st.FindByID(context.Background(), resp.ID)
	assert.NoError(t, err)
}

func TestCreateMeetingRejectsMissingClientID(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/meetings", gin.H{
		"title":         "Weekly sync",
		"audioFilePath": "/workspace/recording.wav",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMeetingNotFound(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/meetings/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMeeting(t *testing.T) {
	st := newFakeStore(&models.Meeting{
		ID:       "m-1",
		ClientID: "client-1",
		Title:    "Weekly sync",
		State:    models.StateIndexed,
	})
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/meetings/m-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MeetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "m-1", resp.ID)
	assert.Equal(t, models.StateIndexed, resp.State)
}

func TestListMeetingsRequiresState(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/meetings", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMeetingsByState(t *testing.T) {
	st := newFakeStore(
		&models.Meeting{ID: "m-1", ClientID: "client-1", State: models.StateUploaded},
		&models.Meeting{ID: "m-2", ClientID: "client-1", State: models.StateIndexed},
	)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/meetings?state=UPLOADED", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Meetings []MeetingResponse `json:"meetings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Meetings, 1)
	assert.Equal(t, "m-1", resp.Meetings[0].ID)
}

func TestAnswerQuestionsEndpoint(t *testing.T) {
	st := newFakeStore(&models.Meeting{
		ID:       "m-1",
		ClientID: "client-1",
		Title:    "Weekly sync",
		State:    models.StateCorrectionReview,
		TranscriptSegments: []models.Segment{
			{StartSec: 0, EndSec: 5, Text: "hello Jervis"},
		},
		CorrectionQuestions: []models.CorrectionQuestion{
			{QuestionID: "q-1", SegmentIndex: 0, OriginalText: "Jervis"},
		},
	})
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/meetings/m-1/answers", gin.H{
		"answers": []gin.H{
			{"questionId": "q-1", "original": "Jervis", "corrected": "Jarvis", "category": "name"},
		},
	})

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	// All questions answered: the meeting goes back through correction.
	m, err := st.FindByID(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateTranscribed, m.State)
	assert.Empty(t, m.CorrectionQuestions)
}

func TestAnswerQuestionsRejectsEmptyBody(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/meetings/m-1/answers", gin.H{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRetranscribeUnknownMeeting(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/meetings/missing/retranscribe", gin.H{
		"segmentIndices": []int{0, 2},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
