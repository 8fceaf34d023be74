package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

func newDetector(st *fakeStore, beats *heartbeat.Tracker, backend *fakeBackend, emitter *fakeEmitter) *StuckDetector {
	return NewStuckDetector(st, beats, backend, emitter,
		config.DefaultPipelineConfig(), config.DefaultTranscriptionConfig())
}

func correctingMeeting(age time.Duration) *models.Meeting {
	return &models.Meeting{
		ID:             "m-1",
		ClientID:       "client-1",
		Title:          "Weekly sync",
		State:          models.StateCorrecting,
		StateChangedAt: time.Now().Add(-age),
	}
}

func TestStuckCorrectionReverted(t *testing.T) {
	st := newFakeStore(correctingMeeting(11 * time.Minute))
	beats := heartbeat.NewTracker()
	emitter := &fakeEmitter{}
	d := newDetector(st, beats, &fakeBackend{}, emitter)

	d.Sweep(context.Background())

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateTranscribed, saved.State)
	assert.Equal(t, "Stuck in CORRECTING", saved.ErrorMessage)
	assert.Equal(t, []models.MeetingState{models.StateTranscribed}, emitter.emitted())
}

func TestFreshHeartbeatPreventsRevert(t *testing.T) {
	st := newFakeStore(correctingMeeting(11 * time.Minute))
	beats := heartbeat.NewTracker()
	beats.Touch("m-1")
	d := newDetector(st, beats, &fakeBackend{}, &fakeEmitter{})

	d.Sweep(context.Background())

	assert.Equal(t, models.StateCorrecting, st.get(t, "m-1").State)
}

func TestRecentCorrectionLeftAlone(t *testing.T) {
	st := newFakeStore(correctingMeeting(5 * time.Minute))
	d := newDetector(st, heartbeat.NewTracker(), &fakeBackend{}, &fakeEmitter{})

	d.Sweep(context.Background())

	assert.Equal(t, models.StateCorrecting, st.get(t, "m-1").State)
}

func transcribingMeeting(age time.Duration) *models.Meeting {
	return &models.Meeting{
		ID:              "m-2",
		ClientID:        "client-1",
		State:           models.StateTranscribing,
		StateChangedAt:  time.Now().Add(-age),
		DurationSeconds: 60,
	}
}

func TestTimedOutTranscriptionWithoutJobReverted(t *testing.T) {
	st := newFakeStore(transcribingMeeting(15 * time.Minute))
	emitter := &fakeEmitter{}
	d := newDetector(st, heartbeat.NewTracker(), &fakeBackend{}, emitter)

	d.Sweep(context.Background())

	saved := st.get(t, "m-2")
	assert.Equal(t, models.StateUploaded, saved.State)
	assert.Empty(t, saved.ErrorMessage)
}

func TestTranscriptionWithActiveJobLeftAlone(t *testing.T) {
	st := newFakeStore(transcribingMeeting(15 * time.Minute))
	backend := &fakeBackend{activeJob: func(string) (string, error) { return "job-abc", nil }}
	d := newDetector(st, heartbeat.NewTracker(), backend, &fakeEmitter{})

	d.Sweep(context.Background())

	assert.Equal(t, models.StateTranscribing, st.get(t, "m-2").State)
}

func TestTranscriptionWithinBudgetLeftAlone(t *testing.T) {
	st := newFakeStore(transcribingMeeting(5 * time.Minute))
	d := newDetector(st, heartbeat.NewTracker(), &fakeBackend{}, &fakeEmitter{})

	d.Sweep(context.Background())

	assert.Equal(t, models.StateTranscribing, st.get(t, "m-2").State)
}
