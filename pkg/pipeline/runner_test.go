package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

func uploadedMeeting(id string) *models.Meeting {
	stopped := time.Now()
	return &models.Meeting{
		ID:             id,
		ClientID:       "client-1",
		Title:          "Weekly sync",
		State:          models.StateUploaded,
		StoppedAt:      &stopped,
		StateChangedAt: time.Now(),
		AudioFilePath:  "/workspace/" + id + ".wav",
	}
}

func TestDrainHandlesEveryMeeting(t *testing.T) {
	st := newFakeStore(uploadedMeeting("m-1"), uploadedMeeting("m-2"))
	runner := NewRunner(st, &fakeEmitter{}, config.DefaultPipelineConfig())

	var handled []string
	w := worker{name: "test", state: models.StateUploaded, handle: func(_ context.Context, m *models.Meeting) error {
		handled = append(handled, m.ID)
		return nil
	}}

	assert.True(t, runner.drain(context.Background(), w))
	assert.Len(t, handled, 2)

	// Nothing left in UPLOADED after the handlers moved them on.
	for _, id := range handled {
		require.NoError(t, st.SetState(context.Background(), id, models.StateTranscribed, ""))
	}
	assert.False(t, runner.drain(context.Background(), w))
}

func TestHandlerErrorFailsMeetingOnly(t *testing.T) {
	st := newFakeStore(uploadedMeeting("m-1"), uploadedMeeting("m-2"))
	emitter := &fakeEmitter{}
	runner := NewRunner(st, emitter, config.DefaultPipelineConfig())

	w := worker{name: "test", state: models.StateUploaded, handle: func(_ context.Context, m *models.Meeting) error {
		if m.ID == "m-1" {
			return errors.New("backend exploded")
		}
		return st.SetState(context.Background(), m.ID, models.StateTranscribed, "")
	}}

	runner.drain(context.Background(), w)

	failed := st.get(t, "m-1")
	assert.Equal(t, models.StateFailed, failed.State)
	assert.Equal(t, "backend exploded", failed.ErrorMessage)
	assert.Equal(t, models.StateTranscribed, st.get(t, "m-2").State)
	assert.Contains(t, emitter.emitted(), models.StateFailed)
}

func TestHandlerPanicFailsMeetingOnly(t *testing.T) {
	st := newFakeStore(uploadedMeeting("m-1"))
	runner := NewRunner(st, &fakeEmitter{}, config.DefaultPipelineConfig())

	w := worker{name: "test", state: models.StateUploaded, handle: func(_ context.Context, _ *models.Meeting) error {
		panic("boom")
	}}

	require.NotPanics(t, func() { runner.drain(context.Background(), w) })
	assert.Equal(t, models.StateFailed, st.get(t, "m-1").State)
}

func TestRunnerStartStop(t *testing.T) {
	cfg := config.DefaultPipelineConfig()
	cfg.PollInterval = 10 * time.Millisecond
	st := newFakeStore(uploadedMeeting("m-1"))
	runner := NewRunner(st, &fakeEmitter{}, cfg)

	handled := make(chan string, 1)
	runner.AddWorker("test", models.StateUploaded, func(ctx context.Context, m *models.Meeting) error {
		select {
		case handled <- m.ID:
		default:
		}
		return st.SetState(ctx, m.ID, models.StateTranscribed, "")
	})

	runner.Start()
	select {
	case id := <-handled:
		assert.Equal(t, "m-1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the meeting")
	}
	runner.Stop()
}
