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
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

func orphanMeeting(id string, state models.MeetingState) *models.Meeting {
	return &models.Meeting{
		ID:             id,
		ClientID:       "client-1",
		Title:          "Weekly sync",
		State:          state,
		StateChangedAt: time.Now().Add(-time.Hour),
		AudioFilePath:  "/workspace/" + id + ".wav",
	}
}

func newReattacher(st *fakeStore, backend *fakeBackend, emitter *fakeEmitter) *Reattacher {
	transcribe := NewTranscribeHandler(st, backend, emitter, config.DefaultTranscriptionConfig())
	return NewReattacher(st, backend, emitter, transcribe)
}

func TestOrphanedTranscribingWithoutJobReverted(t *testing.T) {
	st := newFakeStore(orphanMeeting("m-1", models.StateTranscribing))
	r := newReattacher(st, &fakeBackend{}, &fakeEmitter{})

	require.NoError(t, r.Run(context.Background()))
	r.Wait()

	saved := st.get(t, "m-1")
	assert.Equal(t, models.StateUploaded, saved.State)
	assert.Empty(t, saved.ErrorMessage)
}

func TestOrphanedCorrectingWithoutJobReverted(t *testing.T) {
	st := newFakeStore(orphanMeeting("m-1", models.StateCorrecting))
	r := newReattacher(st, &fakeBackend{}, &fakeEmitter{})

	require.NoError(t, r.Run(context.Background()))
	r.Wait()

	assert.Equal(t, models.StateTranscribed, st.get(t, "m-1").State)
}

func TestReattachAwaitsSurvivingJob(t *testing.T) {
	st := newFakeStore(orphanMeeting("m-7", models.StateTranscribing))
	backend := &fakeBackend{
		activeJob: func(meetingID string) (string, error) {
			assert.Equal(t, "m-7", meetingID)
			return "job-abc", nil
		},
		waitForJob: func(jobName string) (*transcriber.Result, error) {
			assert.Equal(t, "job-abc", jobName)
			return &transcriber.Result{
				Text:     "hello world goodbye",
				Segments: []transcriber.ResultSegment{{Start: 0, End: 10, Text: "hello world goodbye"}},
				Language: "en",
			}, nil
		},
	}
	r := newReattacher(st, backend, &fakeEmitter{})

	require.NoError(t, r.Run(context.Background()))
	r.Wait()

	saved := st.get(t, "m-7")
	assert.Equal(t, models.StateTranscribed, saved.State)
	assert.Equal(t, "hello world goodbye", saved.TranscriptText)
	require.Len(t, saved.TranscriptSegments, 1)
	assert.Equal(t, "en", saved.Language)
}

func TestReattachedJobFailureFailsMeeting(t *testing.T) {
	st := newFakeStore(orphanMeeting("m-7", models.StateTranscribing))
	backend := &fakeBackend{
		activeJob:  func(string) (string, error) { return "job-abc", nil },
		waitForJob: func(string) (*transcriber.Result, error) { return nil, errors.New("job failed") },
	}
	r := newReattacher(st, backend, &fakeEmitter{})

	require.NoError(t, r.Run(context.Background()))
	r.Wait()

	saved := st.get(t, "m-7")
	assert.Equal(t, models.StateFailed, saved.State)
	assert.Contains(t, saved.ErrorMessage, "Transcription error:")
}

func TestReattachedCorrectionJobHandsBackToReview(t *testing.T) {
	st := newFakeStore(orphanMeeting("m-1", models.StateCorrecting))
	backend := &fakeBackend{
		activeJob:  func(string) (string, error) { return "job-retx", nil },
		waitForJob: func(string) (*transcriber.Result, error) { return &transcriber.Result{}, nil },
	}
	r := newReattacher(st, backend, &fakeEmitter{})

	require.NoError(t, r.Run(context.Background()))
	r.Wait()

	assert.Equal(t, models.StateCorrectionReview, st.get(t, "m-1").State)
}
