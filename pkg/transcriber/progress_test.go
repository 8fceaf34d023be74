package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// countingEmitter counts progress emissions.
type countingEmitter struct {
	progress int
	last     Progress
}

func (e *countingEmitter) EmitStateChanged(_ context.Context, _, _ string, _ models.MeetingState, _, _ string) {
}

func (e *countingEmitter) EmitTranscriptionProgress(_ context.Context, _, _ string, percent float64, segmentsDone int, elapsedSeconds float64, lastSegmentText string) {
	e.progress++
	e.last = Progress{
		Percent:         percent,
		SegmentsDone:    segmentsDone,
		ElapsedSeconds:  elapsedSeconds,
		LastSegmentText: lastSegmentText,
	}
}

func TestNotifierEmitsAndTouchesDuringCorrection(t *testing.T) {
	emitter := &countingEmitter{}
	beats := heartbeat.NewTracker()
	notifier := NewNotifier(emitter, beats, func(_ context.Context, _ string) bool { return true })

	notifier.Notify(context.Background(), "m-1", "client-1", Progress{Percent: 42, SegmentsDone: 3, ElapsedSeconds: 7})

	assert.Equal(t, 1, emitter.progress)
	assert.Equal(t, 42.0, emitter.last.Percent)
	assert.True(t, beats.FresherThan("m-1", time.Minute))
}

func TestNotifierSkipsHeartbeatOutsideCorrection(t *testing.T) {
	beats := heartbeat.NewTracker()
	notifier := NewNotifier(&countingEmitter{}, beats, func(_ context.Context, _ string) bool { return false })

	notifier.Notify(context.Background(), "m-1", "client-1", Progress{Percent: 10})

	_, touched := beats.Last("m-1")
	assert.False(t, touched)
}

func TestNilNotifierIsNoop(t *testing.T) {
	var notifier *Notifier
	notifier.Notify(context.Background(), "m-1", "client-1", Progress{Percent: 10})
}

func TestReadProgressFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.wav_progress.json")

	_, ok := readProgressFile(path)
	assert.False(t, ok, "missing file is a skip")

	require.NoError(t, os.WriteFile(path, []byte(`{"percent":55.5,"segmentsDone":12,"elapsedSeconds":30,"updatedAt":1700000000}`), 0o600))
	p, ok := readProgressFile(path)
	require.True(t, ok)
	assert.Equal(t, 55.5, p.Percent)
	assert.Equal(t, 12, p.SegmentsDone)

	require.NoError(t, os.WriteFile(path, []byte(`{"percent":`), 0o600))
	_, ok = readProgressFile(path)
	assert.False(t, ok, "partially written file is a skip")
}
