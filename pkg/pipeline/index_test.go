package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{3661, "1:01:01"},
		{61, "01:01"},
		{0, "00:00"},
		{59.9, "00:59"},
		{3600, "1:00:00"},
		{7325, "2:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.seconds))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1h01m01s", FormatDuration(3661))
	assert.Equal(t, "1m01s", FormatDuration(61))
	assert.Equal(t, "0m05s", FormatDuration(5))
}

func indexedMeeting() *models.Meeting {
	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &models.Meeting{
		ID:              "m-1",
		ClientID:        "client-1",
		ProjectID:       "proj-1",
		Title:           "Weekly sync",
		StartedAt:       &started,
		DurationSeconds: 3661,
		MeetingType:     "standup",
		AudioInputType:  "microphone",
		AudioFilePath:   "/workspace/m-1.wav",
		State:           models.StateCorrected,
		TranscriptSegments: []models.Segment{
			{StartSec: 0, EndSec: 5, Text: "raw text", Speaker: "alice"},
		},
		CorrectedTranscriptSegments: []models.Segment{
			{StartSec: 0, EndSec: 5, Text: "hello world", Speaker: "alice"},
			{StartSec: 61, EndSec: 70, Text: "goodbye"},
		},
		Language: "en",
	}
}

func TestRenderIndexBlob(t *testing.T) {
	blob := RenderIndexBlob(indexedMeeting())

	assert.Contains(t, blob, "# Weekly sync\n")
	assert.Contains(t, blob, "**Date:** 2026-03-14 09:30\n")
	assert.Contains(t, blob, "**Duration:** 1h01m01s\n")
	assert.Contains(t, blob, "**Type:** standup\n")
	assert.Contains(t, blob, "**Audio Input:** microphone\n")
	assert.Contains(t, blob, "\n---\n")
	assert.Contains(t, blob, "## Transcript")
	// Corrected segments win over raw ones.
	assert.Contains(t, blob, "[00:00] **alice:** hello world\n")
	assert.Contains(t, blob, "[01:01] **speaker:** goodbye\n")
	assert.NotContains(t, blob, "raw text")
	assert.Contains(t, blob, "## Source Metadata")
	assert.Contains(t, blob, "- Meeting ID: m-1\n")
	assert.Contains(t, blob, "- Project ID: proj-1\n")
}

func TestRenderIndexBlobDeterministic(t *testing.T) {
	m := indexedMeeting()
	assert.Equal(t, RenderIndexBlob(m), RenderIndexBlob(m))
}

func TestRenderIndexBlobFallsBackToRawSegments(t *testing.T) {
	m := indexedMeeting()
	m.CorrectedTranscriptSegments = nil
	blob := RenderIndexBlob(m)
	assert.Contains(t, blob, "raw text")
}

func TestIndexHandlerEnqueuesAndTransitions(t *testing.T) {
	m := indexedMeeting()
	st := newFakeStore(m)
	queue := &fakeQueue{}
	emitter := &fakeEmitter{}
	handler := NewIndexHandler(st, queue, emitter)

	require.NoError(t, handler.Handle(context.Background(), m))

	require.Len(t, queue.tasks, 1)
	task := queue.tasks[0]
	assert.Equal(t, "m-1", task.MeetingID)
	assert.Equal(t, "meeting:m-1", task.CorrelationID)
	assert.Equal(t, "client-1", task.ClientID)
	assert.Contains(t, task.Content, "# Weekly sync")

	assert.Equal(t, models.StateIndexed, st.get(t, "m-1").State)
	assert.Equal(t, []models.MeetingState{models.StateIndexed}, emitter.emitted())
}
