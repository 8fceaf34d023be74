package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Payload JSON keys are a contract with subscribers; renaming a struct
// field must not change the wire format.
func TestStateChangedPayloadKeys(t *testing.T) {
	payload := MeetingStateChangedPayload{
		Type:         EventTypeMeetingStateChanged,
		MeetingID:    "m-1",
		ClientID:     "c-1",
		State:        models.StateCorrected,
		Title:        "Weekly sync",
		ErrorMessage: "",
		Timestamp:    "2026-01-02T03:04:05Z",
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, "meeting.state_changed", m["type"])
	assert.Equal(t, "m-1", m["meetingId"])
	assert.Equal(t, "c-1", m["clientId"])
	assert.Equal(t, "CORRECTED", m["state"])
	assert.Equal(t, "Weekly sync", m["title"])
	assert.NotContains(t, m, "errorMessage", "empty error must be omitted")
}

func TestProgressPayloadKeys(t *testing.T) {
	payload := TranscriptionProgressPayload{
		Type:           EventTypeMeetingTranscriptionProgress,
		MeetingID:      "m-1",
		ClientID:       "c-1",
		Percent:        42.5,
		SegmentsDone:   17,
		ElapsedSeconds: 93.2,
		Timestamp:      "2026-01-02T03:04:05Z",
	}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Equal(t, "meeting.transcription_progress", m["type"])
	assert.Equal(t, 42.5, m["percent"])
	assert.Equal(t, float64(17), m["segmentsDone"])
	assert.Equal(t, 93.2, m["elapsedSeconds"])
	assert.NotContains(t, m, "lastSegmentText")
}

func TestMeetingChannel(t *testing.T) {
	assert.Equal(t, "meeting:abc-123", MeetingChannel("abc-123"))
}
