package events

import "github.com/JanDamek/jervis-transcribe/pkg/models"

// MeetingStateChangedPayload is published on every state transition.
type MeetingStateChangedPayload struct {
	Type         string              `json:"type"` // always EventTypeMeetingStateChanged
	MeetingID    string              `json:"meetingId"`
	ClientID     string              `json:"clientId"`
	State        models.MeetingState `json:"state"`
	Title        string              `json:"title,omitempty"`
	ErrorMessage string              `json:"errorMessage,omitempty"`
	Timestamp    string              `json:"timestamp"` // RFC3339Nano
}

// TranscriptionProgressPayload is published on every progress tick while a
// transcription job is running. Transient, never persisted.
type TranscriptionProgressPayload struct {
	Type            string  `json:"type"` // always EventTypeMeetingTranscriptionProgress
	MeetingID       string  `json:"meetingId"`
	ClientID        string  `json:"clientId"`
	Percent         float64 `json:"percent"`
	SegmentsDone    int     `json:"segmentsDone"`
	ElapsedSeconds  float64 `json:"elapsedSeconds"`
	LastSegmentText string  `json:"lastSegmentText,omitempty"`
	Timestamp       string  `json:"timestamp"` // RFC3339Nano
}
