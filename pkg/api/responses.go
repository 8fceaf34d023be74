package api

import (
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// MeetingResponse is the JSON projection of a meeting document.
type MeetingResponse struct {
	ID              string     `json:"id"`
	ClientID        string     `json:"clientId"`
	ProjectID       string     `json:"projectId,omitempty"`
	Title           string     `json:"title"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	StoppedAt       *time.Time `json:"stoppedAt,omitempty"`
	DurationSeconds float64    `json:"durationSeconds"`
	MeetingType     string     `json:"meetingType,omitempty"`
	AudioInputType  string     `json:"audioInputType,omitempty"`
	AudioFilePath   string     `json:"audioFilePath"`

	State          models.MeetingState `json:"state"`
	StateChangedAt time.Time           `json:"stateChangedAt"`
	ErrorMessage   string              `json:"errorMessage,omitempty"`

	TranscriptText     string           `json:"transcriptText,omitempty"`
	TranscriptSegments []models.Segment `json:"transcriptSegments,omitempty"`

	CorrectedTranscriptText     string           `json:"correctedTranscriptText,omitempty"`
	CorrectedTranscriptSegments []models.Segment `json:"correctedTranscriptSegments,omitempty"`

	CorrectionQuestions []models.CorrectionQuestion `json:"correctionQuestions,omitempty"`

	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// toMeetingResponse converts a domain meeting.
func toMeetingResponse(m *models.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:                          m.ID,
		ClientID:                    m.ClientID,
		ProjectID:                   m.ProjectID,
		Title:                       m.Title,
		StartedAt:                   m.StartedAt,
		StoppedAt:                   m.StoppedAt,
		DurationSeconds:             m.DurationSeconds,
		MeetingType:                 m.MeetingType,
		AudioInputType:              m.AudioInputType,
		AudioFilePath:               m.AudioFilePath,
		State:                       m.State,
		StateChangedAt:              m.StateChangedAt,
		ErrorMessage:                m.ErrorMessage,
		TranscriptText:              m.TranscriptText,
		TranscriptSegments:          m.TranscriptSegments,
		CorrectedTranscriptText:     m.CorrectedTranscriptText,
		CorrectedTranscriptSegments: m.CorrectedTranscriptSegments,
		CorrectionQuestions:         m.CorrectionQuestions,
		Language:                    m.Language,
		CreatedAt:                   m.CreatedAt,
	}
}

// toMeetingResponses converts a list.
func toMeetingResponses(meetings []*models.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		out[i] = toMeetingResponse(m)
	}
	return out
}
