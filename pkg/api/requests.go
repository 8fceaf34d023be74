package api

import "time"

// CreateMeetingRequest is the body of POST /api/v1/meetings. The audio file
// must already be present on the workspace mount.
type CreateMeetingRequest struct {
	ClientID        string     `json:"clientId" binding:"required"`
	ProjectID       string     `json:"projectId"`
	Title           string     `json:"title" binding:"required"`
	StartedAt       *time.Time `json:"startedAt"`
	StoppedAt       *time.Time `json:"stoppedAt"`
	DurationSeconds float64    `json:"durationSeconds"`
	MeetingType     string     `json:"meetingType"`
	AudioInputType  string     `json:"audioInputType"`
	AudioFilePath   string     `json:"audioFilePath" binding:"required"`
}

// AnswerItem is one answer in an AnswerQuestionsRequest. An empty corrected
// value means "I don't know" and triggers re-transcription of the segment.
type AnswerItem struct {
	QuestionID string `json:"questionId" binding:"required"`
	Original   string `json:"original"`
	Corrected  string `json:"corrected"`
	Category   string `json:"category"`
}

// AnswerQuestionsRequest is the body of POST /api/v1/meetings/:id/answers.
type AnswerQuestionsRequest struct {
	Answers []AnswerItem `json:"answers" binding:"required"`
}

// RetranscribeRequest is the body of POST /api/v1/meetings/:id/retranscribe.
type RetranscribeRequest struct {
	SegmentIndices []int `json:"segmentIndices" binding:"required"`
}
