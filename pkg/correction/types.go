// Package correction talks to the external LLM correction agent and
// orchestrates the correction loop: full-transcript correction, user answer
// handling, and targeted re-transcription of ambiguous segments.
package correction

// WireSegment is one transcript segment as the agent sees it. The index i
// refers into the request's segment list and is how questions and targeted
// corrections address segments.
type WireSegment struct {
	Index    int     `json:"i"`
	StartSec float64 `json:"startSec"`
	EndSec   float64 `json:"endSec"`
	Text     string  `json:"text"`
	Speaker  string  `json:"speaker,omitempty"`
}

// WireQuestion is a disambiguation item raised by the agent for segment i.
type WireQuestion struct {
	ID       string   `json:"id"`
	Index    int      `json:"i"`
	Original string   `json:"original"`
	Options  []string `json:"options"`
	Question string   `json:"question"`
	Context  string   `json:"context"`
}

// CorrectTranscriptRequest asks the agent to correct a full transcript.
type CorrectTranscriptRequest struct {
	ClientID  string        `json:"clientId"`
	ProjectID string        `json:"projectId,omitempty"`
	MeetingID string        `json:"meetingId"`
	Segments  []WireSegment `json:"segments"`
}

// CorrectTargetedRequest asks the agent to re-correct a transcript where
// some segments were re-transcribed or hand-corrected by the user.
// UserCorrectedIndices keys are stringified segment indices.
type CorrectTargetedRequest struct {
	ClientID             string            `json:"clientId"`
	ProjectID            string            `json:"projectId,omitempty"`
	MeetingID            string            `json:"meetingId"`
	Segments             []WireSegment     `json:"segments"`
	RetranscribedIndices []int             `json:"retranscribedIndices"`
	UserCorrectedIndices map[string]string `json:"userCorrectedIndices"`
}

// CorrectResponse carries corrected segments plus any follow-up questions.
// Both lists are ordered; a question's i refers into the request segments.
type CorrectResponse struct {
	Segments  []WireSegment  `json:"segments"`
	Questions []WireQuestion `json:"questions"`
}

// WireAnswer is one user answer persisted server-side as a correction rule.
type WireAnswer struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Category  string `json:"category"`
}

// AnswerQuestionsRequest stores user answers as persistent correction rules.
type AnswerQuestionsRequest struct {
	ClientID  string       `json:"clientId"`
	ProjectID string       `json:"projectId,omitempty"`
	Answers   []WireAnswer `json:"answers"`
}

// ListCorrectionsRequest fetches stored correction rules for a client, and
// project-scoped ones when ProjectID is set.
type ListCorrectionsRequest struct {
	ClientID   string `json:"clientId"`
	ProjectID  string `json:"projectId,omitempty"`
	MaxResults int    `json:"maxResults"`
}

// StoredCorrection is one known correction rule returned by the agent.
type StoredCorrection struct {
	Metadata CorrectionMetadata `json:"metadata"`
}

// CorrectionMetadata holds the original → corrected term pair.
type CorrectionMetadata struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Category  string `json:"category"`
}

// ListCorrectionsResponse wraps the stored rules.
type ListCorrectionsResponse struct {
	Corrections []StoredCorrection `json:"corrections"`
}
