// Package models defines the plain domain types shared across the pipeline:
// the meeting document, its state machine, transcript segments, correction
// questions and extraction ranges. The Ent entity mirrors Meeting; the store
// converts between the two at its boundary.
package models

import "time"

// MeetingState is one of the lifecycle states of a meeting.
type MeetingState string

// Meeting lifecycle states.
//
//	UPLOADED → TRANSCRIBING → TRANSCRIBED → CORRECTING → {CORRECTED | CORRECTION_REVIEW} → INDEXED
//
// CORRECTION_REVIEW is re-enterable: user answers move the meeting back to
// TRANSCRIBED. FAILED is terminal.
const (
	StateUploaded         MeetingState = "UPLOADED"
	StateTranscribing     MeetingState = "TRANSCRIBING"
	StateTranscribed      MeetingState = "TRANSCRIBED"
	StateCorrecting       MeetingState = "CORRECTING"
	StateCorrected        MeetingState = "CORRECTED"
	StateCorrectionReview MeetingState = "CORRECTION_REVIEW"
	StateIndexed          MeetingState = "INDEXED"
	StateFailed           MeetingState = "FAILED"
)

// transitions is the state graph as data. Validation goes through
// CanTransition so comparisons are not scattered across workers.
var transitions = map[MeetingState][]MeetingState{
	StateUploaded:         {StateTranscribing, StateFailed},
	StateTranscribing:     {StateTranscribed, StateUploaded, StateFailed},
	StateTranscribed:      {StateCorrecting, StateFailed},
	StateCorrecting:       {StateCorrected, StateCorrectionReview, StateTranscribed, StateFailed},
	StateCorrectionReview: {StateTranscribed, StateCorrecting, StateFailed},
	StateCorrected:        {StateIndexed, StateFailed},
	StateIndexed:          {},
	StateFailed:           {},
}

// CanTransition reports whether from → to is an edge of the state graph.
func CanTransition(from, to MeetingState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a state has no outgoing edges.
func (s MeetingState) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsTransient reports whether a state is held by exactly one worker at a time
// (entered via compare-and-swap).
func (s MeetingState) IsTransient() bool {
	return s == StateTranscribing || s == StateCorrecting
}

// Segment is a time-bounded piece of transcript.
type Segment struct {
	StartSec float64 `json:"startSec"`
	EndSec   float64 `json:"endSec"`
	Text     string  `json:"text"`
	Speaker  string  `json:"speaker,omitempty"`
}

// CorrectionQuestion is an agent-raised disambiguation item tied to a
// segment index of the meeting's transcript.
type CorrectionQuestion struct {
	QuestionID        string   `json:"questionId"`
	SegmentIndex      int      `json:"segmentIndex"`
	OriginalText      string   `json:"originalText"`
	CorrectionOptions []string `json:"correctionOptions,omitempty"`
	Question          string   `json:"question"`
	Context           string   `json:"context,omitempty"`
}

// CorrectionAnswer is a user answer to a correction question. A blank
// Corrected means "I don't know" and triggers targeted re-transcription.
type CorrectionAnswer struct {
	QuestionID string `json:"questionId"`
	Original   string `json:"original"`
	Corrected  string `json:"corrected"`
	Category   string `json:"category,omitempty"`
}

// IsKnown reports whether the user supplied a correction.
func (a CorrectionAnswer) IsKnown() bool {
	return a.Corrected != ""
}

// ExtractionRange is a time window of audio to re-transcribe, plus the index
// of the segment whose text it replaces.
type ExtractionRange struct {
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	SegmentIndex int     `json:"segmentIndex"`
}

// Meeting is the central document of the pipeline.
type Meeting struct {
	ID        string
	ClientID  string
	ProjectID string

	Title           string
	StartedAt       *time.Time
	StoppedAt       *time.Time
	DurationSeconds float64
	MeetingType     string
	AudioInputType  string
	AudioFilePath   string

	State          MeetingState
	StateChangedAt time.Time
	ErrorMessage   string

	TranscriptText     string
	TranscriptSegments []Segment

	CorrectedTranscriptText     string
	CorrectedTranscriptSegments []Segment

	CorrectionQuestions []CorrectionQuestion

	Language  string
	CreatedAt time.Time
}

// HasTranscript reports whether the raw transcription produced anything.
func (m *Meeting) HasTranscript() bool {
	return len(m.TranscriptSegments) > 0 || m.TranscriptText != ""
}

// BestSegments returns corrected segments when present, raw otherwise.
func (m *Meeting) BestSegments() []Segment {
	if len(m.CorrectedTranscriptSegments) > 0 {
		return m.CorrectedTranscriptSegments
	}
	return m.TranscriptSegments
}
