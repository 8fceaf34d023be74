package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from MeetingState
		to   MeetingState
		want bool
	}{
		{"upload to transcribing", StateUploaded, StateTranscribing, true},
		{"transcribing to transcribed", StateTranscribing, StateTranscribed, true},
		{"transcribing reverts to uploaded", StateTranscribing, StateUploaded, true},
		{"transcribed to correcting", StateTranscribed, StateCorrecting, true},
		{"correcting to corrected", StateCorrecting, StateCorrected, true},
		{"correcting to review", StateCorrecting, StateCorrectionReview, true},
		{"correcting reverts to transcribed", StateCorrecting, StateTranscribed, true},
		{"review back to transcribed", StateCorrectionReview, StateTranscribed, true},
		{"review to correcting", StateCorrectionReview, StateCorrecting, true},
		{"corrected to indexed", StateCorrected, StateIndexed, true},
		{"any to failed", StateCorrecting, StateFailed, true},

		{"no skip upload to transcribed", StateUploaded, StateTranscribed, false},
		{"no skip transcribed to indexed", StateTranscribed, StateIndexed, false},
		{"indexed is terminal", StateIndexed, StateCorrecting, false},
		{"failed is terminal", StateFailed, StateUploaded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatePredicates(t *testing.T) {
	assert.True(t, StateIndexed.IsTerminal())
	assert.True(t, StateFailed.IsTerminal())
	assert.False(t, StateCorrecting.IsTerminal())

	assert.True(t, StateTranscribing.IsTransient())
	assert.True(t, StateCorrecting.IsTransient())
	assert.False(t, StateCorrectionReview.IsTransient())
}

func TestMeetingBestSegments(t *testing.T) {
	m := &Meeting{
		TranscriptSegments: []Segment{{Text: "raw"}},
	}
	assert.Equal(t, "raw", m.BestSegments()[0].Text)

	m.CorrectedTranscriptSegments = []Segment{{Text: "fixed"}}
	assert.Equal(t, "fixed", m.BestSegments()[0].Text)
}

func TestCorrectionAnswerIsKnown(t *testing.T) {
	assert.True(t, CorrectionAnswer{Corrected: "meeting notes"}.IsKnown())
	assert.False(t, CorrectionAnswer{Corrected: ""}.IsKnown())
}
