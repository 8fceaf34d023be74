// Package events delivers meeting notifications via PostgreSQL NOTIFY.
// State changes are persisted to the events table and broadcast in one
// transaction; progress ticks are broadcast only (high frequency, ephemeral).
// Delivery is best-effort: subscribers that miss a NOTIFY can catch up from
// the events table, progress ticks are simply lost.
package events

// Event type names. These are the stable contract with subscribers.
const (
	EventTypeMeetingStateChanged          = "meeting.state_changed"
	EventTypeMeetingTranscriptionProgress = "meeting.transcription_progress"
)

// GlobalMeetingsChannel carries state-change events for every meeting.
// The meeting list view subscribes here.
const GlobalMeetingsChannel = "meetings"

// MeetingChannel returns the per-meeting channel name.
// Format: "meeting:{meeting_id}"
func MeetingChannel(meetingID string) string {
	return "meeting:" + meetingID
}
