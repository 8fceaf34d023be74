// Package heartbeat tracks the last observed progress timestamp per meeting.
// The map is process-local: contents are only valid while the process is up,
// which is why the stuck detector honors a startup grace period.
package heartbeat

import (
	"sync"
	"time"
)

// Tracker is a concurrency-safe map of meeting ID to last-progress instant.
type Tracker struct {
	mu    sync.RWMutex
	beats map[string]time.Time
	now   func() time.Time
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		beats: make(map[string]time.Time),
		now:   time.Now,
	}
}

// Touch records a progress heartbeat for the meeting.
func (t *Tracker) Touch(meetingID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.beats[meetingID] = t.now()
}

// Last returns the last heartbeat instant, if any.
func (t *Tracker) Last(meetingID string) (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ts, ok := t.beats[meetingID]
	return ts, ok
}

// Clear removes the meeting's heartbeat entry. Called on every transition
// out of CORRECTING.
func (t *Tracker) Clear(meetingID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.beats, meetingID)
}

// FresherThan reports whether the meeting has a heartbeat younger than the
// given threshold.
func (t *Tracker) FresherThan(meetingID string, threshold time.Duration) bool {
	ts, ok := t.Last(meetingID)
	if !ok {
		return false
	}
	return t.now().Sub(ts) < threshold
}
