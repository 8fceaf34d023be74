package heartbeat

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerTouchLastClear(t *testing.T) {
	tr := NewTracker()

	_, ok := tr.Last("m1")
	assert.False(t, ok)

	tr.Touch("m1")
	ts, ok := tr.Last("m1")
	require.True(t, ok)
	assert.WithinDuration(t, time.Now(), ts, time.Second)

	tr.Clear("m1")
	_, ok = tr.Last("m1")
	assert.False(t, ok)
}

func TestTrackerFresherThan(t *testing.T) {
	tr := NewTracker()
	base := time.Now()
	tr.now = func() time.Time { return base }

	tr.Touch("m1")

	// 1 minute later: fresh within 2m, stale within 30s.
	tr.now = func() time.Time { return base.Add(time.Minute) }
	assert.True(t, tr.FresherThan("m1", 2*time.Minute))
	assert.False(t, tr.FresherThan("m1", 30*time.Second))

	// No entry at all is never fresh.
	assert.False(t, tr.FresherThan("unknown", time.Hour))
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Touch("m1")
			tr.FresherThan("m1", time.Minute)
			tr.Clear("m1")
		}()
	}
	wg.Wait()
}
