// Package pipeline moves meetings through their lifecycle: three cooperative
// pollers (transcribe, correct, index), the stuck detector and the startup
// re-attach controller.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
)

// HandleFunc processes one meeting found in a worker's source state. A
// returned error fails the meeting; it never stops the worker.
type HandleFunc func(ctx context.Context, m *models.Meeting) error

// worker is one continuous-poll-then-drain loop bound to a source state.
type worker struct {
	name   string
	state  models.MeetingState
	handle HandleFunc
}

// Runner owns the pipeline workers. Each worker drains its source state,
// then either loops immediately (work was found) or sleeps one poll
// interval. A panic or error on one meeting never takes down the others.
type Runner struct {
	store   store.MeetingStore
	emitter events.Emitter
	cfg     *config.PipelineConfig

	workers []worker

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewRunner creates an empty pipeline runner; register workers with
// AddWorker before Start.
func NewRunner(st store.MeetingStore, emitter events.Emitter, cfg *config.PipelineConfig) *Runner {
	return &Runner{store: st, emitter: emitter, cfg: cfg}
}

// AddWorker registers a poller for meetings in the given state.
func (r *Runner) AddWorker(name string, state models.MeetingState, handle HandleFunc) {
	r.workers = append(r.workers, worker{name: name, state: state, handle: handle})
}

// Start launches every registered worker.
func (r *Runner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	for _, w := range r.workers {
		r.wg.Add(1)
		go r.runWorker(ctx, w)
	}
	slog.Info("Pipeline runner started", "workers", len(r.workers))
}

// Stop cancels the workers and waits for in-flight handling to finish.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
		r.wg.Wait()
		slog.Info("Pipeline runner stopped")
	})
}

// runWorker is the continuous-poll-then-drain loop.
func (r *Runner) runWorker(ctx context.Context, w worker) {
	defer r.wg.Done()
	slog.Info("Pipeline worker started", "worker", w.name, "state", w.state)

	for {
		if ctx.Err() != nil {
			return
		}

		handledAny := r.drain(ctx, w)

		if handledAny {
			// Catch meetings that arrived while processing.
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.cfg.PollInterval):
		}
	}
}

// drain processes every meeting currently in the worker's source state.
func (r *Runner) drain(ctx context.Context, w worker) bool {
	meetings, err := r.store.ListByState(ctx, w.state)
	if err != nil {
		slog.Error("Failed to poll meetings", "worker", w.name, "state", w.state, "error", err)
		return false
	}

	handledAny := false
	for _, m := range meetings {
		if ctx.Err() != nil {
			return handledAny
		}
		handledAny = true
		r.handleOne(ctx, w, m)
	}
	return handledAny
}

// handleOne runs the handler for a single meeting, converting any error or
// panic into a FAILED state so one bad meeting never stalls the pipeline.
func (r *Runner) handleOne(ctx context.Context, w worker, m *models.Meeting) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Pipeline worker panicked on meeting",
				"worker", w.name, "meeting_id", m.ID, "panic", rec)
			r.fail(ctx, m, "internal pipeline error")
		}
	}()

	if err := w.handle(ctx, m); err != nil {
		slog.Error("Pipeline handler failed",
			"worker", w.name, "meeting_id", m.ID, "error", err)
		r.fail(ctx, m, err.Error())
	}
}

func (r *Runner) fail(ctx context.Context, m *models.Meeting, message string) {
	if err := r.store.SetState(ctx, m.ID, models.StateFailed, message); err != nil {
		slog.Error("Failed to persist FAILED state", "meeting_id", m.ID, "error", err)
		return
	}
	r.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateFailed, m.Title, message)
}
