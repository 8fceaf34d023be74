package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// stuckMessage is the error message persisted when a correction is reverted
// by the detector.
const stuckMessage = "Stuck in CORRECTING"

// StuckDetector periodically reverts meetings whose transient state has
// neither progress heartbeats nor a live external job behind it.
//
// Heartbeats are process-local, so for one stuckThreshold after startup the
// detector does not sweep at all: a recently-alive CORRECTING meeting would
// otherwise look heartbeat-less and be reverted spuriously.
type StuckDetector struct {
	store   store.MeetingStore
	beats   *heartbeat.Tracker
	backend transcriber.Backend
	emitter events.Emitter
	cfg     *config.PipelineConfig
	tcfg    *config.TranscriptionConfig

	startedAt time.Time
	cancel    context.CancelFunc
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewStuckDetector wires the detector.
func NewStuckDetector(st store.MeetingStore, beats *heartbeat.Tracker, backend transcriber.Backend, emitter events.Emitter, cfg *config.PipelineConfig, tcfg *config.TranscriptionConfig) *StuckDetector {
	return &StuckDetector{store: st, beats: beats, backend: backend, emitter: emitter, cfg: cfg, tcfg: tcfg}
}

// Start launches the periodic sweep.
func (d *StuckDetector) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.startedAt = time.Now()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(d.cfg.StuckSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if time.Since(d.startedAt) < d.cfg.StuckThreshold {
					continue
				}
				d.Sweep(ctx)
			}
		}
	}()
	slog.Info("Stuck detector started",
		"sweep_interval", d.cfg.StuckSweepInterval, "grace", d.cfg.StuckThreshold)
}

// Stop cancels the sweep loop.
func (d *StuckDetector) Stop() {
	d.stopOnce.Do(func() {
		if d.cancel != nil {
			d.cancel()
		}
		d.wg.Wait()
	})
}

// Sweep runs one detection pass over both transient states.
func (d *StuckDetector) Sweep(ctx context.Context) {
	d.sweepCorrecting(ctx)
	d.sweepTranscribing(ctx)
}

// sweepCorrecting reverts CORRECTING meetings that exceeded the stuck
// threshold without a fresh heartbeat.
func (d *StuckDetector) sweepCorrecting(ctx context.Context) {
	meetings, err := d.store.ListByState(ctx, models.StateCorrecting)
	if err != nil {
		slog.Error("Stuck sweep failed to list CORRECTING meetings", "error", err)
		return
	}

	for _, m := range meetings {
		if time.Since(m.StateChangedAt) < d.cfg.StuckThreshold {
			continue
		}
		if d.beats.FresherThan(m.ID, d.cfg.HeartbeatThreshold) {
			continue
		}

		slog.Warn("Reverting stuck correction",
			"meeting_id", m.ID, "state_changed_at", m.StateChangedAt)
		if err := d.store.SetState(ctx, m.ID, models.StateTranscribed, stuckMessage); err != nil {
			slog.Error("Failed to revert stuck meeting", "meeting_id", m.ID, "error", err)
			continue
		}
		d.beats.Clear(m.ID)
		d.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateTranscribed, m.Title, stuckMessage)
	}
}

// sweepTranscribing reverts TRANSCRIBING meetings past their timeout budget
// that have no active external job behind them.
func (d *StuckDetector) sweepTranscribing(ctx context.Context) {
	meetings, err := d.store.ListByState(ctx, models.StateTranscribing)
	if err != nil {
		slog.Error("Stuck sweep failed to list TRANSCRIBING meetings", "error", err)
		return
	}

	for _, m := range meetings {
		if time.Since(m.StateChangedAt) < d.transcribeBudget(m) {
			continue
		}

		jobName, err := d.backend.FindActiveJobForMeeting(ctx, m.ID)
		if err != nil {
			slog.Warn("Stuck sweep could not query jobs", "meeting_id", m.ID, "error", err)
			continue
		}
		if jobName != "" {
			continue
		}

		slog.Warn("Reverting timed-out transcription with no active job", "meeting_id", m.ID)
		if err := d.store.SetState(ctx, m.ID, models.StateUploaded, ""); err != nil {
			slog.Error("Failed to revert stuck meeting", "meeting_id", m.ID, "error", err)
			continue
		}
		d.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateUploaded, m.Title, "")
	}
}

// transcribeBudget mirrors the backend's dynamic timeout using the persisted
// audio duration.
func (d *StuckDetector) transcribeBudget(m *models.Meeting) time.Duration {
	budget := time.Duration(m.DurationSeconds * d.tcfg.TimeoutMultiplier * float64(time.Second))
	if budget < d.tcfg.MinTimeout {
		return d.tcfg.MinTimeout
	}
	return budget
}
