package config

import "time"

// PipelineConfig controls the three pipeline pollers and the stuck detector.
type PipelineConfig struct {
	// PollInterval is how long an idle poller sleeps after draining nothing.
	PollInterval time.Duration `yaml:"poll_interval"`

	// StuckSweepInterval is the cadence of the stuck-detector scan.
	StuckSweepInterval time.Duration `yaml:"stuck_sweep_interval"`

	// StuckThreshold is how old state_changed_at must be before a CORRECTING
	// meeting is a stuck candidate.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// HeartbeatThreshold is the maximum heartbeat age that still counts as
	// live progress.
	HeartbeatThreshold time.Duration `yaml:"heartbeat_threshold"`

	// GracefulShutdownTimeout bounds the wait for in-flight meetings on stop.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		PollInterval:            30 * time.Second,
		StuckSweepInterval:      time.Minute,
		StuckThreshold:          10 * time.Minute,
		HeartbeatThreshold:      2 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
	}
}
