// Package config provides the typed configuration records of the service.
// Every tunable lives in an explicit record; nothing is read from ambient
// settings at call sites.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the root configuration of the service.
type Config struct {
	Transcription *TranscriptionConfig
	Pipeline      *PipelineConfig

	// CorrectionAgentURL is the base URL of the external correction agent.
	CorrectionAgentURL string

	// CorrectionTimeout bounds each correction-agent HTTP call.
	CorrectionTimeout time.Duration
}

// Load builds the configuration from defaults overlaid with environment
// variables. The .env file (if any) is loaded by main before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Transcription:      DefaultTranscriptionConfig(),
		Pipeline:           DefaultPipelineConfig(),
		CorrectionAgentURL: getEnvOrDefault("CORRECTION_AGENT_URL", "http://localhost:8090"),
		CorrectionTimeout:  getDurationEnv("CORRECTION_TIMEOUT", 2*time.Minute),
	}

	t := cfg.Transcription
	if mode := os.Getenv("TRANSCRIBE_MODE"); mode != "" {
		t.DeploymentMode = DeploymentMode(mode)
	}
	t.Model = getEnvOrDefault("TRANSCRIBE_MODEL", t.Model)
	t.Language = getEnvOrDefault("TRANSCRIBE_LANGUAGE", t.Language)
	t.BeamSize = getIntEnv("TRANSCRIBE_BEAM_SIZE", t.BeamSize)
	t.NoSpeechThreshold = getFloatEnv("TRANSCRIBE_NO_SPEECH_THRESHOLD", t.NoSpeechThreshold)
	t.TimeoutMultiplier = getFloatEnv("TRANSCRIBE_TIMEOUT_MULTIPLIER", t.TimeoutMultiplier)
	t.MinTimeout = getDurationEnv("TRANSCRIBE_MIN_TIMEOUT", t.MinTimeout)
	t.JobPollInterval = getDurationEnv("TRANSCRIBE_JOB_POLL_INTERVAL", t.JobPollInterval)
	t.WorkspacePath = getEnvOrDefault("WORKSPACE_PATH", t.WorkspacePath)
	t.Namespace = getEnvOrDefault("TRANSCRIBE_NAMESPACE", t.Namespace)
	t.JobImage = getEnvOrDefault("TRANSCRIBE_JOB_IMAGE", t.JobImage)
	t.RestRemoteURL = getEnvOrDefault("TRANSCRIBE_REMOTE_URL", t.RestRemoteURL)
	t.LocalBinary = getEnvOrDefault("TRANSCRIBE_LOCAL_BINARY", t.LocalBinary)

	p := cfg.Pipeline
	p.PollInterval = getDurationEnv("PIPELINE_POLL_INTERVAL", p.PollInterval)
	p.StuckSweepInterval = getDurationEnv("STUCK_SWEEP_INTERVAL", p.StuckSweepInterval)
	p.StuckThreshold = getDurationEnv("STUCK_THRESHOLD", p.StuckThreshold)
	p.HeartbeatThreshold = getDurationEnv("HEARTBEAT_THRESHOLD", p.HeartbeatThreshold)
	p.GracefulShutdownTimeout = getDurationEnv("GRACEFUL_SHUTDOWN_TIMEOUT", p.GracefulShutdownTimeout)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would misbehave at
// runtime. Messages name the offending field explicitly.
func (c *Config) Validate() error {
	t := c.Transcription
	if t == nil {
		return fmt.Errorf("transcription configuration is nil")
	}
	switch t.DeploymentMode {
	case ModeKubernetesJob, ModeRestRemote, ModeLocalSubprocess:
	default:
		return fmt.Errorf("deployment_mode must be one of kubernetes_job, rest_remote, local_subprocess, got %q", t.DeploymentMode)
	}
	if t.DeploymentMode == ModeRestRemote && t.RestRemoteURL == "" {
		return fmt.Errorf("rest_remote_url is required in rest_remote mode")
	}
	if t.TimeoutMultiplier <= 0 {
		return fmt.Errorf("timeout_multiplier must be positive")
	}
	if t.MinTimeout <= 0 {
		return fmt.Errorf("min_timeout must be positive")
	}
	if t.JobPollInterval <= 0 {
		return fmt.Errorf("job_poll_interval must be positive")
	}
	if t.BeamSize < 1 {
		return fmt.Errorf("beam_size must be at least 1")
	}
	if t.PaddingSeconds < 0 {
		return fmt.Errorf("padding_seconds must be non-negative")
	}

	p := c.Pipeline
	if p == nil {
		return fmt.Errorf("pipeline configuration is nil")
	}
	if p.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if p.StuckSweepInterval <= 0 {
		return fmt.Errorf("stuck_sweep_interval must be positive")
	}
	if p.StuckThreshold <= 0 {
		return fmt.Errorf("stuck_threshold must be positive")
	}
	if p.HeartbeatThreshold <= 0 {
		return fmt.Errorf("heartbeat_threshold must be positive")
	}
	if p.HeartbeatThreshold >= p.StuckThreshold {
		return fmt.Errorf("heartbeat_threshold must be less than stuck_threshold")
	}

	if c.CorrectionAgentURL == "" {
		return fmt.Errorf("correction agent URL is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
