package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTranscriptionConfig(t *testing.T) {
	cfg := DefaultTranscriptionConfig()

	assert.Equal(t, ModeKubernetesJob, cfg.DeploymentMode)
	assert.Equal(t, "base", cfg.Model)
	assert.Equal(t, 1.0, cfg.TimeoutMultiplier)
	assert.Equal(t, 10*time.Minute, cfg.MinTimeout)
	assert.Equal(t, 10*time.Second, cfg.JobPollInterval)
	assert.Equal(t, "large-v3", cfg.RetranscribeModel)
	assert.Equal(t, 10, cfg.RetranscribeBeamSize)
	assert.Equal(t, 0.3, cfg.RetranscribeNoSpeechThreshold)
	assert.Equal(t, 10.0, cfg.PaddingSeconds)
}

func TestDefaultPipelineConfig(t *testing.T) {
	cfg := DefaultPipelineConfig()

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Minute, cfg.StuckSweepInterval)
	assert.Equal(t, 10*time.Minute, cfg.StuckThreshold)
	assert.Equal(t, 2*time.Minute, cfg.HeartbeatThreshold)
}

func validConfig() *Config {
	return &Config{
		Transcription:      DefaultTranscriptionConfig(),
		Pipeline:           DefaultPipelineConfig(),
		CorrectionAgentURL: "http://localhost:8090",
		CorrectionTimeout:  time.Minute,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name: "unknown deployment mode",
			mutate: func(c *Config) {
				c.Transcription.DeploymentMode = "docker"
			},
			wantErr: "deployment_mode must be one of",
		},
		{
			name: "rest mode requires url",
			mutate: func(c *Config) {
				c.Transcription.DeploymentMode = ModeRestRemote
				c.Transcription.RestRemoteURL = ""
			},
			wantErr: "rest_remote_url is required",
		},
		{
			name: "zero timeout multiplier",
			mutate: func(c *Config) {
				c.Transcription.TimeoutMultiplier = 0
			},
			wantErr: "timeout_multiplier must be positive",
		},
		{
			name: "zero min timeout",
			mutate: func(c *Config) {
				c.Transcription.MinTimeout = 0
			},
			wantErr: "min_timeout must be positive",
		},
		{
			name: "negative padding",
			mutate: func(c *Config) {
				c.Transcription.PaddingSeconds = -1
			},
			wantErr: "padding_seconds must be non-negative",
		},
		{
			name: "heartbeat threshold above stuck threshold",
			mutate: func(c *Config) {
				c.Pipeline.HeartbeatThreshold = c.Pipeline.StuckThreshold
			},
			wantErr: "heartbeat_threshold must be less than stuck_threshold",
		},
		{
			name: "missing agent url",
			mutate: func(c *Config) {
				c.CorrectionAgentURL = ""
			},
			wantErr: "correction agent URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("TRANSCRIBE_MODE", "local_subprocess")
	t.Setenv("TRANSCRIBE_MODEL", "small")
	t.Setenv("TRANSCRIBE_MIN_TIMEOUT", "5m")
	t.Setenv("HEARTBEAT_THRESHOLD", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ModeLocalSubprocess, cfg.Transcription.DeploymentMode)
	assert.Equal(t, "small", cfg.Transcription.Model)
	assert.Equal(t, 5*time.Minute, cfg.Transcription.MinTimeout)
	assert.Equal(t, 90*time.Second, cfg.Pipeline.HeartbeatThreshold)
}
