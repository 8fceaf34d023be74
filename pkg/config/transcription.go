package config

import "time"

// DeploymentMode selects how speech-to-text jobs are executed.
type DeploymentMode string

// Supported deployment modes.
const (
	ModeKubernetesJob   DeploymentMode = "kubernetes_job"
	ModeRestRemote      DeploymentMode = "rest_remote"
	ModeLocalSubprocess DeploymentMode = "local_subprocess"
)

// TranscriptionConfig contains every tunable of the transcription backend.
// All three modes share the options payload built from these values.
type TranscriptionConfig struct {
	// DeploymentMode selects the execution backend.
	DeploymentMode DeploymentMode `yaml:"deployment_mode"`

	// Model is the speech-to-text model used for full transcriptions.
	Model string `yaml:"model"`

	// Language forces a decoding language; empty means auto-detect.
	Language string `yaml:"language"`

	BeamSize                int     `yaml:"beam_size"`
	VADFilter               bool    `yaml:"vad_filter"`
	WordTimestamps          bool    `yaml:"word_timestamps"`
	ConditionOnPreviousText bool    `yaml:"condition_on_previous_text"`
	NoSpeechThreshold       float64 `yaml:"no_speech_threshold"`

	// TimeoutMultiplier scales the audio duration into a wall-clock budget.
	TimeoutMultiplier float64 `yaml:"timeout_multiplier"`

	// MinTimeout is the floor of the dynamic timeout.
	MinTimeout time.Duration `yaml:"min_timeout"`

	// JobPollInterval is the status/progress polling cadence for batch jobs.
	JobPollInterval time.Duration `yaml:"job_poll_interval"`

	// RetranscribeModel and RetranscribeBeamSize override the defaults when
	// re-transcribing ambiguous ranges with high accuracy.
	RetranscribeModel             string  `yaml:"retranscribe_model"`
	RetranscribeBeamSize          int     `yaml:"retranscribe_beam_size"`
	RetranscribeNoSpeechThreshold float64 `yaml:"retranscribe_no_speech_threshold"`

	// PaddingSeconds widens each extraction range on both sides.
	PaddingSeconds float64 `yaml:"padding_seconds"`

	// WorkspacePath is the process-wide audio mount point.
	WorkspacePath string `yaml:"workspace_path"`

	// Kubernetes mode settings.
	Namespace string `yaml:"namespace"`
	JobImage  string `yaml:"job_image"`

	// RestRemoteURL is the base URL of the remote streaming backend.
	RestRemoteURL string `yaml:"rest_remote_url"`

	// LocalBinary is the subprocess transcriber executable.
	LocalBinary string `yaml:"local_binary"`
}

// DefaultTranscriptionConfig returns the built-in transcription defaults.
func DefaultTranscriptionConfig() *TranscriptionConfig {
	return &TranscriptionConfig{
		DeploymentMode:                ModeKubernetesJob,
		Model:                         "base",
		BeamSize:                      5,
		VADFilter:                     true,
		WordTimestamps:                false,
		ConditionOnPreviousText:       false,
		NoSpeechThreshold:             0.6,
		TimeoutMultiplier:             1.0,
		MinTimeout:                    10 * time.Minute,
		JobPollInterval:               10 * time.Second,
		RetranscribeModel:             "large-v3",
		RetranscribeBeamSize:          10,
		RetranscribeNoSpeechThreshold: 0.3,
		PaddingSeconds:                10,
		WorkspacePath:                 "/workspace",
		Namespace:                     "default",
		JobImage:                      "jervis-transcribe-whisper:latest",
		LocalBinary:                   "whisper-transcribe",
	}
}
