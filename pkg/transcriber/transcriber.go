// Package transcriber runs speech-to-text in one of three execution modes:
// an in-cluster Kubernetes batch job, a remote streaming HTTP backend, or a
// local subprocess. All modes share one options payload and one progress
// contract; callers only ever see the Backend interface.
package transcriber

import (
	"context"
	"fmt"

	"k8s.io/client-go/kubernetes"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Request identifies the audio to transcribe and who it belongs to.
// MeetingID, ClientID and ProjectID may be empty for ad-hoc calls.
type Request struct {
	AudioPath     string
	WorkspacePath string
	MeetingID     string
	ClientID      string
	ProjectID     string
}

// ResultSegment is one transcribed segment as produced by the engine.
type ResultSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the transcription outcome shared by result files, subprocess
// stdout and the SSE final event. TextBySegment is only populated by
// re-transcription; its keys are stringified segment indices.
type Result struct {
	Text                string            `json:"text"`
	Segments            []ResultSegment   `json:"segments"`
	Language            string            `json:"language,omitempty"`
	LanguageProbability float64           `json:"languageProbability,omitempty"`
	Duration            float64           `json:"duration,omitempty"`
	TextBySegment       map[string]string `json:"textBySegment,omitempty"`
	Error               string            `json:"error,omitempty"`
}

// ModelSegments converts the engine segments into domain segments.
func (r *Result) ModelSegments() []models.Segment {
	segments := make([]models.Segment, len(r.Segments))
	for i, s := range r.Segments {
		segments[i] = models.Segment{StartSec: s.Start, EndSec: s.End, Text: s.Text}
	}
	return segments
}

// TermSource supplies known correction terms used to bias decoding via the
// initial prompt. Implementations must be failure-tolerant from the caller's
// point of view: the backend logs and proceeds without a prompt on error.
type TermSource interface {
	KnownTerms(ctx context.Context, clientID, projectID string) ([]string, error)
}

// Backend is the capability set shared by all three execution modes.
type Backend interface {
	// Transcribe runs a full transcription of the audio file.
	Transcribe(ctx context.Context, req *Request) (*Result, error)

	// Retranscribe re-transcribes only the given ranges with high-accuracy
	// settings. The result carries TextBySegment instead of a full text.
	Retranscribe(ctx context.Context, req *Request, ranges []models.ExtractionRange) (*Result, error)

	// IsAvailable reports whether the execution backend is reachable.
	IsAvailable(ctx context.Context) bool

	// FindActiveJobForMeeting returns the name of a non-terminal external job
	// labeled with the meeting id, or empty when none exists. Only the
	// Kubernetes mode has durable external jobs.
	FindActiveJobForMeeting(ctx context.Context, meetingID string) (string, error)

	// DeleteJobsForMeeting removes any external jobs for the meeting.
	// Returns true when at least one job was deleted.
	DeleteJobsForMeeting(ctx context.Context, meetingID string) (bool, error)

	// WaitForExistingJob re-binds to a running external job and waits for it
	// the same way the original Transcribe call would have.
	WaitForExistingJob(ctx context.Context, jobName, audioPath, meetingID, clientID string) (*Result, error)
}

// NewBackend constructs the backend selected by cfg.DeploymentMode. The
// clientset is only required for kubernetes_job mode; terms may be nil when
// no correction agent is configured.
func NewBackend(cfg *config.TranscriptionConfig, clientset kubernetes.Interface, terms TermSource, notifier *Notifier) (Backend, error) {
	builder := &optionsBuilder{cfg: cfg, terms: terms}

	switch cfg.DeploymentMode {
	case config.ModeKubernetesJob:
		if clientset == nil {
			return nil, fmt.Errorf("kubernetes_job mode requires a cluster client")
		}
		return NewKubernetesBackend(cfg, clientset, builder, notifier), nil
	case config.ModeRestRemote:
		if cfg.RestRemoteURL == "" {
			return nil, fmt.Errorf("rest_remote mode requires rest_remote_url")
		}
		return NewRemoteBackend(cfg, builder, notifier), nil
	case config.ModeLocalSubprocess:
		return NewLocalBackend(cfg, builder, notifier), nil
	default:
		return nil, fmt.Errorf("unknown deployment mode: %s", cfg.DeploymentMode)
	}
}
