package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// serviceLabel is the app label put on every transcription job so the
// re-attach controller can find them after a restart.
const serviceLabel = "jervis-transcribe"

// workspaceClaim is the PVC shared between this service and the
// transcription containers; audio, result and progress files live on it.
const workspaceClaim = "jervis-transcribe-workspace"

// jobTTLSeconds lets the cluster garbage-collect finished jobs.
const jobTTLSeconds = int32(3600)

// KubernetesBackend executes transcriptions as single-attempt batch jobs in
// the cluster. The container reads its work from environment variables and
// exchanges results through files on the shared workspace volume.
type KubernetesBackend struct {
	cfg       *config.TranscriptionConfig
	clientset kubernetes.Interface
	builder   *optionsBuilder
	notifier  *Notifier
}

// NewKubernetesBackend creates the in-cluster batch-job backend.
func NewKubernetesBackend(cfg *config.TranscriptionConfig, clientset kubernetes.Interface, builder *optionsBuilder, notifier *Notifier) *KubernetesBackend {
	return &KubernetesBackend{cfg: cfg, clientset: clientset, builder: builder, notifier: notifier}
}

// Transcribe implements Backend.
func (b *KubernetesBackend) Transcribe(ctx context.Context, req *Request) (*Result, error) {
	opts := b.builder.build(ctx, req, progressFilePath(req.AudioPath))
	timeout := b.builder.transcribeTimeout(req.AudioPath)
	return b.runJob(ctx, req, opts, timeout)
}

// Retranscribe implements Backend.
func (b *KubernetesBackend) Retranscribe(ctx context.Context, req *Request, ranges []models.ExtractionRange) (*Result, error) {
	opts := b.builder.buildRetranscribe(ctx, req, progressFilePath(req.AudioPath), ranges)
	return b.runJob(ctx, req, opts, retranscribeTimeout(ranges))
}

// IsAvailable implements Backend: the API server answering is enough.
func (b *KubernetesBackend) IsAvailable(ctx context.Context) bool {
	_, err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).List(ctx, metav1.ListOptions{Limit: 1})
	return err == nil
}

// FindActiveJobForMeeting implements Backend: any non-terminal job labeled
// with the meeting id.
func (b *KubernetesBackend) FindActiveJobForMeeting(ctx context.Context, meetingID string) (string, error) {
	jobs, err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).List(ctx, metav1.ListOptions{
		LabelSelector: meetingSelector(meetingID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list jobs for meeting %s: %w", meetingID, err)
	}
	for _, job := range jobs.Items {
		if job.Labels["meeting-id"] != meetingID {
			continue
		}
		if job.Status.Succeeded == 0 && job.Status.Failed == 0 {
			return job.Name, nil
		}
	}
	return "", nil
}

// DeleteJobsForMeeting implements Backend.
func (b *KubernetesBackend) DeleteJobsForMeeting(ctx context.Context, meetingID string) (bool, error) {
	jobs, err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).List(ctx, metav1.ListOptions{
		LabelSelector: meetingSelector(meetingID),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list jobs for meeting %s: %w", meetingID, err)
	}

	propagation := metav1.DeletePropagationBackground
	deleted := false
	for _, job := range jobs.Items {
		if job.Labels["meeting-id"] != meetingID {
			continue
		}
		err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).Delete(ctx, job.Name, metav1.DeleteOptions{
			PropagationPolicy: &propagation,
		})
		if err != nil {
			slog.Warn("Failed to delete transcription job", "job", job.Name, "meeting_id", meetingID, "error", err)
			continue
		}
		deleted = true
	}
	return deleted, nil
}

// WaitForExistingJob implements Backend: re-binds to a job created by a
// previous process instance and waits for it like the original caller would.
func (b *KubernetesBackend) WaitForExistingJob(ctx context.Context, jobName, audioPath, meetingID, clientID string) (*Result, error) {
	timeout := b.builder.transcribeTimeout(audioPath)
	return b.waitForJob(ctx, jobName, audioPath, meetingID, clientID, timeout)
}

// runJob creates the batch job and waits for its terminal state.
func (b *KubernetesBackend) runJob(ctx context.Context, req *Request, opts Options, timeout time.Duration) (*Result, error) {
	if _, err := os.Stat(req.AudioPath); err != nil {
		return nil, fmt.Errorf("audio file not found: %s: %w", req.AudioPath, err)
	}

	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal options payload: %w", err)
	}

	jobName := jobNameFor(req.MeetingID)
	job := b.jobSpec(jobName, req, opts.Model, string(optsJSON))

	if _, err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).Create(ctx, job, metav1.CreateOptions{}); err != nil {
		return nil, fmt.Errorf("failed to create transcription job %s: %w", jobName, err)
	}
	slog.Info("Created transcription job",
		"job", jobName, "meeting_id", req.MeetingID, "model", opts.Model, "timeout", timeout)

	return b.waitForJob(ctx, jobName, req.AudioPath, req.MeetingID, req.ClientID, timeout)
}

// waitForJob polls the job status on a fixed cadence, mirroring progress
// ticks to the notifier, until the job succeeds, fails or runs out of its
// wall-clock budget. Exchange files are removed whatever the outcome.
func (b *KubernetesBackend) waitForJob(ctx context.Context, jobName, audioPath, meetingID, clientID string, timeout time.Duration) (*Result, error) {
	resultFile := resultFilePath(audioPath)
	progressFile := progressFilePath(audioPath)
	defer func() {
		_ = os.Remove(resultFile)
		_ = os.Remove(progressFile)
	}()

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(b.cfg.JobPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if p, ok := readProgressFile(progressFile); ok {
			b.notifier.Notify(ctx, meetingID, clientID, p)
		}

		job, err := b.clientset.BatchV1().Jobs(b.cfg.Namespace).Get(ctx, jobName, metav1.GetOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to get transcription job %s: %w", jobName, err)
		}

		switch {
		case job.Status.Succeeded > 0:
			return readResultFile(resultFile)
		case job.Status.Failed > 0:
			return nil, fmt.Errorf("transcription job %s failed", jobName)
		case time.Now().After(deadline):
			if _, delErr := b.DeleteJobsForMeeting(ctx, meetingID); delErr != nil {
				slog.Warn("Failed to delete timed-out job", "job", jobName, "error", delErr)
			}
			return nil, fmt.Errorf("transcription job %s timed out after %s", jobName, timeout)
		}
	}
}

// jobSpec builds the single-attempt batch job running the transcription
// container against the shared workspace volume.
func (b *KubernetesBackend) jobSpec(jobName string, req *Request, model, optsJSON string) *batchv1.Job {
	memRequest, memLimit := modelResources(model)
	backoffLimit := int32(0)
	ttl := jobTTLSeconds

	return &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      jobName,
			Namespace: b.cfg.Namespace,
			Labels: map[string]string{
				"app":        serviceLabel,
				"meeting-id": req.MeetingID,
			},
		},
		Spec: batchv1.JobSpec{
			BackoffLimit:            &backoffLimit,
			TTLSecondsAfterFinished: &ttl,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{
						"app":        serviceLabel,
						"meeting-id": req.MeetingID,
					},
				},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					Containers: []corev1.Container{{
						Name:  "whisper",
						Image: b.cfg.JobImage,
						Env: []corev1.EnvVar{
							{Name: "WORKSPACE", Value: req.WorkspacePath},
							{Name: "AUDIO_FILE", Value: req.AudioPath},
							{Name: "RESULT_FILE", Value: resultFilePath(req.AudioPath)},
							{Name: "PROGRESS_FILE", Value: progressFilePath(req.AudioPath)},
							{Name: "WHISPER_OPTIONS", Value: optsJSON},
						},
						Resources: corev1.ResourceRequirements{
							Requests: corev1.ResourceList{
								corev1.ResourceCPU:    resource.MustParse("500m"),
								corev1.ResourceMemory: resource.MustParse(memRequest),
							},
							Limits: corev1.ResourceList{
								corev1.ResourceCPU:    resource.MustParse("2"),
								corev1.ResourceMemory: resource.MustParse(memLimit),
							},
						},
						VolumeMounts: []corev1.VolumeMount{{
							Name:      "workspace",
							MountPath: req.WorkspacePath,
						}},
					}},
					Volumes: []corev1.Volume{{
						Name: "workspace",
						VolumeSource: corev1.VolumeSource{
							PersistentVolumeClaim: &corev1.PersistentVolumeClaimVolumeSource{
								ClaimName: workspaceClaim,
							},
						},
					}},
				},
			},
		},
	}
}

// readResultFile parses the result file written by the container. A result
// carrying an engine error is surfaced as an error.
func readResultFile(path string) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", path, err)
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %w", path, err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("transcription failed: %s", result.Error)
	}
	return &result, nil
}

// meetingSelector is the label selector binding jobs to a meeting.
func meetingSelector(meetingID string) string {
	return fmt.Sprintf("app=%s,meeting-id=%s", serviceLabel, meetingID)
}

// jobNameFor derives a DNS-safe unique job name from the meeting id.
func jobNameFor(meetingID string) string {
	id := strings.ToLower(meetingID)
	if len(id) > 20 {
		id = id[:20]
	}
	if id == "" {
		id = "adhoc"
	}
	return fmt.Sprintf("transcribe-%s-%d", id, time.Now().UnixNano()%1_000_000)
}
