package transcriber

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
)

func k8sConfig() *config.TranscriptionConfig {
	cfg := config.DefaultTranscriptionConfig()
	cfg.Namespace = "transcribe"
	cfg.JobPollInterval = 20 * time.Millisecond
	return cfg
}

func jobFixture(name, meetingID string, succeeded, failed int32) *batchv1.Job {
	return &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "transcribe",
			Labels: map[string]string{
				"app":        serviceLabel,
				"meeting-id": meetingID,
			},
		},
		Status: batchv1.JobStatus{Succeeded: succeeded, Failed: failed},
	}
}

func TestFindActiveJobForMeeting(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		jobFixture("job-done", "m-1", 1, 0),
		jobFixture("job-abc", "m-1", 0, 0),
		jobFixture("job-other", "m-2", 0, 0),
	)
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, nil)

	name, err := backend.FindActiveJobForMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "job-abc", name)

	name, err = backend.FindActiveJobForMeeting(context.Background(), "m-3")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestDeleteJobsForMeeting(t *testing.T) {
	clientset := fake.NewSimpleClientset(
		jobFixture("job-abc", "m-1", 0, 0),
		jobFixture("job-other", "m-2", 0, 0),
	)
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, nil)

	deleted, err := backend.DeleteJobsForMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	remaining, err := clientset.BatchV1().Jobs("transcribe").List(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, remaining.Items, 1)
	assert.Equal(t, "job-other", remaining.Items[0].Name)

	deleted, err = backend.DeleteJobsForMeeting(context.Background(), "m-3")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestWaitForExistingJobReadsResult(t *testing.T) {
	clientset := fake.NewSimpleClientset(jobFixture("job-abc", "m-1", 1, 0))
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, NewNotifier(&countingEmitter{}, nil, nil))

	audio := tempAudio(t)
	resultJSON := `{"text":"hello world","segments":[{"start":0,"end":5,"text":"hello world"}]}`
	require.NoError(t, os.WriteFile(resultFilePath(audio), []byte(resultJSON), 0o600))

	result, err := backend.WaitForExistingJob(context.Background(), "job-abc", audio, "m-1", "client-1")
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Text)

	_, statErr := os.Stat(resultFilePath(audio))
	assert.True(t, os.IsNotExist(statErr), "result file must be cleaned up")
}

func TestWaitForExistingJobFailed(t *testing.T) {
	clientset := fake.NewSimpleClientset(jobFixture("job-abc", "m-1", 0, 1))
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.WaitForExistingJob(context.Background(), "job-abc", tempAudio(t), "m-1", "client-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestTranscribeCreatesLabeledJob(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, nil)

	audio := tempAudio(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	// The fake job never finishes; cancellation ends the wait. The job spec
	// itself is what we assert on.
	_, err := backend.Transcribe(ctx, &Request{
		AudioPath:     audio,
		WorkspacePath: "/workspace",
		MeetingID:     "m-1",
		ClientID:      "client-1",
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	jobs, err := clientset.BatchV1().Jobs("transcribe").List(context.Background(), metav1.ListOptions{})
	require.NoError(t, err)
	require.Len(t, jobs.Items, 1)

	job := jobs.Items[0]
	assert.Equal(t, serviceLabel, job.Labels["app"])
	assert.Equal(t, "m-1", job.Labels["meeting-id"])
	require.NotNil(t, job.Spec.BackoffLimit)
	assert.Equal(t, int32(0), *job.Spec.BackoffLimit)

	container := job.Spec.Template.Spec.Containers[0]
	envNames := make(map[string]string, len(container.Env))
	for _, e := range container.Env {
		envNames[e.Name] = e.Value
	}
	assert.Equal(t, "/workspace", envNames["WORKSPACE"])
	assert.Equal(t, audio, envNames["AUDIO_FILE"])
	assert.Equal(t, resultFilePath(audio), envNames["RESULT_FILE"])
	assert.Equal(t, progressFilePath(audio), envNames["PROGRESS_FILE"])
	assert.Contains(t, envNames["WHISPER_OPTIONS"], `"task":"transcribe"`)
}

func TestMissingAudioRejectedBeforeJobCreation(t *testing.T) {
	clientset := fake.NewSimpleClientset()
	cfg := k8sConfig()
	backend := NewKubernetesBackend(cfg, clientset, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: "/no/such/file.wav"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio file not found")

	jobs, listErr := clientset.BatchV1().Jobs("transcribe").List(context.Background(), metav1.ListOptions{})
	require.NoError(t, listErr)
	assert.Empty(t, jobs.Items)
}
