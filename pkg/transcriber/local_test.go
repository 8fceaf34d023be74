package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
)

// writeScript creates an executable shell script standing in for the
// transcription binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "whisper-fake")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func localConfig(binary string) *config.TranscriptionConfig {
	cfg := config.DefaultTranscriptionConfig()
	cfg.DeploymentMode = config.ModeLocalSubprocess
	cfg.LocalBinary = binary
	cfg.JobPollInterval = 20 * time.Millisecond
	return cfg
}

func TestLocalTranscribeParsesStdout(t *testing.T) {
	script := writeScript(t, `echo '{"text":"hello world","segments":[{"start":0,"end":5,"text":"hello world"}],"language":"en"}'`)
	cfg := localConfig(script)
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	result, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t), MeetingID: "m-1"})
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Text)
	require.Len(t, result.Segments, 1)
}

func TestLocalTranscribeNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "model not found" >&2; exit 3`)
	cfg := localConfig(script)
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestLocalTranscribeEngineError(t *testing.T) {
	script := writeScript(t, `echo '{"error":"unsupported sample rate"}'`)
	cfg := localConfig(script)
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sample rate")
}

func TestLocalTranscribeTimeout(t *testing.T) {
	script := writeScript(t, `sleep 5; echo '{}'`)
	cfg := localConfig(script)
	cfg.MinTimeout = 200 * time.Millisecond
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestLocalTranscribeMissingAudio(t *testing.T) {
	cfg := localConfig("/bin/true")
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: "/no/such/file.wav"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio file not found")
}

func TestLocalIsAvailable(t *testing.T) {
	cfg := localConfig("sh")
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)
	assert.True(t, backend.IsAvailable(context.Background()))

	cfg.LocalBinary = "no-such-transcriber-binary"
	assert.False(t, backend.IsAvailable(context.Background()))
}

func TestLocalHasNoReattachableJobs(t *testing.T) {
	cfg := localConfig("sh")
	backend := NewLocalBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	name, err := backend.FindActiveJobForMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Empty(t, name)

	deleted, err := backend.DeleteJobsForMeeting(context.Background(), "m-1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = backend.WaitForExistingJob(context.Background(), "job", "/a.wav", "m-1", "c-1")
	require.Error(t, err)
}
