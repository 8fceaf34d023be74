package transcriber

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
)

func remoteConfig(url string) *config.TranscriptionConfig {
	cfg := config.DefaultTranscriptionConfig()
	cfg.DeploymentMode = config.ModeRestRemote
	cfg.RestRemoteURL = url
	return cfg
}

func tempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.wav")
	require.NoError(t, os.WriteFile(path, make([]byte, 44+32000), 0o600))
	return path
}

func sseHandler(t *testing.T, events []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Whisper-Options"))

		w.Header().Set("Content-Type", "text/event-stream")
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for _, e := range events {
			fmt.Fprint(w, e)
			flusher.Flush()
		}
	}
}

func TestRemoteTranscribeStreamsToResult(t *testing.T) {
	events := []string{
		"event: progress\ndata: {\"percent\":50,\"segmentsDone\":1,\"elapsedSeconds\":2.5}\n\n",
		"event: result\ndata: {\"text\":\"hello world\",\"segments\":[{\"start\":0,\"end\":5,\"text\":\"hello world\"}],\"language\":\"en\"}\n\n",
	}
	srv := httptest.NewServer(sseHandler(t, events))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	emitter := &countingEmitter{}
	notifier := NewNotifier(emitter, nil, nil)
	backend := NewRemoteBackend(cfg, &optionsBuilder{cfg: cfg}, notifier)

	result, err := backend.Transcribe(context.Background(), &Request{
		AudioPath: tempAudio(t),
		MeetingID: "m-1",
		ClientID:  "client-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Text)
	require.Len(t, result.Segments, 1)
	assert.Equal(t, 5.0, result.Segments[0].End)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, 1, emitter.progress)
}

func TestRemoteTranscribeErrorEvent(t *testing.T) {
	events := []string{
		"event: error\ndata: {\"error\":\"model load failed\"}\n\n",
	}
	srv := httptest.NewServer(sseHandler(t, events))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	backend := NewRemoteBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model load failed")
}

func TestRemoteTranscribeTruncatedStream(t *testing.T) {
	events := []string{
		"event: progress\ndata: {\"percent\":10}\n\n",
	}
	srv := httptest.NewServer(sseHandler(t, events))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	backend := NewRemoteBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: tempAudio(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a result")
}

func TestRemoteIsAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	backend := NewRemoteBackend(cfg, &optionsBuilder{cfg: cfg}, nil)
	assert.True(t, backend.IsAvailable(context.Background()))

	srv.Close()
	assert.False(t, backend.IsAvailable(context.Background()))
}

func TestRemoteMissingAudio(t *testing.T) {
	cfg := remoteConfig("http://localhost:1")
	backend := NewRemoteBackend(cfg, &optionsBuilder{cfg: cfg}, nil)

	_, err := backend.Transcribe(context.Background(), &Request{AudioPath: "/no/such/file.wav"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audio file not found")
}
