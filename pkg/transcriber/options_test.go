package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

type fakeTerms struct {
	terms []string
	err   error
}

func (f *fakeTerms) KnownTerms(_ context.Context, _, _ string) ([]string, error) {
	return f.terms, f.err
}

// writeAudio creates a file sized for the given PCM duration: 44-byte
// header plus 32 000 bytes per second.
func writeAudio(t *testing.T, seconds int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(path, make([]byte, 44+seconds*32000), 0o600))
	return path
}

func TestAudioDurationHeuristic(t *testing.T) {
	assert.Equal(t, 60.0, audioDurationSeconds(writeAudio(t, 60)))
	assert.Equal(t, 0.0, audioDurationSeconds("/no/such/file.wav"))

	// Header-only file must not go negative.
	tiny := filepath.Join(t.TempDir(), "tiny.wav")
	require.NoError(t, os.WriteFile(tiny, make([]byte, 30), 0o600))
	assert.Equal(t, 0.0, audioDurationSeconds(tiny))
}

func TestTranscribeTimeout(t *testing.T) {
	cfg := config.DefaultTranscriptionConfig()
	b := &optionsBuilder{cfg: cfg}

	// Short audio: the floor wins.
	assert.Equal(t, cfg.MinTimeout, b.transcribeTimeout(writeAudio(t, 60)))

	// Long audio: duration × multiplier wins.
	cfg.TimeoutMultiplier = 2.0
	assert.Equal(t, 40*time.Minute, b.transcribeTimeout(writeAudio(t, 1200)))

	// Missing file still gets the floor.
	assert.Equal(t, cfg.MinTimeout, b.transcribeTimeout("/no/such/file.wav"))
}

func TestRetranscribeTimeout(t *testing.T) {
	// Small ranges: 600 s floor.
	short := []models.ExtractionRange{{Start: 10, End: 35, SegmentIndex: 1}}
	assert.Equal(t, 600*time.Second, retranscribeTimeout(short))

	// Large ranges: sum × 15.
	long := []models.ExtractionRange{
		{Start: 0, End: 30, SegmentIndex: 0},
		{Start: 40, End: 60, SegmentIndex: 3},
	}
	assert.Equal(t, 750*time.Second, retranscribeTimeout(long))

	assert.Equal(t, 600*time.Second, retranscribeTimeout(nil))
}

func TestModelResources(t *testing.T) {
	tests := []struct {
		model   string
		request string
		limit   string
	}{
		{"tiny", "512Mi", "2Gi"},
		{"base", "512Mi", "2Gi"},
		{"small", "1Gi", "3Gi"},
		{"medium", "2Gi", "6Gi"},
		{"large-v3", "4Gi", "12Gi"},
		{"experimental", "512Mi", "2Gi"},
	}
	for _, tt := range tests {
		req, limit := modelResources(tt.model)
		assert.Equal(t, tt.request, req, tt.model)
		assert.Equal(t, tt.limit, limit, tt.model)
	}
}

func TestInitialPromptDeduplicates(t *testing.T) {
	b := &optionsBuilder{
		cfg:   config.DefaultTranscriptionConfig(),
		terms: &fakeTerms{terms: []string{"Jervis", "kubernetes", "Jervis", " ", "pgx"}},
	}
	assert.Equal(t, "Jervis, kubernetes, pgx", b.initialPrompt(context.Background(), "client-1", ""))
}

func TestInitialPromptToleratesFetchFailure(t *testing.T) {
	b := &optionsBuilder{
		cfg:   config.DefaultTranscriptionConfig(),
		terms: &fakeTerms{err: errors.New("agent down")},
	}
	assert.Empty(t, b.initialPrompt(context.Background(), "client-1", ""))
}

func TestInitialPromptSkippedWithoutClient(t *testing.T) {
	b := &optionsBuilder{cfg: config.DefaultTranscriptionConfig(), terms: &fakeTerms{terms: []string{"x"}}}
	assert.Empty(t, b.initialPrompt(context.Background(), "", ""))
}

func TestBuildRetranscribeOverrides(t *testing.T) {
	cfg := config.DefaultTranscriptionConfig()
	b := &optionsBuilder{cfg: cfg}
	ranges := []models.ExtractionRange{{Start: 10, End: 35, SegmentIndex: 1}}

	opts := b.buildRetranscribe(context.Background(), &Request{AudioPath: "/a.wav"}, "/a.wav_progress.json", ranges)
	assert.Equal(t, "large-v3", opts.Model)
	assert.Equal(t, 10, opts.BeamSize)
	assert.Equal(t, 0.3, opts.NoSpeechThreshold)
	assert.Equal(t, ranges, opts.ExtractionRanges)

	full := b.build(context.Background(), &Request{AudioPath: "/a.wav"}, "/a.wav_progress.json")
	assert.Equal(t, cfg.Model, full.Model)
	assert.Equal(t, "transcribe", full.Task)
	assert.Empty(t, full.ExtractionRanges)
}

func TestExchangeFileNames(t *testing.T) {
	assert.Equal(t, "/w/m.wav_transcript.json", resultFilePath("/w/m.wav"))
	assert.Equal(t, "/w/m.wav_progress.json", progressFilePath("/w/m.wav"))
}
