package transcriber

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Options is the engine options payload, uniform across all three modes.
// It is serialized to JSON and handed to the transcription container
// (WHISPER_OPTIONS), the remote backend, or the local subprocess.
type Options struct {
	Task                    string                   `json:"task"`
	Model                   string                   `json:"model"`
	BeamSize                int                      `json:"beamSize"`
	VADFilter               bool                     `json:"vadFilter"`
	WordTimestamps          bool                     `json:"wordTimestamps"`
	ConditionOnPreviousText bool                     `json:"conditionOnPreviousText"`
	NoSpeechThreshold       float64                  `json:"noSpeechThreshold"`
	ProgressFile            string                   `json:"progressFile"`
	Language                string                   `json:"language,omitempty"`
	InitialPrompt           string                   `json:"initialPrompt,omitempty"`
	ExtractionRanges        []models.ExtractionRange `json:"extractionRanges,omitempty"`
}

// optionsBuilder assembles the options payload and the per-call timeout.
// Shared by every backend so the three modes cannot drift apart.
type optionsBuilder struct {
	cfg   *config.TranscriptionConfig
	terms TermSource
}

// build assembles full-transcription options.
func (b *optionsBuilder) build(ctx context.Context, req *Request, progressFile string) Options {
	return Options{
		Task:                    "transcribe",
		Model:                   b.cfg.Model,
		BeamSize:                b.cfg.BeamSize,
		VADFilter:               b.cfg.VADFilter,
		WordTimestamps:          b.cfg.WordTimestamps,
		ConditionOnPreviousText: b.cfg.ConditionOnPreviousText,
		NoSpeechThreshold:       b.cfg.NoSpeechThreshold,
		ProgressFile:            progressFile,
		Language:                b.cfg.Language,
		InitialPrompt:           b.initialPrompt(ctx, req.ClientID, req.ProjectID),
	}
}

// buildRetranscribe assembles targeted re-transcription options: the large
// model, a wider beam and a lower no-speech threshold, plus the ranges.
func (b *optionsBuilder) buildRetranscribe(ctx context.Context, req *Request, progressFile string, ranges []models.ExtractionRange) Options {
	opts := b.build(ctx, req, progressFile)
	opts.Model = b.cfg.RetranscribeModel
	opts.BeamSize = b.cfg.RetranscribeBeamSize
	opts.NoSpeechThreshold = b.cfg.RetranscribeNoSpeechThreshold
	opts.ExtractionRanges = ranges
	return opts
}

// initialPrompt joins the client's known correction terms with ", " to bias
// decoding. A fetch failure is logged and ignored: transcription must never
// fail because the prompt could not be built.
func (b *optionsBuilder) initialPrompt(ctx context.Context, clientID, projectID string) string {
	if b.terms == nil || clientID == "" {
		return ""
	}

	terms, err := b.terms.KnownTerms(ctx, clientID, projectID)
	if err != nil {
		slog.Warn("Failed to fetch correction terms for initial prompt",
			"client_id", clientID, "error", err)
		return ""
	}

	seen := make(map[string]struct{}, len(terms))
	unique := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		unique = append(unique, term)
	}
	return strings.Join(unique, ", ")
}

// transcribeTimeout is the wall-clock budget for a full transcription:
// max(audioDuration × multiplier, minTimeout).
func (b *optionsBuilder) transcribeTimeout(audioPath string) time.Duration {
	budget := time.Duration(audioDurationSeconds(audioPath) * b.cfg.TimeoutMultiplier * float64(time.Second))
	if budget < b.cfg.MinTimeout {
		return b.cfg.MinTimeout
	}
	return budget
}

// retranscribeTimeout is the budget for targeted re-transcription:
// max(sum of range durations × 15, 600 s).
func retranscribeTimeout(ranges []models.ExtractionRange) time.Duration {
	var total float64
	for _, r := range ranges {
		if r.End > r.Start {
			total += r.End - r.Start
		}
	}
	budget := time.Duration(total * 15 * float64(time.Second))
	if budget < 600*time.Second {
		return 600 * time.Second
	}
	return budget
}

// audioDurationSeconds derives the audio length from file size assuming
// 16 kHz / 16-bit / mono PCM: 32 000 bytes per second after a 44-byte
// header. A missing file or short file yields 0, which the timeout floor
// absorbs.
func audioDurationSeconds(audioPath string) float64 {
	info, err := os.Stat(audioPath)
	if err != nil {
		return 0
	}
	payload := info.Size() - 44
	if payload <= 0 {
		return 0
	}
	return float64(payload) / 32000
}

// modelResources maps the model name to container memory sizing. CPU is
// fixed at 0.5 request / 2 limit for every model.
func modelResources(model string) (memoryRequest, memoryLimit string) {
	switch model {
	case "tiny", "base":
		return "512Mi", "2Gi"
	case "small":
		return "1Gi", "3Gi"
	case "medium":
		return "2Gi", "6Gi"
	case "large-v3":
		return "4Gi", "12Gi"
	default:
		return "512Mi", "2Gi"
	}
}

// resultFilePath and progressFilePath name the per-meeting exchange files
// next to the audio so concurrent meetings never contend.
func resultFilePath(audioPath string) string   { return audioPath + "_transcript.json" }
func progressFilePath(audioPath string) string { return audioPath + "_progress.json" }
