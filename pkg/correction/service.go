package correction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/JanDamek/jervis-transcribe/pkg/config"
	"github.com/JanDamek/jervis-transcribe/pkg/events"
	"github.com/JanDamek/jervis-transcribe/pkg/heartbeat"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
	"github.com/JanDamek/jervis-transcribe/pkg/store"
	"github.com/JanDamek/jervis-transcribe/pkg/transcriber"
)

// Service orchestrates the correction loop: full-transcript correction,
// answer handling, and targeted re-transcription of ambiguous segments.
// Entry into CORRECTING always goes through the store's compare-and-swap,
// so at most one caller owns a meeting's correction at a time.
type Service struct {
	store   store.MeetingStore
	agent   Agent
	backend transcriber.Backend
	emitter events.Emitter
	beats   *heartbeat.Tracker
	cfg     *config.TranscriptionConfig
}

// NewService wires the correction service.
func NewService(st store.MeetingStore, agent Agent, backend transcriber.Backend, emitter events.Emitter, beats *heartbeat.Tracker, cfg *config.TranscriptionConfig) *Service {
	return &Service{store: st, agent: agent, backend: backend, emitter: emitter, beats: beats, cfg: cfg}
}

// Correct runs the full correction of a meeting's raw transcript. The
// meeting must be in TRANSCRIBED or CORRECTION_REVIEW. Returns nil when the
// compare-and-swap loses the race; the winner handles the meeting.
func (s *Service) Correct(ctx context.Context, m *models.Meeting) error {
	if m.State != models.StateTranscribed && m.State != models.StateCorrectionReview {
		return fmt.Errorf("meeting %s is in state %s, cannot start correction", m.ID, m.State)
	}
	revertTo := m.State

	ok, err := s.store.TransitionState(ctx, m.ID, m.State, models.StateCorrecting)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("Meeting already claimed by another worker", "meeting_id", m.ID)
		return nil
	}
	defer s.beats.Clear(m.ID)
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateCorrecting, m.Title, "")

	if !m.HasTranscript() {
		// Nothing to correct; write through.
		m.CorrectedTranscriptText = ""
		m.CorrectedTranscriptSegments = nil
		m.CorrectionQuestions = nil
		return s.persistOutcome(ctx, m, models.StateCorrected)
	}

	resp, err := s.agent.CorrectTranscript(ctx, &CorrectTranscriptRequest{
		ClientID:  m.ClientID,
		ProjectID: m.ProjectID,
		MeetingID: m.ID,
		Segments:  toWireSegments(m.TranscriptSegments),
	})
	if err != nil {
		return s.handleFailure(ctx, m, err, revertTo)
	}

	return s.applyCorrection(ctx, m, resp, revertTo)
}

// AnswerQuestions processes user answers for a meeting in CORRECTION_REVIEW.
// Known answers become persistent rules; unknown answers ("I don't know")
// trigger targeted re-transcription of their segments.
func (s *Service) AnswerQuestions(ctx context.Context, meetingID string, answers []models.CorrectionAnswer) error {
	m, err := s.store.FindByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if m.State != models.StateCorrectionReview {
		return fmt.Errorf("meeting %s is in state %s, answers require CORRECTION_REVIEW", m.ID, m.State)
	}

	segmentByQuestion := make(map[string]int, len(m.CorrectionQuestions))
	for _, q := range m.CorrectionQuestions {
		segmentByQuestion[q.QuestionID] = q.SegmentIndex
	}

	var known []WireAnswer
	knownByIndex := make(map[int]string)
	var unknownIndices []int
	for _, a := range answers {
		idx, found := segmentByQuestion[a.QuestionID]
		if !found {
			return fmt.Errorf("answer references unknown question %s on meeting %s", a.QuestionID, m.ID)
		}
		if a.IsKnown() {
			known = append(known, WireAnswer{Original: a.Original, Corrected: a.Corrected, Category: a.Category})
			knownByIndex[idx] = a.Corrected
		} else {
			unknownIndices = append(unknownIndices, idx)
		}
	}

	if len(known) > 0 {
		err := s.agent.AnswerCorrectionQuestions(ctx, &AnswerQuestionsRequest{
			ClientID:  m.ClientID,
			ProjectID: m.ProjectID,
			Answers:   known,
		})
		if err != nil {
			return fmt.Errorf("failed to store correction answers for meeting %s: %w", m.ID, err)
		}
	}

	if len(unknownIndices) == 0 {
		// All answered: clear questions and let the pipeline re-run full
		// correction with the freshly saved rules.
		m.CorrectionQuestions = nil
		m.State = models.StateTranscribed
		m.StateChangedAt = time.Now()
		m.ErrorMessage = ""
		if err := s.store.Save(ctx, m); err != nil {
			return err
		}
		s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, m.State, m.Title, "")
		return nil
	}

	return s.retranscribeAndCorrect(ctx, m, unknownIndices, knownByIndex)
}

// RetranscribeSelectedSegments re-transcribes arbitrary user-selected
// segments with high-accuracy settings and re-runs targeted correction.
func (s *Service) RetranscribeSelectedSegments(ctx context.Context, meetingID string, indices []int) error {
	m, err := s.store.FindByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if m.State != models.StateTranscribed && m.State != models.StateCorrectionReview {
		return fmt.Errorf("meeting %s is in state %s, cannot re-transcribe", m.ID, m.State)
	}
	return s.retranscribeAndCorrect(ctx, m, indices, nil)
}

// retranscribeAndCorrect re-transcribes the unknown segments' audio ranges,
// merges the results with user-corrected texts, and runs targeted
// correction over the merged transcript.
func (s *Service) retranscribeAndCorrect(ctx context.Context, m *models.Meeting, unknownIndices []int, knownByIndex map[int]string) error {
	revertTo := m.State

	ok, err := s.store.TransitionState(ctx, m.ID, m.State, models.StateCorrecting)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("Meeting already claimed by another worker", "meeting_id", m.ID)
		return nil
	}
	defer s.beats.Clear(m.ID)
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateCorrecting, m.Title, "")

	ranges, err := s.extractionRanges(m, unknownIndices)
	if err != nil {
		return s.failMeeting(ctx, m, err)
	}

	result, err := s.backend.Retranscribe(ctx, &transcriber.Request{
		AudioPath:     m.AudioFilePath,
		WorkspacePath: s.cfg.WorkspacePath,
		MeetingID:     m.ID,
		ClientID:      m.ClientID,
		ProjectID:     m.ProjectID,
	}, ranges)
	if err != nil {
		return s.failMeeting(ctx, m, fmt.Errorf("re-transcription failed: %w", err))
	}

	merged := mergeSegments(m.TranscriptSegments, result.TextBySegment, knownByIndex)

	userCorrected := make(map[string]string, len(knownByIndex))
	for idx, text := range knownByIndex {
		userCorrected[strconv.Itoa(idx)] = text
	}

	resp, err := s.agent.CorrectTargeted(ctx, &CorrectTargetedRequest{
		ClientID:             m.ClientID,
		ProjectID:            m.ProjectID,
		MeetingID:            m.ID,
		Segments:             toWireSegments(merged),
		RetranscribedIndices: unknownIndices,
		UserCorrectedIndices: userCorrected,
	})
	if err != nil {
		return s.handleFailure(ctx, m, err, revertTo)
	}

	// Overlay against the merged segments so untouched indices keep their
	// original timing and speaker.
	m.TranscriptSegments = merged
	return s.applyCorrection(ctx, m, resp, revertTo)
}

// applyCorrection overlays the agent's corrected segments onto the
// originals, maps follow-up questions, and persists the terminal state of
// this correction round.
func (s *Service) applyCorrection(ctx context.Context, m *models.Meeting, resp *CorrectResponse, revertTo models.MeetingState) error {
	corrected := overlaySegments(m.TranscriptSegments, resp.Segments)
	correctedText := joinSegmentTexts(corrected)

	if correctedText == "" && m.HasTranscript() {
		return s.failMeetingSoft(ctx, m, "No transcript text after correction")
	}

	m.CorrectedTranscriptSegments = corrected
	m.CorrectedTranscriptText = correctedText
	m.CorrectionQuestions = toModelQuestions(resp.Questions)

	next := models.StateCorrected
	if len(m.CorrectionQuestions) > 0 {
		next = models.StateCorrectionReview
	}
	return s.persistOutcome(ctx, m, next)
}

// persistOutcome saves the meeting in its new state and emits the change.
func (s *Service) persistOutcome(ctx context.Context, m *models.Meeting, next models.MeetingState) error {
	m.State = next
	m.StateChangedAt = time.Now()
	m.ErrorMessage = ""
	if err := s.store.Save(ctx, m); err != nil {
		return err
	}
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, next, m.Title, "")
	slog.Info("Correction round finished",
		"meeting_id", m.ID, "state", next, "questions", len(m.CorrectionQuestions))
	return nil
}

// handleFailure applies the failure policy: connection errors revert the
// meeting (cleared error message) so the pipeline or the user retries; any
// other error fails it permanently.
func (s *Service) handleFailure(ctx context.Context, m *models.Meeting, cause error, revertTo models.MeetingState) error {
	if IsConnectionError(cause) {
		slog.Warn("Correction agent unreachable, reverting for retry",
			"meeting_id", m.ID, "revert_to", revertTo, "error", cause)
		if err := s.store.SetState(ctx, m.ID, revertTo, ""); err != nil {
			return err
		}
		s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, revertTo, m.Title, "")
		return nil
	}
	return s.failMeeting(ctx, m, fmt.Errorf("Correction error: %w", cause))
}

// failMeeting moves the meeting to FAILED with the cause as error message.
// The failure is fully handled here; callers get nil unless persisting the
// failure itself fails.
func (s *Service) failMeeting(ctx context.Context, m *models.Meeting, cause error) error {
	slog.Error("Correction failed", "meeting_id", m.ID, "error", cause)
	if err := s.store.SetState(ctx, m.ID, models.StateFailed, cause.Error()); err != nil {
		return err
	}
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateFailed, m.Title, cause.Error())
	return nil
}

// failMeetingSoft persists FAILED without propagating an error: the outcome
// is final and the pipeline must not retry.
func (s *Service) failMeetingSoft(ctx context.Context, m *models.Meeting, message string) error {
	slog.Warn("Correction produced no text", "meeting_id", m.ID)
	if err := s.store.SetState(ctx, m.ID, models.StateFailed, message); err != nil {
		return err
	}
	s.emitter.EmitStateChanged(ctx, m.ID, m.ClientID, models.StateFailed, m.Title, message)
	return nil
}

// extractionRanges builds the padded audio windows around the given segment
// indices. Starts are clamped at zero.
func (s *Service) extractionRanges(m *models.Meeting, indices []int) ([]models.ExtractionRange, error) {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)

	ranges := make([]models.ExtractionRange, 0, len(sorted))
	for _, idx := range sorted {
		if idx < 0 || idx >= len(m.TranscriptSegments) {
			return nil, fmt.Errorf("segment index %d out of range for meeting %s", idx, m.ID)
		}
		seg := m.TranscriptSegments[idx]
		start := seg.StartSec - s.cfg.PaddingSeconds
		if start < 0 {
			start = 0
		}
		ranges = append(ranges, models.ExtractionRange{
			Start:        start,
			End:          seg.EndSec + s.cfg.PaddingSeconds,
			SegmentIndex: idx,
		})
	}
	return ranges, nil
}

// mergeSegments builds the merged transcript: re-transcribed text wins,
// then user-corrected text, then the original.
func mergeSegments(originals []models.Segment, retranscribed map[string]string, knownByIndex map[int]string) []models.Segment {
	merged := make([]models.Segment, len(originals))
	copy(merged, originals)
	for i := range merged {
		if text, ok := retranscribed[strconv.Itoa(i)]; ok {
			merged[i].Text = text
		} else if text, ok := knownByIndex[i]; ok {
			merged[i].Text = text
		}
	}
	return merged
}

// overlaySegments applies the agent's corrected texts onto the originals,
// keeping the original timing and speaker wherever present. Extra segments
// returned beyond the originals are appended as-is.
func overlaySegments(originals []models.Segment, wire []WireSegment) []models.Segment {
	corrected := make([]models.Segment, len(originals))
	copy(corrected, originals)

	for _, w := range wire {
		if w.Index < 0 {
			continue
		}
		if w.Index < len(corrected) {
			corrected[w.Index].Text = w.Text
			if corrected[w.Index].Speaker == "" && w.Speaker != "" {
				corrected[w.Index].Speaker = w.Speaker
			}
			continue
		}
		corrected = append(corrected, models.Segment{
			StartSec: w.StartSec,
			EndSec:   w.EndSec,
			Text:     w.Text,
			Speaker:  w.Speaker,
		})
	}
	return corrected
}

// joinSegmentTexts concatenates segment texts with single spaces.
func joinSegmentTexts(segments []models.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if t := strings.TrimSpace(seg.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// toWireSegments indexes the domain segments for the agent.
func toWireSegments(segments []models.Segment) []WireSegment {
	wire := make([]WireSegment, len(segments))
	for i, seg := range segments {
		wire[i] = WireSegment{
			Index:    i,
			StartSec: seg.StartSec,
			EndSec:   seg.EndSec,
			Text:     seg.Text,
			Speaker:  seg.Speaker,
		}
	}
	return wire
}

// toModelQuestions maps agent questions into the persisted shape.
func toModelQuestions(wire []WireQuestion) []models.CorrectionQuestion {
	if len(wire) == 0 {
		return nil
	}
	questions := make([]models.CorrectionQuestion, len(wire))
	for i, q := range wire {
		questions[i] = models.CorrectionQuestion{
			QuestionID:        q.ID,
			SegmentIndex:      q.Index,
			OriginalText:      q.Original,
			CorrectionOptions: q.Options,
			Question:          q.Question,
			Context:           q.Context,
		}
	}
	return questions
}
