// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// MeetingUpdate is the builder for updating Meeting entities.
type MeetingUpdate struct {
	config
	hooks    []Hook
	mutation *MeetingMutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (mu *MeetingUpdate) Where(ps ...predicate.Meeting) *MeetingUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetClientID sets the "client_id" field.
func (mu *MeetingUpdate) SetClientID(s string) *MeetingUpdate {
	mu.mutation.SetClientID(s)
	return mu
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableClientID(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetClientID(*s)
	}
	return mu
}

// SetProjectID sets the "project_id" field.
func (mu *MeetingUpdate) SetProjectID(s string) *MeetingUpdate {
	mu.mutation.SetProjectID(s)
	return mu
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableProjectID(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetProjectID(*s)
	}
	return mu
}

// ClearProjectID clears the value of the "project_id" field.
func (mu *MeetingUpdate) ClearProjectID() *MeetingUpdate {
	mu.mutation.ClearProjectID()
	return mu
}

// SetTitle sets the "title" field.
func (mu *MeetingUpdate) SetTitle(s string) *MeetingUpdate {
	mu.mutation.SetTitle(s)
	return mu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableTitle(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetTitle(*s)
	}
	return mu
}

// ClearTitle clears the value of the "title" field.
func (mu *MeetingUpdate) ClearTitle() *MeetingUpdate {
	mu.mutation.ClearTitle()
	return mu
}

// SetStartedAt sets the "started_at" field.
func (mu *MeetingUpdate) SetStartedAt(t time.Time) *MeetingUpdate {
	mu.mutation.SetStartedAt(t)
	return mu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableStartedAt(t *time.Time) *MeetingUpdate {
	if t != nil {
		mu.SetStartedAt(*t)
	}
	return mu
}

// ClearStartedAt clears the value of the "started_at" field.
func (mu *MeetingUpdate) ClearStartedAt() *MeetingUpdate {
	mu.mutation.ClearStartedAt()
	return mu
}

// SetStoppedAt sets the "stopped_at" field.
func (mu *MeetingUpdate) SetStoppedAt(t time.Time) *MeetingUpdate {
	mu.mutation.SetStoppedAt(t)
	return mu
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableStoppedAt(t *time.Time) *MeetingUpdate {
	if t != nil {
		mu.SetStoppedAt(*t)
	}
	return mu
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (mu *MeetingUpdate) ClearStoppedAt() *MeetingUpdate {
	mu.mutation.ClearStoppedAt()
	return mu
}

// SetDurationSeconds sets the "duration_seconds" field.
func (mu *MeetingUpdate) SetDurationSeconds(f float64) *MeetingUpdate {
	mu.mutation.ResetDurationSeconds()
	mu.mutation.SetDurationSeconds(f)
	return mu
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableDurationSeconds(f *float64) *MeetingUpdate {
	if f != nil {
		mu.SetDurationSeconds(*f)
	}
	return mu
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (mu *MeetingUpdate) AddDurationSeconds(f float64) *MeetingUpdate {
	mu.mutation.AddDurationSeconds(f)
	return mu
}

// SetMeetingType sets the "meeting_type" field.
func (mu *MeetingUpdate) SetMeetingType(s string) *MeetingUpdate {
	mu.mutation.SetMeetingType(s)
	return mu
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableMeetingType(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetMeetingType(*s)
	}
	return mu
}

// ClearMeetingType clears the value of the "meeting_type" field.
func (mu *MeetingUpdate) ClearMeetingType() *MeetingUpdate {
	mu.mutation.ClearMeetingType()
	return mu
}

// SetAudioInputType sets the "audio_input_type" field.
func (mu *MeetingUpdate) SetAudioInputType(s string) *MeetingUpdate {
	mu.mutation.SetAudioInputType(s)
	return mu
}

// SetNillableAudioInputType sets the "audio_input_type" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableAudioInputType(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetAudioInputType(*s)
	}
	return mu
}

// ClearAudioInputType clears the value of the "audio_input_type" field.
func (mu *MeetingUpdate) ClearAudioInputType() *MeetingUpdate {
	mu.mutation.ClearAudioInputType()
	return mu
}

// SetAudioFilePath sets the "audio_file_path" field.
func (mu *MeetingUpdate) SetAudioFilePath(s string) *MeetingUpdate {
	mu.mutation.SetAudioFilePath(s)
	return mu
}

// SetNillableAudioFilePath sets the "audio_file_path" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableAudioFilePath(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetAudioFilePath(*s)
	}
	return mu
}

// SetState sets the "state" field.
func (mu *MeetingUpdate) SetState(m meeting.State) *MeetingUpdate {
	mu.mutation.SetState(m)
	return mu
}

// SetNillableState sets the "state" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableState(m *meeting.State) *MeetingUpdate {
	if m != nil {
		mu.SetState(*m)
	}
	return mu
}

// SetStateChangedAt sets the "state_changed_at" field.
func (mu *MeetingUpdate) SetStateChangedAt(t time.Time) *MeetingUpdate {
	mu.mutation.SetStateChangedAt(t)
	return mu
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableStateChangedAt(t *time.Time) *MeetingUpdate {
	if t != nil {
		mu.SetStateChangedAt(*t)
	}
	return mu
}

// SetErrorMessage sets the "error_message" field.
func (mu *MeetingUpdate) SetErrorMessage(s string) *MeetingUpdate {
	mu.mutation.SetErrorMessage(s)
	return mu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableErrorMessage(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetErrorMessage(*s)
	}
	return mu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (mu *MeetingUpdate) ClearErrorMessage() *MeetingUpdate {
	mu.mutation.ClearErrorMessage()
	return mu
}

// SetTranscriptText sets the "transcript_text" field.
func (mu *MeetingUpdate) SetTranscriptText(s string) *MeetingUpdate {
	mu.mutation.SetTranscriptText(s)
	return mu
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableTranscriptText(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetTranscriptText(*s)
	}
	return mu
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (mu *MeetingUpdate) ClearTranscriptText() *MeetingUpdate {
	mu.mutation.ClearTranscriptText()
	return mu
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (mu *MeetingUpdate) SetTranscriptSegments(m []models.Segment) *MeetingUpdate {
	mu.mutation.SetTranscriptSegments(m)
	return mu
}

// AppendTranscriptSegments appends m to the "transcript_segments" field.
func (mu *MeetingUpdate) AppendTranscriptSegments(m []models.Segment) *MeetingUpdate {
	mu.mutation.AppendTranscriptSegments(m)
	return mu
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (mu *MeetingUpdate) ClearTranscriptSegments() *MeetingUpdate {
	mu.mutation.ClearTranscriptSegments()
	return mu
}

// SetCorrectedTranscriptText sets the "corrected_transcript_text" field.
func (mu *MeetingUpdate) SetCorrectedTranscriptText(s string) *MeetingUpdate {
	mu.mutation.SetCorrectedTranscriptText(s)
	return mu
}

// SetNillableCorrectedTranscriptText sets the "corrected_transcript_text" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableCorrectedTranscriptText(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetCorrectedTranscriptText(*s)
	}
	return mu
}

// ClearCorrectedTranscriptText clears the value of the "corrected_transcript_text" field.
func (mu *MeetingUpdate) ClearCorrectedTranscriptText() *MeetingUpdate {
	mu.mutation.ClearCorrectedTranscriptText()
	return mu
}

// SetCorrectedTranscriptSegments sets the "corrected_transcript_segments" field.
func (mu *MeetingUpdate) SetCorrectedTranscriptSegments(m []models.Segment) *MeetingUpdate {
	mu.mutation.SetCorrectedTranscriptSegments(m)
	return mu
}

// AppendCorrectedTranscriptSegments appends m to the "corrected_transcript_segments" field.
func (mu *MeetingUpdate) AppendCorrectedTranscriptSegments(m []models.Segment) *MeetingUpdate {
	mu.mutation.AppendCorrectedTranscriptSegments(m)
	return mu
}

// ClearCorrectedTranscriptSegments clears the value of the "corrected_transcript_segments" field.
func (mu *MeetingUpdate) ClearCorrectedTranscriptSegments() *MeetingUpdate {
	mu.mutation.ClearCorrectedTranscriptSegments()
	return mu
}

// SetCorrectionQuestions sets the "correction_questions" field.
func (mu *MeetingUpdate) SetCorrectionQuestions(mq []models.CorrectionQuestion) *MeetingUpdate {
	mu.mutation.SetCorrectionQuestions(mq)
	return mu
}

// AppendCorrectionQuestions appends mq to the "correction_questions" field.
func (mu *MeetingUpdate) AppendCorrectionQuestions(mq []models.CorrectionQuestion) *MeetingUpdate {
	mu.mutation.AppendCorrectionQuestions(mq)
	return mu
}

// ClearCorrectionQuestions clears the value of the "correction_questions" field.
func (mu *MeetingUpdate) ClearCorrectionQuestions() *MeetingUpdate {
	mu.mutation.ClearCorrectionQuestions()
	return mu
}

// SetLanguage sets the "language" field.
func (mu *MeetingUpdate) SetLanguage(s string) *MeetingUpdate {
	mu.mutation.SetLanguage(s)
	return mu
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (mu *MeetingUpdate) SetNillableLanguage(s *string) *MeetingUpdate {
	if s != nil {
		mu.SetLanguage(*s)
	}
	return mu
}

// ClearLanguage clears the value of the "language" field.
func (mu *MeetingUpdate) ClearLanguage() *MeetingUpdate {
	mu.mutation.ClearLanguage()
	return mu
}

// Mutation returns the MeetingMutation object of the builder.
func (mu *MeetingUpdate) Mutation() *MeetingMutation {
	return mu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MeetingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MeetingUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MeetingUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MeetingUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mu *MeetingUpdate) check() error {
	if v, ok := mu.mutation.State(); ok {
		if err := meeting.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Meeting.state": %w`, err)}
		}
	}
	return nil
}

func (mu *MeetingUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.ClientID(); ok {
		_spec.SetField(meeting.FieldClientID, field.TypeString, value)
	}
	if value, ok := mu.mutation.ProjectID(); ok {
		_spec.SetField(meeting.FieldProjectID, field.TypeString, value)
	}
	if mu.mutation.ProjectIDCleared() {
		_spec.ClearField(meeting.FieldProjectID, field.TypeString)
	}
	if value, ok := mu.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if mu.mutation.TitleCleared() {
		_spec.ClearField(meeting.FieldTitle, field.TypeString)
	}
	if value, ok := mu.mutation.StartedAt(); ok {
		_spec.SetField(meeting.FieldStartedAt, field.TypeTime, value)
	}
	if mu.mutation.StartedAtCleared() {
		_spec.ClearField(meeting.FieldStartedAt, field.TypeTime)
	}
	if value, ok := mu.mutation.StoppedAt(); ok {
		_spec.SetField(meeting.FieldStoppedAt, field.TypeTime, value)
	}
	if mu.mutation.StoppedAtCleared() {
		_spec.ClearField(meeting.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := mu.mutation.DurationSeconds(); ok {
		_spec.SetField(meeting.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := mu.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(meeting.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := mu.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeString, value)
	}
	if mu.mutation.MeetingTypeCleared() {
		_spec.ClearField(meeting.FieldMeetingType, field.TypeString)
	}
	if value, ok := mu.mutation.AudioInputType(); ok {
		_spec.SetField(meeting.FieldAudioInputType, field.TypeString, value)
	}
	if mu.mutation.AudioInputTypeCleared() {
		_spec.ClearField(meeting.FieldAudioInputType, field.TypeString)
	}
	if value, ok := mu.mutation.AudioFilePath(); ok {
		_spec.SetField(meeting.FieldAudioFilePath, field.TypeString, value)
	}
	if value, ok := mu.mutation.State(); ok {
		_spec.SetField(meeting.FieldState, field.TypeEnum, value)
	}
	if value, ok := mu.mutation.StateChangedAt(); ok {
		_spec.SetField(meeting.FieldStateChangedAt, field.TypeTime, value)
	}
	if value, ok := mu.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if mu.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := mu.mutation.TranscriptText(); ok {
		_spec.SetField(meeting.FieldTranscriptText, field.TypeString, value)
	}
	if mu.mutation.TranscriptTextCleared() {
		_spec.ClearField(meeting.FieldTranscriptText, field.TypeString)
	}
	if value, ok := mu.mutation.TranscriptSegments(); ok {
		_spec.SetField(meeting.FieldTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldTranscriptSegments, value)
		})
	}
	if mu.mutation.TranscriptSegmentsCleared() {
		_spec.ClearField(meeting.FieldTranscriptSegments, field.TypeJSON)
	}
	if value, ok := mu.mutation.CorrectedTranscriptText(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptText, field.TypeString, value)
	}
	if mu.mutation.CorrectedTranscriptTextCleared() {
		_spec.ClearField(meeting.FieldCorrectedTranscriptText, field.TypeString)
	}
	if value, ok := mu.mutation.CorrectedTranscriptSegments(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedCorrectedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldCorrectedTranscriptSegments, value)
		})
	}
	if mu.mutation.CorrectedTranscriptSegmentsCleared() {
		_spec.ClearField(meeting.FieldCorrectedTranscriptSegments, field.TypeJSON)
	}
	if value, ok := mu.mutation.CorrectionQuestions(); ok {
		_spec.SetField(meeting.FieldCorrectionQuestions, field.TypeJSON, value)
	}
	if value, ok := mu.mutation.AppendedCorrectionQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldCorrectionQuestions, value)
		})
	}
	if mu.mutation.CorrectionQuestionsCleared() {
		_spec.ClearField(meeting.FieldCorrectionQuestions, field.TypeJSON)
	}
	if value, ok := mu.mutation.Language(); ok {
		_spec.SetField(meeting.FieldLanguage, field.TypeString, value)
	}
	if mu.mutation.LanguageCleared() {
		_spec.ClearField(meeting.FieldLanguage, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MeetingUpdateOne is the builder for updating a single Meeting entity.
type MeetingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeetingMutation
}

// SetClientID sets the "client_id" field.
func (muo *MeetingUpdateOne) SetClientID(s string) *MeetingUpdateOne {
	muo.mutation.SetClientID(s)
	return muo
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableClientID(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetClientID(*s)
	}
	return muo
}

// SetProjectID sets the "project_id" field.
func (muo *MeetingUpdateOne) SetProjectID(s string) *MeetingUpdateOne {
	muo.mutation.SetProjectID(s)
	return muo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableProjectID(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetProjectID(*s)
	}
	return muo
}

// ClearProjectID clears the value of the "project_id" field.
func (muo *MeetingUpdateOne) ClearProjectID() *MeetingUpdateOne {
	muo.mutation.ClearProjectID()
	return muo
}

// SetTitle sets the "title" field.
func (muo *MeetingUpdateOne) SetTitle(s string) *MeetingUpdateOne {
	muo.mutation.SetTitle(s)
	return muo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableTitle(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetTitle(*s)
	}
	return muo
}

// ClearTitle clears the value of the "title" field.
func (muo *MeetingUpdateOne) ClearTitle() *MeetingUpdateOne {
	muo.mutation.ClearTitle()
	return muo
}

// SetStartedAt sets the "started_at" field.
func (muo *MeetingUpdateOne) SetStartedAt(t time.Time) *MeetingUpdateOne {
	muo.mutation.SetStartedAt(t)
	return muo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableStartedAt(t *time.Time) *MeetingUpdateOne {
	if t != nil {
		muo.SetStartedAt(*t)
	}
	return muo
}

// ClearStartedAt clears the value of the "started_at" field.
func (muo *MeetingUpdateOne) ClearStartedAt() *MeetingUpdateOne {
	muo.mutation.ClearStartedAt()
	return muo
}

// SetStoppedAt sets the "stopped_at" field.
func (muo *MeetingUpdateOne) SetStoppedAt(t time.Time) *MeetingUpdateOne {
	muo.mutation.SetStoppedAt(t)
	return muo
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableStoppedAt(t *time.Time) *MeetingUpdateOne {
	if t != nil {
		muo.SetStoppedAt(*t)
	}
	return muo
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (muo *MeetingUpdateOne) ClearStoppedAt() *MeetingUpdateOne {
	muo.mutation.ClearStoppedAt()
	return muo
}

// SetDurationSeconds sets the "duration_seconds" field.
func (muo *MeetingUpdateOne) SetDurationSeconds(f float64) *MeetingUpdateOne {
	muo.mutation.ResetDurationSeconds()
	muo.mutation.SetDurationSeconds(f)
	return muo
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableDurationSeconds(f *float64) *MeetingUpdateOne {
	if f != nil {
		muo.SetDurationSeconds(*f)
	}
	return muo
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (muo *MeetingUpdateOne) AddDurationSeconds(f float64) *MeetingUpdateOne {
	muo.mutation.AddDurationSeconds(f)
	return muo
}

// SetMeetingType sets the "meeting_type" field.
func (muo *MeetingUpdateOne) SetMeetingType(s string) *MeetingUpdateOne {
	muo.mutation.SetMeetingType(s)
	return muo
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableMeetingType(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetMeetingType(*s)
	}
	return muo
}

// ClearMeetingType clears the value of the "meeting_type" field.
func (muo *MeetingUpdateOne) ClearMeetingType() *MeetingUpdateOne {
	muo.mutation.ClearMeetingType()
	return muo
}

// SetAudioInputType sets the "audio_input_type" field.
func (muo *MeetingUpdateOne) SetAudioInputType(s string) *MeetingUpdateOne {
	muo.mutation.SetAudioInputType(s)
	return muo
}

// SetNillableAudioInputType sets the "audio_input_type" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableAudioInputType(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetAudioInputType(*s)
	}
	return muo
}

// ClearAudioInputType clears the value of the "audio_input_type" field.
func (muo *MeetingUpdateOne) ClearAudioInputType() *MeetingUpdateOne {
	muo.mutation.ClearAudioInputType()
	return muo
}

// SetAudioFilePath sets the "audio_file_path" field.
func (muo *MeetingUpdateOne) SetAudioFilePath(s string) *MeetingUpdateOne {
	muo.mutation.SetAudioFilePath(s)
	return muo
}

// SetNillableAudioFilePath sets the "audio_file_path" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableAudioFilePath(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetAudioFilePath(*s)
	}
	return muo
}

// SetState sets the "state" field.
func (muo *MeetingUpdateOne) SetState(m meeting.State) *MeetingUpdateOne {
	muo.mutation.SetState(m)
	return muo
}

// SetNillableState sets the "state" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableState(m *meeting.State) *MeetingUpdateOne {
	if m != nil {
		muo.SetState(*m)
	}
	return muo
}

// SetStateChangedAt sets the "state_changed_at" field.
func (muo *MeetingUpdateOne) SetStateChangedAt(t time.Time) *MeetingUpdateOne {
	muo.mutation.SetStateChangedAt(t)
	return muo
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableStateChangedAt(t *time.Time) *MeetingUpdateOne {
	if t != nil {
		muo.SetStateChangedAt(*t)
	}
	return muo
}

// SetErrorMessage sets the "error_message" field.
func (muo *MeetingUpdateOne) SetErrorMessage(s string) *MeetingUpdateOne {
	muo.mutation.SetErrorMessage(s)
	return muo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableErrorMessage(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetErrorMessage(*s)
	}
	return muo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (muo *MeetingUpdateOne) ClearErrorMessage() *MeetingUpdateOne {
	muo.mutation.ClearErrorMessage()
	return muo
}

// SetTranscriptText sets the "transcript_text" field.
func (muo *MeetingUpdateOne) SetTranscriptText(s string) *MeetingUpdateOne {
	muo.mutation.SetTranscriptText(s)
	return muo
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableTranscriptText(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetTranscriptText(*s)
	}
	return muo
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (muo *MeetingUpdateOne) ClearTranscriptText() *MeetingUpdateOne {
	muo.mutation.ClearTranscriptText()
	return muo
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (muo *MeetingUpdateOne) SetTranscriptSegments(m []models.Segment) *MeetingUpdateOne {
	muo.mutation.SetTranscriptSegments(m)
	return muo
}

// AppendTranscriptSegments appends m to the "transcript_segments" field.
func (muo *MeetingUpdateOne) AppendTranscriptSegments(m []models.Segment) *MeetingUpdateOne {
	muo.mutation.AppendTranscriptSegments(m)
	return muo
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (muo *MeetingUpdateOne) ClearTranscriptSegments() *MeetingUpdateOne {
	muo.mutation.ClearTranscriptSegments()
	return muo
}

// SetCorrectedTranscriptText sets the "corrected_transcript_text" field.
func (muo *MeetingUpdateOne) SetCorrectedTranscriptText(s string) *MeetingUpdateOne {
	muo.mutation.SetCorrectedTranscriptText(s)
	return muo
}

// SetNillableCorrectedTranscriptText sets the "corrected_transcript_text" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableCorrectedTranscriptText(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetCorrectedTranscriptText(*s)
	}
	return muo
}

// ClearCorrectedTranscriptText clears the value of the "corrected_transcript_text" field.
func (muo *MeetingUpdateOne) ClearCorrectedTranscriptText() *MeetingUpdateOne {
	muo.mutation.ClearCorrectedTranscriptText()
	return muo
}

// SetCorrectedTranscriptSegments sets the "corrected_transcript_segments" field.
func (muo *MeetingUpdateOne) SetCorrectedTranscriptSegments(m []models.Segment) *MeetingUpdateOne {
	muo.mutation.SetCorrectedTranscriptSegments(m)
	return muo
}

// AppendCorrectedTranscriptSegments appends m to the "corrected_transcript_segments" field.
func (muo *MeetingUpdateOne) AppendCorrectedTranscriptSegments(m []models.Segment) *MeetingUpdateOne {
	muo.mutation.AppendCorrectedTranscriptSegments(m)
	return muo
}

// ClearCorrectedTranscriptSegments clears the value of the "corrected_transcript_segments" field.
func (muo *MeetingUpdateOne) ClearCorrectedTranscriptSegments() *MeetingUpdateOne {
	muo.mutation.ClearCorrectedTranscriptSegments()
	return muo
}

// SetCorrectionQuestions sets the "correction_questions" field.
func (muo *MeetingUpdateOne) SetCorrectionQuestions(mq []models.CorrectionQuestion) *MeetingUpdateOne {
	muo.mutation.SetCorrectionQuestions(mq)
	return muo
}

// AppendCorrectionQuestions appends mq to the "correction_questions" field.
func (muo *MeetingUpdateOne) AppendCorrectionQuestions(mq []models.CorrectionQuestion) *MeetingUpdateOne {
	muo.mutation.AppendCorrectionQuestions(mq)
	return muo
}

// ClearCorrectionQuestions clears the value of the "correction_questions" field.
func (muo *MeetingUpdateOne) ClearCorrectionQuestions() *MeetingUpdateOne {
	muo.mutation.ClearCorrectionQuestions()
	return muo
}

// SetLanguage sets the "language" field.
func (muo *MeetingUpdateOne) SetLanguage(s string) *MeetingUpdateOne {
	muo.mutation.SetLanguage(s)
	return muo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (muo *MeetingUpdateOne) SetNillableLanguage(s *string) *MeetingUpdateOne {
	if s != nil {
		muo.SetLanguage(*s)
	}
	return muo
}

// ClearLanguage clears the value of the "language" field.
func (muo *MeetingUpdateOne) ClearLanguage() *MeetingUpdateOne {
	muo.mutation.ClearLanguage()
	return muo
}

// Mutation returns the MeetingMutation object of the builder.
func (muo *MeetingUpdateOne) Mutation() *MeetingMutation {
	return muo.mutation
}

// Where appends a list predicates to the MeetingUpdate builder.
func (muo *MeetingUpdateOne) Where(ps ...predicate.Meeting) *MeetingUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MeetingUpdateOne) Select(field string, fields ...string) *MeetingUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Meeting entity.
func (muo *MeetingUpdateOne) Save(ctx context.Context) (*Meeting, error) {
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MeetingUpdateOne) SaveX(ctx context.Context) *Meeting {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MeetingUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MeetingUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (muo *MeetingUpdateOne) check() error {
	if v, ok := muo.mutation.State(); ok {
		if err := meeting.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Meeting.state": %w`, err)}
		}
	}
	return nil
}

func (muo *MeetingUpdateOne) sqlSave(ctx context.Context) (_node *Meeting, err error) {
	if err := muo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Meeting.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for _, f := range fields {
			if !meeting.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meeting.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.ClientID(); ok {
		_spec.SetField(meeting.FieldClientID, field.TypeString, value)
	}
	if value, ok := muo.mutation.ProjectID(); ok {
		_spec.SetField(meeting.FieldProjectID, field.TypeString, value)
	}
	if muo.mutation.ProjectIDCleared() {
		_spec.ClearField(meeting.FieldProjectID, field.TypeString)
	}
	if value, ok := muo.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
	}
	if muo.mutation.TitleCleared() {
		_spec.ClearField(meeting.FieldTitle, field.TypeString)
	}
	if value, ok := muo.mutation.StartedAt(); ok {
		_spec.SetField(meeting.FieldStartedAt, field.TypeTime, value)
	}
	if muo.mutation.StartedAtCleared() {
		_spec.ClearField(meeting.FieldStartedAt, field.TypeTime)
	}
	if value, ok := muo.mutation.StoppedAt(); ok {
		_spec.SetField(meeting.FieldStoppedAt, field.TypeTime, value)
	}
	if muo.mutation.StoppedAtCleared() {
		_spec.ClearField(meeting.FieldStoppedAt, field.TypeTime)
	}
	if value, ok := muo.mutation.DurationSeconds(); ok {
		_spec.SetField(meeting.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := muo.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(meeting.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := muo.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeString, value)
	}
	if muo.mutation.MeetingTypeCleared() {
		_spec.ClearField(meeting.FieldMeetingType, field.TypeString)
	}
	if value, ok := muo.mutation.AudioInputType(); ok {
		_spec.SetField(meeting.FieldAudioInputType, field.TypeString, value)
	}
	if muo.mutation.AudioInputTypeCleared() {
		_spec.ClearField(meeting.FieldAudioInputType, field.TypeString)
	}
	if value, ok := muo.mutation.AudioFilePath(); ok {
		_spec.SetField(meeting.FieldAudioFilePath, field.TypeString, value)
	}
	if value, ok := muo.mutation.State(); ok {
		_spec.SetField(meeting.FieldState, field.TypeEnum, value)
	}
	if value, ok := muo.mutation.StateChangedAt(); ok {
		_spec.SetField(meeting.FieldStateChangedAt, field.TypeTime, value)
	}
	if value, ok := muo.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
	}
	if muo.mutation.ErrorMessageCleared() {
		_spec.ClearField(meeting.FieldErrorMessage, field.TypeString)
	}
	if value, ok := muo.mutation.TranscriptText(); ok {
		_spec.SetField(meeting.FieldTranscriptText, field.TypeString, value)
	}
	if muo.mutation.TranscriptTextCleared() {
		_spec.ClearField(meeting.FieldTranscriptText, field.TypeString)
	}
	if value, ok := muo.mutation.TranscriptSegments(); ok {
		_spec.SetField(meeting.FieldTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldTranscriptSegments, value)
		})
	}
	if muo.mutation.TranscriptSegmentsCleared() {
		_spec.ClearField(meeting.FieldTranscriptSegments, field.TypeJSON)
	}
	if value, ok := muo.mutation.CorrectedTranscriptText(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptText, field.TypeString, value)
	}
	if muo.mutation.CorrectedTranscriptTextCleared() {
		_spec.ClearField(meeting.FieldCorrectedTranscriptText, field.TypeString)
	}
	if value, ok := muo.mutation.CorrectedTranscriptSegments(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedCorrectedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldCorrectedTranscriptSegments, value)
		})
	}
	if muo.mutation.CorrectedTranscriptSegmentsCleared() {
		_spec.ClearField(meeting.FieldCorrectedTranscriptSegments, field.TypeJSON)
	}
	if value, ok := muo.mutation.CorrectionQuestions(); ok {
		_spec.SetField(meeting.FieldCorrectionQuestions, field.TypeJSON, value)
	}
	if value, ok := muo.mutation.AppendedCorrectionQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, meeting.FieldCorrectionQuestions, value)
		})
	}
	if muo.mutation.CorrectionQuestionsCleared() {
		_spec.ClearField(meeting.FieldCorrectionQuestions, field.TypeJSON)
	}
	if value, ok := muo.mutation.Language(); ok {
		_spec.SetField(meeting.FieldLanguage, field.TypeString, value)
	}
	if muo.mutation.LanguageCleared() {
		_spec.ClearField(meeting.FieldLanguage, field.TypeString)
	}
	_node = &Meeting{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meeting.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
