// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// MeetingCreate is the builder for creating a Meeting entity.
type MeetingCreate struct {
	config
	mutation *MeetingMutation
	hooks    []Hook
}

// SetClientID sets the "client_id" field.
func (mc *MeetingCreate) SetClientID(s string) *MeetingCreate {
	mc.mutation.SetClientID(s)
	return mc
}

// SetProjectID sets the "project_id" field.
func (mc *MeetingCreate) SetProjectID(s string) *MeetingCreate {
	mc.mutation.SetProjectID(s)
	return mc
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableProjectID(s *string) *MeetingCreate {
	if s != nil {
		mc.SetProjectID(*s)
	}
	return mc
}

// SetTitle sets the "title" field.
func (mc *MeetingCreate) SetTitle(s string) *MeetingCreate {
	mc.mutation.SetTitle(s)
	return mc
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableTitle(s *string) *MeetingCreate {
	if s != nil {
		mc.SetTitle(*s)
	}
	return mc
}

// SetStartedAt sets the "started_at" field.
func (mc *MeetingCreate) SetStartedAt(t time.Time) *MeetingCreate {
	mc.mutation.SetStartedAt(t)
	return mc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableStartedAt(t *time.Time) *MeetingCreate {
	if t != nil {
		mc.SetStartedAt(*t)
	}
	return mc
}

// SetStoppedAt sets the "stopped_at" field.
func (mc *MeetingCreate) SetStoppedAt(t time.Time) *MeetingCreate {
	mc.mutation.SetStoppedAt(t)
	return mc
}

// SetNillableStoppedAt sets the "stopped_at" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableStoppedAt(t *time.Time) *MeetingCreate {
	if t != nil {
		mc.SetStoppedAt(*t)
	}
	return mc
}

// SetDurationSeconds sets the "duration_seconds" field.
func (mc *MeetingCreate) SetDurationSeconds(f float64) *MeetingCreate {
	mc.mutation.SetDurationSeconds(f)
	return mc
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableDurationSeconds(f *float64) *MeetingCreate {
	if f != nil {
		mc.SetDurationSeconds(*f)
	}
	return mc
}

// SetMeetingType sets the "meeting_type" field.
func (mc *MeetingCreate) SetMeetingType(s string) *MeetingCreate {
	mc.mutation.SetMeetingType(s)
	return mc
}

// SetNillableMeetingType sets the "meeting_type" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableMeetingType(s *string) *MeetingCreate {
	if s != nil {
		mc.SetMeetingType(*s)
	}
	return mc
}

// SetAudioInputType sets the "audio_input_type" field.
func (mc *MeetingCreate) SetAudioInputType(s string) *MeetingCreate {
	mc.mutation.SetAudioInputType(s)
	return mc
}

// SetNillableAudioInputType sets the "audio_input_type" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableAudioInputType(s *string) *MeetingCreate {
	if s != nil {
		mc.SetAudioInputType(*s)
	}
	return mc
}

// SetAudioFilePath sets the "audio_file_path" field.
func (mc *MeetingCreate) SetAudioFilePath(s string) *MeetingCreate {
	mc.mutation.SetAudioFilePath(s)
	return mc
}

// SetState sets the "state" field.
func (mc *MeetingCreate) SetState(m meeting.State) *MeetingCreate {
	mc.mutation.SetState(m)
	return mc
}

// SetNillableState sets the "state" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableState(m *meeting.State) *MeetingCreate {
	if m != nil {
		mc.SetState(*m)
	}
	return mc
}

// SetStateChangedAt sets the "state_changed_at" field.
func (mc *MeetingCreate) SetStateChangedAt(t time.Time) *MeetingCreate {
	mc.mutation.SetStateChangedAt(t)
	return mc
}

// SetNillableStateChangedAt sets the "state_changed_at" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableStateChangedAt(t *time.Time) *MeetingCreate {
	if t != nil {
		mc.SetStateChangedAt(*t)
	}
	return mc
}

// SetErrorMessage sets the "error_message" field.
func (mc *MeetingCreate) SetErrorMessage(s string) *MeetingCreate {
	mc.mutation.SetErrorMessage(s)
	return mc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableErrorMessage(s *string) *MeetingCreate {
	if s != nil {
		mc.SetErrorMessage(*s)
	}
	return mc
}

// SetTranscriptText sets the "transcript_text" field.
func (mc *MeetingCreate) SetTranscriptText(s string) *MeetingCreate {
	mc.mutation.SetTranscriptText(s)
	return mc
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableTranscriptText(s *string) *MeetingCreate {
	if s != nil {
		mc.SetTranscriptText(*s)
	}
	return mc
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (mc *MeetingCreate) SetTranscriptSegments(m []models.Segment) *MeetingCreate {
	mc.mutation.SetTranscriptSegments(m)
	return mc
}

// SetCorrectedTranscriptText sets the "corrected_transcript_text" field.
func (mc *MeetingCreate) SetCorrectedTranscriptText(s string) *MeetingCreate {
	mc.mutation.SetCorrectedTranscriptText(s)
	return mc
}

// SetNillableCorrectedTranscriptText sets the "corrected_transcript_text" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableCorrectedTranscriptText(s *string) *MeetingCreate {
	if s != nil {
		mc.SetCorrectedTranscriptText(*s)
	}
	return mc
}

// SetCorrectedTranscriptSegments sets the "corrected_transcript_segments" field.
func (mc *MeetingCreate) SetCorrectedTranscriptSegments(m []models.Segment) *MeetingCreate {
	mc.mutation.SetCorrectedTranscriptSegments(m)
	return mc
}

// SetCorrectionQuestions sets the "correction_questions" field.
func (mc *MeetingCreate) SetCorrectionQuestions(mq []models.CorrectionQuestion) *MeetingCreate {
	mc.mutation.SetCorrectionQuestions(mq)
	return mc
}

// SetLanguage sets the "language" field.
func (mc *MeetingCreate) SetLanguage(s string) *MeetingCreate {
	mc.mutation.SetLanguage(s)
	return mc
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableLanguage(s *string) *MeetingCreate {
	if s != nil {
		mc.SetLanguage(*s)
	}
	return mc
}

// SetCreatedAt sets the "created_at" field.
func (mc *MeetingCreate) SetCreatedAt(t time.Time) *MeetingCreate {
	mc.mutation.SetCreatedAt(t)
	return mc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mc *MeetingCreate) SetNillableCreatedAt(t *time.Time) *MeetingCreate {
	if t != nil {
		mc.SetCreatedAt(*t)
	}
	return mc
}

// SetID sets the "id" field.
func (mc *MeetingCreate) SetID(s string) *MeetingCreate {
	mc.mutation.SetID(s)
	return mc
}

// Mutation returns the MeetingMutation object of the builder.
func (mc *MeetingCreate) Mutation() *MeetingMutation {
	return mc.mutation
}

// Save creates the Meeting in the database.
func (mc *MeetingCreate) Save(ctx context.Context) (*Meeting, error) {
	mc.defaults()
	return withHooks(ctx, mc.sqlSave, mc.mutation, mc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mc *MeetingCreate) SaveX(ctx context.Context) *Meeting {
	v, err := mc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mc *MeetingCreate) Exec(ctx context.Context) error {
	_, err := mc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mc *MeetingCreate) ExecX(ctx context.Context) {
	if err := mc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mc *MeetingCreate) defaults() {
	if _, ok := mc.mutation.DurationSeconds(); !ok {
		v := meeting.DefaultDurationSeconds
		mc.mutation.SetDurationSeconds(v)
	}
	if _, ok := mc.mutation.State(); !ok {
		v := meeting.DefaultState
		mc.mutation.SetState(v)
	}
	if _, ok := mc.mutation.StateChangedAt(); !ok {
		v := meeting.DefaultStateChangedAt()
		mc.mutation.SetStateChangedAt(v)
	}
	if _, ok := mc.mutation.CreatedAt(); !ok {
		v := meeting.DefaultCreatedAt()
		mc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mc *MeetingCreate) check() error {
	if _, ok := mc.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "Meeting.client_id"`)}
	}
	if _, ok := mc.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`ent: missing required field "Meeting.duration_seconds"`)}
	}
	if _, ok := mc.mutation.AudioFilePath(); !ok {
		return &ValidationError{Name: "audio_file_path", err: errors.New(`ent: missing required field "Meeting.audio_file_path"`)}
	}
	if _, ok := mc.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Meeting.state"`)}
	}
	if v, ok := mc.mutation.State(); ok {
		if err := meeting.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Meeting.state": %w`, err)}
		}
	}
	if _, ok := mc.mutation.StateChangedAt(); !ok {
		return &ValidationError{Name: "state_changed_at", err: errors.New(`ent: missing required field "Meeting.state_changed_at"`)}
	}
	if _, ok := mc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Meeting.created_at"`)}
	}
	return nil
}

func (mc *MeetingCreate) sqlSave(ctx context.Context) (*Meeting, error) {
	if err := mc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Meeting.ID type: %T", _spec.ID.Value)
		}
	}
	mc.mutation.id = &_node.ID
	mc.mutation.done = true
	return _node, nil
}

func (mc *MeetingCreate) createSpec() (*Meeting, *sqlgraph.CreateSpec) {
	var (
		_node = &Meeting{config: mc.config}
		_spec = sqlgraph.NewCreateSpec(meeting.Table, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	)
	if id, ok := mc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := mc.mutation.ClientID(); ok {
		_spec.SetField(meeting.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := mc.mutation.ProjectID(); ok {
		_spec.SetField(meeting.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := mc.mutation.Title(); ok {
		_spec.SetField(meeting.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := mc.mutation.StartedAt(); ok {
		_spec.SetField(meeting.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := mc.mutation.StoppedAt(); ok {
		_spec.SetField(meeting.FieldStoppedAt, field.TypeTime, value)
		_node.StoppedAt = &value
	}
	if value, ok := mc.mutation.DurationSeconds(); ok {
		_spec.SetField(meeting.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = value
	}
	if value, ok := mc.mutation.MeetingType(); ok {
		_spec.SetField(meeting.FieldMeetingType, field.TypeString, value)
		_node.MeetingType = value
	}
	if value, ok := mc.mutation.AudioInputType(); ok {
		_spec.SetField(meeting.FieldAudioInputType, field.TypeString, value)
		_node.AudioInputType = value
	}
	if value, ok := mc.mutation.AudioFilePath(); ok {
		_spec.SetField(meeting.FieldAudioFilePath, field.TypeString, value)
		_node.AudioFilePath = value
	}
	if value, ok := mc.mutation.State(); ok {
		_spec.SetField(meeting.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := mc.mutation.StateChangedAt(); ok {
		_spec.SetField(meeting.FieldStateChangedAt, field.TypeTime, value)
		_node.StateChangedAt = value
	}
	if value, ok := mc.mutation.ErrorMessage(); ok {
		_spec.SetField(meeting.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := mc.mutation.TranscriptText(); ok {
		_spec.SetField(meeting.FieldTranscriptText, field.TypeString, value)
		_node.TranscriptText = value
	}
	if value, ok := mc.mutation.TranscriptSegments(); ok {
		_spec.SetField(meeting.FieldTranscriptSegments, field.TypeJSON, value)
		_node.TranscriptSegments = value
	}
	if value, ok := mc.mutation.CorrectedTranscriptText(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptText, field.TypeString, value)
		_node.CorrectedTranscriptText = &value
	}
	if value, ok := mc.mutation.CorrectedTranscriptSegments(); ok {
		_spec.SetField(meeting.FieldCorrectedTranscriptSegments, field.TypeJSON, value)
		_node.CorrectedTranscriptSegments = value
	}
	if value, ok := mc.mutation.CorrectionQuestions(); ok {
		_spec.SetField(meeting.FieldCorrectionQuestions, field.TypeJSON, value)
		_node.CorrectionQuestions = value
	}
	if value, ok := mc.mutation.Language(); ok {
		_spec.SetField(meeting.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := mc.mutation.CreatedAt(); ok {
		_spec.SetField(meeting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MeetingCreateBulk is the builder for creating many Meeting entities in bulk.
type MeetingCreateBulk struct {
	config
	err      error
	builders []*MeetingCreate
}

// Save creates the Meeting entities in the database.
func (mcb *MeetingCreateBulk) Save(ctx context.Context) ([]*Meeting, error) {
	if mcb.err != nil {
		return nil, mcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mcb.builders))
	nodes := make([]*Meeting, len(mcb.builders))
	mutators := make([]Mutator, len(mcb.builders))
	for i := range mcb.builders {
		func(i int, root context.Context) {
			builder := mcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeetingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, mcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, mcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mcb *MeetingCreateBulk) SaveX(ctx context.Context) []*Meeting {
	v, err := mcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mcb *MeetingCreateBulk) Exec(ctx context.Context) error {
	_, err := mcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcb *MeetingCreateBulk) ExecX(ctx context.Context) {
	if err := mcb.Exec(ctx); err != nil {
		panic(err)
	}
}
