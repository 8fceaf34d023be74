// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// ClientID applies equality check predicate on the "client_id" field. It's identical to ClientIDEQ.
func ClientID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldClientID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProjectID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStartedAt, v))
}

// StoppedAt applies equality check predicate on the "stopped_at" field. It's identical to StoppedAtEQ.
func StoppedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStoppedAt, v))
}

// DurationSeconds applies equality check predicate on the "duration_seconds" field. It's identical to DurationSecondsEQ.
func DurationSeconds(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldDurationSeconds, v))
}

// MeetingType applies equality check predicate on the "meeting_type" field. It's identical to MeetingTypeEQ.
func MeetingType(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldMeetingType, v))
}

// AudioInputType applies equality check predicate on the "audio_input_type" field. It's identical to AudioInputTypeEQ.
func AudioInputType(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAudioInputType, v))
}

// AudioFilePath applies equality check predicate on the "audio_file_path" field. It's identical to AudioFilePathEQ.
func AudioFilePath(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAudioFilePath, v))
}

// StateChangedAt applies equality check predicate on the "state_changed_at" field. It's identical to StateChangedAtEQ.
func StateChangedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStateChangedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldErrorMessage, v))
}

// TranscriptText applies equality check predicate on the "transcript_text" field. It's identical to TranscriptTextEQ.
func TranscriptText(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTranscriptText, v))
}

// CorrectedTranscriptText applies equality check predicate on the "corrected_transcript_text" field. It's identical to CorrectedTranscriptTextEQ.
func CorrectedTranscriptText(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCorrectedTranscriptText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// ClientIDEQ applies the EQ predicate on the "client_id" field.
func ClientIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldClientID, v))
}

// ClientIDNEQ applies the NEQ predicate on the "client_id" field.
func ClientIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldClientID, v))
}

// ClientIDIn applies the In predicate on the "client_id" field.
func ClientIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldClientID, vs...))
}

// ClientIDNotIn applies the NotIn predicate on the "client_id" field.
func ClientIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldClientID, vs...))
}

// ClientIDGT applies the GT predicate on the "client_id" field.
func ClientIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldClientID, v))
}

// ClientIDGTE applies the GTE predicate on the "client_id" field.
func ClientIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldClientID, v))
}

// ClientIDLT applies the LT predicate on the "client_id" field.
func ClientIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldClientID, v))
}

// ClientIDLTE applies the LTE predicate on the "client_id" field.
func ClientIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldClientID, v))
}

// ClientIDContains applies the Contains predicate on the "client_id" field.
func ClientIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldClientID, v))
}

// ClientIDHasPrefix applies the HasPrefix predicate on the "client_id" field.
func ClientIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldClientID, v))
}

// ClientIDHasSuffix applies the HasSuffix predicate on the "client_id" field.
func ClientIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldClientID, v))
}

// ClientIDEqualFold applies the EqualFold predicate on the "client_id" field.
func ClientIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldClientID, v))
}

// ClientIDContainsFold applies the ContainsFold predicate on the "client_id" field.
func ClientIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldClientID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldProjectID))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldProjectID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTitle, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldStartedAt))
}

// StoppedAtEQ applies the EQ predicate on the "stopped_at" field.
func StoppedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStoppedAt, v))
}

// StoppedAtNEQ applies the NEQ predicate on the "stopped_at" field.
func StoppedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStoppedAt, v))
}

// StoppedAtIn applies the In predicate on the "stopped_at" field.
func StoppedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStoppedAt, vs...))
}

// StoppedAtNotIn applies the NotIn predicate on the "stopped_at" field.
func StoppedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStoppedAt, vs...))
}

// StoppedAtGT applies the GT predicate on the "stopped_at" field.
func StoppedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldStoppedAt, v))
}

// StoppedAtGTE applies the GTE predicate on the "stopped_at" field.
func StoppedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldStoppedAt, v))
}

// StoppedAtLT applies the LT predicate on the "stopped_at" field.
func StoppedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldStoppedAt, v))
}

// StoppedAtLTE applies the LTE predicate on the "stopped_at" field.
func StoppedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldStoppedAt, v))
}

// StoppedAtIsNil applies the IsNil predicate on the "stopped_at" field.
func StoppedAtIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldStoppedAt))
}

// StoppedAtNotNil applies the NotNil predicate on the "stopped_at" field.
func StoppedAtNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldStoppedAt))
}

// DurationSecondsEQ applies the EQ predicate on the "duration_seconds" field.
func DurationSecondsEQ(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldDurationSeconds, v))
}

// DurationSecondsNEQ applies the NEQ predicate on the "duration_seconds" field.
func DurationSecondsNEQ(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldDurationSeconds, v))
}

// DurationSecondsIn applies the In predicate on the "duration_seconds" field.
func DurationSecondsIn(vs ...float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldDurationSeconds, vs...))
}

// DurationSecondsNotIn applies the NotIn predicate on the "duration_seconds" field.
func DurationSecondsNotIn(vs ...float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldDurationSeconds, vs...))
}

// DurationSecondsGT applies the GT predicate on the "duration_seconds" field.
func DurationSecondsGT(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldDurationSeconds, v))
}

// DurationSecondsGTE applies the GTE predicate on the "duration_seconds" field.
func DurationSecondsGTE(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldDurationSeconds, v))
}

// DurationSecondsLT applies the LT predicate on the "duration_seconds" field.
func DurationSecondsLT(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldDurationSeconds, v))
}

// DurationSecondsLTE applies the LTE predicate on the "duration_seconds" field.
func DurationSecondsLTE(v float64) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldDurationSeconds, v))
}

// MeetingTypeEQ applies the EQ predicate on the "meeting_type" field.
func MeetingTypeEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldMeetingType, v))
}

// MeetingTypeNEQ applies the NEQ predicate on the "meeting_type" field.
func MeetingTypeNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldMeetingType, v))
}

// MeetingTypeIn applies the In predicate on the "meeting_type" field.
func MeetingTypeIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldMeetingType, vs...))
}

// MeetingTypeNotIn applies the NotIn predicate on the "meeting_type" field.
func MeetingTypeNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldMeetingType, vs...))
}

// MeetingTypeGT applies the GT predicate on the "meeting_type" field.
func MeetingTypeGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldMeetingType, v))
}

// MeetingTypeGTE applies the GTE predicate on the "meeting_type" field.
func MeetingTypeGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldMeetingType, v))
}

// MeetingTypeLT applies the LT predicate on the "meeting_type" field.
func MeetingTypeLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldMeetingType, v))
}

// MeetingTypeLTE applies the LTE predicate on the "meeting_type" field.
func MeetingTypeLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldMeetingType, v))
}

// MeetingTypeContains applies the Contains predicate on the "meeting_type" field.
func MeetingTypeContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldMeetingType, v))
}

// MeetingTypeHasPrefix applies the HasPrefix predicate on the "meeting_type" field.
func MeetingTypeHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldMeetingType, v))
}

// MeetingTypeHasSuffix applies the HasSuffix predicate on the "meeting_type" field.
func MeetingTypeHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldMeetingType, v))
}

// MeetingTypeIsNil applies the IsNil predicate on the "meeting_type" field.
func MeetingTypeIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldMeetingType))
}

// MeetingTypeNotNil applies the NotNil predicate on the "meeting_type" field.
func MeetingTypeNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldMeetingType))
}

// MeetingTypeEqualFold applies the EqualFold predicate on the "meeting_type" field.
func MeetingTypeEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldMeetingType, v))
}

// MeetingTypeContainsFold applies the ContainsFold predicate on the "meeting_type" field.
func MeetingTypeContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldMeetingType, v))
}

// AudioInputTypeEQ applies the EQ predicate on the "audio_input_type" field.
func AudioInputTypeEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAudioInputType, v))
}

// AudioInputTypeNEQ applies the NEQ predicate on the "audio_input_type" field.
func AudioInputTypeNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAudioInputType, v))
}

// AudioInputTypeIn applies the In predicate on the "audio_input_type" field.
func AudioInputTypeIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAudioInputType, vs...))
}

// AudioInputTypeNotIn applies the NotIn predicate on the "audio_input_type" field.
func AudioInputTypeNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAudioInputType, vs...))
}

// AudioInputTypeGT applies the GT predicate on the "audio_input_type" field.
func AudioInputTypeGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAudioInputType, v))
}

// AudioInputTypeGTE applies the GTE predicate on the "audio_input_type" field.
func AudioInputTypeGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAudioInputType, v))
}

// AudioInputTypeLT applies the LT predicate on the "audio_input_type" field.
func AudioInputTypeLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAudioInputType, v))
}

// AudioInputTypeLTE applies the LTE predicate on the "audio_input_type" field.
func AudioInputTypeLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAudioInputType, v))
}

// AudioInputTypeContains applies the Contains predicate on the "audio_input_type" field.
func AudioInputTypeContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAudioInputType, v))
}

// AudioInputTypeHasPrefix applies the HasPrefix predicate on the "audio_input_type" field.
func AudioInputTypeHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAudioInputType, v))
}

// AudioInputTypeHasSuffix applies the HasSuffix predicate on the "audio_input_type" field.
func AudioInputTypeHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAudioInputType, v))
}

// AudioInputTypeIsNil applies the IsNil predicate on the "audio_input_type" field.
func AudioInputTypeIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldAudioInputType))
}

// AudioInputTypeNotNil applies the NotNil predicate on the "audio_input_type" field.
func AudioInputTypeNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldAudioInputType))
}

// AudioInputTypeEqualFold applies the EqualFold predicate on the "audio_input_type" field.
func AudioInputTypeEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAudioInputType, v))
}

// AudioInputTypeContainsFold applies the ContainsFold predicate on the "audio_input_type" field.
func AudioInputTypeContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAudioInputType, v))
}

// AudioFilePathEQ applies the EQ predicate on the "audio_file_path" field.
func AudioFilePathEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldAudioFilePath, v))
}

// AudioFilePathNEQ applies the NEQ predicate on the "audio_file_path" field.
func AudioFilePathNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldAudioFilePath, v))
}

// AudioFilePathIn applies the In predicate on the "audio_file_path" field.
func AudioFilePathIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldAudioFilePath, vs...))
}

// AudioFilePathNotIn applies the NotIn predicate on the "audio_file_path" field.
func AudioFilePathNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldAudioFilePath, vs...))
}

// AudioFilePathGT applies the GT predicate on the "audio_file_path" field.
func AudioFilePathGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldAudioFilePath, v))
}

// AudioFilePathGTE applies the GTE predicate on the "audio_file_path" field.
func AudioFilePathGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldAudioFilePath, v))
}

// AudioFilePathLT applies the LT predicate on the "audio_file_path" field.
func AudioFilePathLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldAudioFilePath, v))
}

// AudioFilePathLTE applies the LTE predicate on the "audio_file_path" field.
func AudioFilePathLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldAudioFilePath, v))
}

// AudioFilePathContains applies the Contains predicate on the "audio_file_path" field.
func AudioFilePathContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldAudioFilePath, v))
}

// AudioFilePathHasPrefix applies the HasPrefix predicate on the "audio_file_path" field.
func AudioFilePathHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldAudioFilePath, v))
}

// AudioFilePathHasSuffix applies the HasSuffix predicate on the "audio_file_path" field.
func AudioFilePathHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldAudioFilePath, v))
}

// AudioFilePathEqualFold applies the EqualFold predicate on the "audio_file_path" field.
func AudioFilePathEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldAudioFilePath, v))
}

// AudioFilePathContainsFold applies the ContainsFold predicate on the "audio_file_path" field.
func AudioFilePathContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldAudioFilePath, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldState, vs...))
}

// StateChangedAtEQ applies the EQ predicate on the "state_changed_at" field.
func StateChangedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldStateChangedAt, v))
}

// StateChangedAtNEQ applies the NEQ predicate on the "state_changed_at" field.
func StateChangedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldStateChangedAt, v))
}

// StateChangedAtIn applies the In predicate on the "state_changed_at" field.
func StateChangedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldStateChangedAt, vs...))
}

// StateChangedAtNotIn applies the NotIn predicate on the "state_changed_at" field.
func StateChangedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldStateChangedAt, vs...))
}

// StateChangedAtGT applies the GT predicate on the "state_changed_at" field.
func StateChangedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldStateChangedAt, v))
}

// StateChangedAtGTE applies the GTE predicate on the "state_changed_at" field.
func StateChangedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldStateChangedAt, v))
}

// StateChangedAtLT applies the LT predicate on the "state_changed_at" field.
func StateChangedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldStateChangedAt, v))
}

// StateChangedAtLTE applies the LTE predicate on the "state_changed_at" field.
func StateChangedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldStateChangedAt, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldErrorMessage, v))
}

// TranscriptTextEQ applies the EQ predicate on the "transcript_text" field.
func TranscriptTextEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldTranscriptText, v))
}

// TranscriptTextNEQ applies the NEQ predicate on the "transcript_text" field.
func TranscriptTextNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldTranscriptText, v))
}

// TranscriptTextIn applies the In predicate on the "transcript_text" field.
func TranscriptTextIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldTranscriptText, vs...))
}

// TranscriptTextNotIn applies the NotIn predicate on the "transcript_text" field.
func TranscriptTextNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldTranscriptText, vs...))
}

// TranscriptTextGT applies the GT predicate on the "transcript_text" field.
func TranscriptTextGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldTranscriptText, v))
}

// TranscriptTextGTE applies the GTE predicate on the "transcript_text" field.
func TranscriptTextGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldTranscriptText, v))
}

// TranscriptTextLT applies the LT predicate on the "transcript_text" field.
func TranscriptTextLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldTranscriptText, v))
}

// TranscriptTextLTE applies the LTE predicate on the "transcript_text" field.
func TranscriptTextLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldTranscriptText, v))
}

// TranscriptTextContains applies the Contains predicate on the "transcript_text" field.
func TranscriptTextContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldTranscriptText, v))
}

// TranscriptTextHasPrefix applies the HasPrefix predicate on the "transcript_text" field.
func TranscriptTextHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldTranscriptText, v))
}

// TranscriptTextHasSuffix applies the HasSuffix predicate on the "transcript_text" field.
func TranscriptTextHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldTranscriptText, v))
}

// TranscriptTextIsNil applies the IsNil predicate on the "transcript_text" field.
func TranscriptTextIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldTranscriptText))
}

// TranscriptTextNotNil applies the NotNil predicate on the "transcript_text" field.
func TranscriptTextNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldTranscriptText))
}

// TranscriptTextEqualFold applies the EqualFold predicate on the "transcript_text" field.
func TranscriptTextEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldTranscriptText, v))
}

// TranscriptTextContainsFold applies the ContainsFold predicate on the "transcript_text" field.
func TranscriptTextContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldTranscriptText, v))
}

// TranscriptSegmentsIsNil applies the IsNil predicate on the "transcript_segments" field.
func TranscriptSegmentsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldTranscriptSegments))
}

// TranscriptSegmentsNotNil applies the NotNil predicate on the "transcript_segments" field.
func TranscriptSegmentsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldTranscriptSegments))
}

// CorrectedTranscriptTextEQ applies the EQ predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextNEQ applies the NEQ predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextIn applies the In predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCorrectedTranscriptText, vs...))
}

// CorrectedTranscriptTextNotIn applies the NotIn predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCorrectedTranscriptText, vs...))
}

// CorrectedTranscriptTextGT applies the GT predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextGTE applies the GTE predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextLT applies the LT predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextLTE applies the LTE predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextContains applies the Contains predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextHasPrefix applies the HasPrefix predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextHasSuffix applies the HasSuffix predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextIsNil applies the IsNil predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCorrectedTranscriptText))
}

// CorrectedTranscriptTextNotNil applies the NotNil predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCorrectedTranscriptText))
}

// CorrectedTranscriptTextEqualFold applies the EqualFold predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptTextContainsFold applies the ContainsFold predicate on the "corrected_transcript_text" field.
func CorrectedTranscriptTextContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldCorrectedTranscriptText, v))
}

// CorrectedTranscriptSegmentsIsNil applies the IsNil predicate on the "corrected_transcript_segments" field.
func CorrectedTranscriptSegmentsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCorrectedTranscriptSegments))
}

// CorrectedTranscriptSegmentsNotNil applies the NotNil predicate on the "corrected_transcript_segments" field.
func CorrectedTranscriptSegmentsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCorrectedTranscriptSegments))
}

// CorrectionQuestionsIsNil applies the IsNil predicate on the "correction_questions" field.
func CorrectionQuestionsIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldCorrectionQuestions))
}

// CorrectionQuestionsNotNil applies the NotNil predicate on the "correction_questions" field.
func CorrectionQuestionsNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldCorrectionQuestions))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
