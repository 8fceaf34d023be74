// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the meeting type in the database.
	Label = "meeting"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "meeting_id"
	// FieldClientID holds the string denoting the client_id field in the database.
	FieldClientID = "client_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldStoppedAt holds the string denoting the stopped_at field in the database.
	FieldStoppedAt = "stopped_at"
	// FieldDurationSeconds holds the string denoting the duration_seconds field in the database.
	FieldDurationSeconds = "duration_seconds"
	// FieldMeetingType holds the string denoting the meeting_type field in the database.
	FieldMeetingType = "meeting_type"
	// FieldAudioInputType holds the string denoting the audio_input_type field in the database.
	FieldAudioInputType = "audio_input_type"
	// FieldAudioFilePath holds the string denoting the audio_file_path field in the database.
	FieldAudioFilePath = "audio_file_path"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStateChangedAt holds the string denoting the state_changed_at field in the database.
	FieldStateChangedAt = "state_changed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTranscriptText holds the string denoting the transcript_text field in the database.
	FieldTranscriptText = "transcript_text"
	// FieldTranscriptSegments holds the string denoting the transcript_segments field in the database.
	FieldTranscriptSegments = "transcript_segments"
	// FieldCorrectedTranscriptText holds the string denoting the corrected_transcript_text field in the database.
	FieldCorrectedTranscriptText = "corrected_transcript_text"
	// FieldCorrectedTranscriptSegments holds the string denoting the corrected_transcript_segments field in the database.
	FieldCorrectedTranscriptSegments = "corrected_transcript_segments"
	// FieldCorrectionQuestions holds the string denoting the correction_questions field in the database.
	FieldCorrectionQuestions = "correction_questions"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the meeting in the database.
	Table = "meetings"
)

// Columns holds all SQL columns for meeting fields.
var Columns = []string{
	FieldID,
	FieldClientID,
	FieldProjectID,
	FieldTitle,
	FieldStartedAt,
	FieldStoppedAt,
	FieldDurationSeconds,
	FieldMeetingType,
	FieldAudioInputType,
	FieldAudioFilePath,
	FieldState,
	FieldStateChangedAt,
	FieldErrorMessage,
	FieldTranscriptText,
	FieldTranscriptSegments,
	FieldCorrectedTranscriptText,
	FieldCorrectedTranscriptSegments,
	FieldCorrectionQuestions,
	FieldLanguage,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDurationSeconds holds the default value on creation for the "duration_seconds" field.
	DefaultDurationSeconds float64
	// DefaultStateChangedAt holds the default value on creation for the "state_changed_at" field.
	DefaultStateChangedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateUPLOADED is the default value of the State enum.
const DefaultState = StateUPLOADED

// State values.
const (
	StateUPLOADED          State = "UPLOADED"
	StateTRANSCRIBING      State = "TRANSCRIBING"
	StateTRANSCRIBED       State = "TRANSCRIBED"
	StateCORRECTING        State = "CORRECTING"
	StateCORRECTED         State = "CORRECTED"
	StateCORRECTION_REVIEW State = "CORRECTION_REVIEW"
	StateINDEXED           State = "INDEXED"
	StateFAILED            State = "FAILED"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateUPLOADED, StateTRANSCRIBING, StateTRANSCRIBED, StateCORRECTING, StateCORRECTED, StateCORRECTION_REVIEW, StateINDEXED, StateFAILED:
		return nil
	default:
		return fmt.Errorf("meeting: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Meeting queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientID orders the results by the client_id field.
func ByClientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByStoppedAt orders the results by the stopped_at field.
func ByStoppedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoppedAt, opts...).ToFunc()
}

// ByDurationSeconds orders the results by the duration_seconds field.
func ByDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSeconds, opts...).ToFunc()
}

// ByMeetingType orders the results by the meeting_type field.
func ByMeetingType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeetingType, opts...).ToFunc()
}

// ByAudioInputType orders the results by the audio_input_type field.
func ByAudioInputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioInputType, opts...).ToFunc()
}

// ByAudioFilePath orders the results by the audio_file_path field.
func ByAudioFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioFilePath, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStateChangedAt orders the results by the state_changed_at field.
func ByStateChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateChangedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTranscriptText orders the results by the transcript_text field.
func ByTranscriptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptText, opts...).ToFunc()
}

// ByCorrectedTranscriptText orders the results by the corrected_transcript_text field.
func ByCorrectedTranscriptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedTranscriptText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
