// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Meeting is the model entity for the Meeting schema.
type Meeting struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID string `json:"client_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Pipeline ordering key: oldest stopped_at is processed first
	StoppedAt *time.Time `json:"stopped_at,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	// MeetingType holds the value of the "meeting_type" field.
	MeetingType string `json:"meeting_type,omitempty"`
	// AudioInputType holds the value of the "audio_input_type" field.
	AudioInputType string `json:"audio_input_type,omitempty"`
	// Path under the audio mount point
	AudioFilePath string `json:"audio_file_path,omitempty"`
	// State holds the value of the "state" field.
	State meeting.State `json:"state,omitempty"`
	// StateChangedAt holds the value of the "state_changed_at" field.
	StateChangedAt time.Time `json:"state_changed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// TranscriptText holds the value of the "transcript_text" field.
	TranscriptText string `json:"transcript_text,omitempty"`
	// TranscriptSegments holds the value of the "transcript_segments" field.
	TranscriptSegments []models.Segment `json:"transcript_segments,omitempty"`
	// CorrectedTranscriptText holds the value of the "corrected_transcript_text" field.
	CorrectedTranscriptText *string `json:"corrected_transcript_text,omitempty"`
	// CorrectedTranscriptSegments holds the value of the "corrected_transcript_segments" field.
	CorrectedTranscriptSegments []models.Segment `json:"corrected_transcript_segments,omitempty"`
	// CorrectionQuestions holds the value of the "correction_questions" field.
	CorrectionQuestions []models.CorrectionQuestion `json:"correction_questions,omitempty"`
	// Language holds the value of the "language" field.
	Language *string `json:"language,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Meeting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meeting.FieldTranscriptSegments, meeting.FieldCorrectedTranscriptSegments, meeting.FieldCorrectionQuestions:
			values[i] = new([]byte)
		case meeting.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case meeting.FieldID, meeting.FieldClientID, meeting.FieldProjectID, meeting.FieldTitle, meeting.FieldMeetingType, meeting.FieldAudioInputType, meeting.FieldAudioFilePath, meeting.FieldState, meeting.FieldErrorMessage, meeting.FieldTranscriptText, meeting.FieldCorrectedTranscriptText, meeting.FieldLanguage:
			values[i] = new(sql.NullString)
		case meeting.FieldStartedAt, meeting.FieldStoppedAt, meeting.FieldStateChangedAt, meeting.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Meeting fields.
func (m *Meeting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meeting.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				m.ID = value.String
			}
		case meeting.FieldClientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				m.ClientID = value.String
			}
		case meeting.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				m.ProjectID = new(string)
				*m.ProjectID = value.String
			}
		case meeting.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				m.Title = value.String
			}
		case meeting.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				m.StartedAt = new(time.Time)
				*m.StartedAt = value.Time
			}
		case meeting.FieldStoppedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stopped_at", values[i])
			} else if value.Valid {
				m.StoppedAt = new(time.Time)
				*m.StoppedAt = value.Time
			}
		case meeting.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				m.DurationSeconds = value.Float64
			}
		case meeting.FieldMeetingType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_type", values[i])
			} else if value.Valid {
				m.MeetingType = value.String
			}
		case meeting.FieldAudioInputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_input_type", values[i])
			} else if value.Valid {
				m.AudioInputType = value.String
			}
		case meeting.FieldAudioFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_file_path", values[i])
			} else if value.Valid {
				m.AudioFilePath = value.String
			}
		case meeting.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				m.State = meeting.State(value.String)
			}
		case meeting.FieldStateChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field state_changed_at", values[i])
			} else if value.Valid {
				m.StateChangedAt = value.Time
			}
		case meeting.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				m.ErrorMessage = new(string)
				*m.ErrorMessage = value.String
			}
		case meeting.FieldTranscriptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_text", values[i])
			} else if value.Valid {
				m.TranscriptText = value.String
			}
		case meeting.FieldTranscriptSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.TranscriptSegments); err != nil {
					return fmt.Errorf("unmarshal field transcript_segments: %w", err)
				}
			}
		case meeting.FieldCorrectedTranscriptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_transcript_text", values[i])
			} else if value.Valid {
				m.CorrectedTranscriptText = new(string)
				*m.CorrectedTranscriptText = value.String
			}
		case meeting.FieldCorrectedTranscriptSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_transcript_segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.CorrectedTranscriptSegments); err != nil {
					return fmt.Errorf("unmarshal field corrected_transcript_segments: %w", err)
				}
			}
		case meeting.FieldCorrectionQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correction_questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &m.CorrectionQuestions); err != nil {
					return fmt.Errorf("unmarshal field correction_questions: %w", err)
				}
			}
		case meeting.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				m.Language = new(string)
				*m.Language = value.String
			}
		case meeting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				m.CreatedAt = value.Time
			}
		default:
			m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Meeting.
// This includes values selected through modifiers, order, etc.
func (m *Meeting) Value(name string) (ent.Value, error) {
	return m.selectValues.Get(name)
}

// Update returns a builder for updating this Meeting.
// Note that you need to call Meeting.Unwrap() before calling this method if this Meeting
// was returned from a transaction, and the transaction was committed or rolled back.
func (m *Meeting) Update() *MeetingUpdateOne {
	return NewMeetingClient(m.config).UpdateOne(m)
}

// Unwrap unwraps the Meeting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (m *Meeting) Unwrap() *Meeting {
	_tx, ok := m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Meeting is not a transactional entity")
	}
	m.config.driver = _tx.drv
	return m
}

// String implements the fmt.Stringer.
func (m *Meeting) String() string {
	var builder strings.Builder
	builder.WriteString("Meeting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", m.ID))
	builder.WriteString("client_id=")
	builder.WriteString(m.ClientID)
	builder.WriteString(", ")
	if v := m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(m.Title)
	builder.WriteString(", ")
	if v := m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := m.StoppedAt; v != nil {
		builder.WriteString("stopped_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", m.DurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("meeting_type=")
	builder.WriteString(m.MeetingType)
	builder.WriteString(", ")
	builder.WriteString("audio_input_type=")
	builder.WriteString(m.AudioInputType)
	builder.WriteString(", ")
	builder.WriteString("audio_file_path=")
	builder.WriteString(m.AudioFilePath)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", m.State))
	builder.WriteString(", ")
	builder.WriteString("state_changed_at=")
	builder.WriteString(m.StateChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript_text=")
	builder.WriteString(m.TranscriptText)
	builder.WriteString(", ")
	builder.WriteString("transcript_segments=")
	builder.WriteString(fmt.Sprintf("%v", m.TranscriptSegments))
	builder.WriteString(", ")
	if v := m.CorrectedTranscriptText; v != nil {
		builder.WriteString("corrected_transcript_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("corrected_transcript_segments=")
	builder.WriteString(fmt.Sprintf("%v", m.CorrectedTranscriptSegments))
	builder.WriteString(", ")
	builder.WriteString("correction_questions=")
	builder.WriteString(fmt.Sprintf("%v", m.CorrectionQuestions))
	builder.WriteString(", ")
	if v := m.Language; v != nil {
		builder.WriteString("language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Meetings is a parsable slice of Meeting.
type Meetings []*Meeting
