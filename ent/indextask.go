// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
)

// IndexTask is the model entity for the IndexTask schema.
type IndexTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MeetingID holds the value of the "meeting_id" field.
	MeetingID string `json:"meeting_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID string `json:"client_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *string `json:"project_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Always meeting:<meeting_id>
	CorrelationID string `json:"correlation_id,omitempty"`
	// Rendered Markdown blob fed to the indexer
	Content string `json:"content,omitempty"`
	// Status holds the value of the "status" field.
	Status indextask.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IndexTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case indextask.FieldID, indextask.FieldMeetingID, indextask.FieldClientID, indextask.FieldProjectID, indextask.FieldTitle, indextask.FieldCorrelationID, indextask.FieldContent, indextask.FieldStatus:
			values[i] = new(sql.NullString)
		case indextask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IndexTask fields.
func (it *IndexTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case indextask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				it.ID = value.String
			}
		case indextask.FieldMeetingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meeting_id", values[i])
			} else if value.Valid {
				it.MeetingID = value.String
			}
		case indextask.FieldClientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value.Valid {
				it.ClientID = value.String
			}
		case indextask.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				it.ProjectID = new(string)
				*it.ProjectID = value.String
			}
		case indextask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				it.Title = value.String
			}
		case indextask.FieldCorrelationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_id", values[i])
			} else if value.Valid {
				it.CorrelationID = value.String
			}
		case indextask.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				it.Content = value.String
			}
		case indextask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				it.Status = indextask.Status(value.String)
			}
		case indextask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				it.CreatedAt = value.Time
			}
		default:
			it.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IndexTask.
// This includes values selected through modifiers, order, etc.
func (it *IndexTask) Value(name string) (ent.Value, error) {
	return it.selectValues.Get(name)
}

// Update returns a builder for updating this IndexTask.
// Note that you need to call IndexTask.Unwrap() before calling this method if this IndexTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (it *IndexTask) Update() *IndexTaskUpdateOne {
	return NewIndexTaskClient(it.config).UpdateOne(it)
}

// Unwrap unwraps the IndexTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (it *IndexTask) Unwrap() *IndexTask {
	_tx, ok := it.config.driver.(*txDriver)
	if !ok {
		panic("ent: IndexTask is not a transactional entity")
	}
	it.config.driver = _tx.drv
	return it
}

// String implements the fmt.Stringer.
func (it *IndexTask) String() string {
	var builder strings.Builder
	builder.WriteString("IndexTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", it.ID))
	builder.WriteString("meeting_id=")
	builder.WriteString(it.MeetingID)
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(it.ClientID)
	builder.WriteString(", ")
	if v := it.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(it.Title)
	builder.WriteString(", ")
	builder.WriteString("correlation_id=")
	builder.WriteString(it.CorrelationID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(it.Content)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", it.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(it.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IndexTasks is a parsable slice of IndexTask.
type IndexTasks []*IndexTask
