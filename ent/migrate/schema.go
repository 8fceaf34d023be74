// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IndexTasksColumns holds the columns for the "index_tasks" table.
	IndexTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "meeting_id", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "picked_up", "done", "failed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IndexTasksTable holds the schema information for the "index_tasks" table.
	IndexTasksTable = &schema.Table{
		Name:       "index_tasks",
		Columns:    IndexTasksColumns,
		PrimaryKey: []*schema.Column{IndexTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "indextask_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IndexTasksColumns[7], IndexTasksColumns[8]},
			},
			{
				Name:    "indextask_meeting_id",
				Unique:  false,
				Columns: []*schema.Column{IndexTasksColumns[1]},
			},
			{
				Name:    "indextask_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{IndexTasksColumns[5]},
			},
		},
	}
	// MeetingsColumns holds the columns for the "meetings" table.
	MeetingsColumns = []*schema.Column{
		{Name: "meeting_id", Type: field.TypeString, Unique: true},
		{Name: "client_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "stopped_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "meeting_type", Type: field.TypeString, Nullable: true},
		{Name: "audio_input_type", Type: field.TypeString, Nullable: true},
		{Name: "audio_file_path", Type: field.TypeString},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"UPLOADED", "TRANSCRIBING", "TRANSCRIBED", "CORRECTING", "CORRECTED", "CORRECTION_REVIEW", "INDEXED", "FAILED"}, Default: "UPLOADED"},
		{Name: "state_changed_at", Type: field.TypeTime},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "transcript_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transcript_segments", Type: field.TypeJSON, Nullable: true},
		{Name: "corrected_transcript_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "corrected_transcript_segments", Type: field.TypeJSON, Nullable: true},
		{Name: "correction_questions", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeetingsTable holds the schema information for the "meetings" table.
	MeetingsTable = &schema.Table{
		Name:       "meetings",
		Columns:    MeetingsColumns,
		PrimaryKey: []*schema.Column{MeetingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meeting_state",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[10]},
			},
			{
				Name:    "meeting_client_id",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[1]},
			},
			{
				Name:    "meeting_state_stopped_at",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[10], MeetingsColumns[5]},
			},
			{
				Name:    "meeting_state_state_changed_at",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[10], MeetingsColumns[11]},
			},
			{
				Name:    "meeting_error_message",
				Unique:  false,
				Columns: []*schema.Column{MeetingsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "error_message IS NOT NULL",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IndexTasksTable,
		MeetingsTable,
	}
)

func init() {
}
