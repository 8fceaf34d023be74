package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

// Meeting holds the schema definition for the Meeting entity — the central
// document of the transcription pipeline. Transcript segments and correction
// questions are stored as JSON columns; the document is always saved as a
// whole (full replacement semantics).
type Meeting struct {
	ent.Schema
}

// Fields of the Meeting.
func (Meeting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meeting_id").
			Unique().
			Immutable(),
		field.String("client_id"),
		field.String("project_id").
			Optional().
			Nillable(),
		field.String("title").
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("stopped_at").
			Optional().
			Nillable().
			Comment("Pipeline ordering key: oldest stopped_at is processed first"),
		field.Float("duration_seconds").
			Default(0),
		field.String("meeting_type").
			Optional(),
		field.String("audio_input_type").
			Optional(),
		field.String("audio_file_path").
			Comment("Path under the audio mount point"),
		field.Enum("state").
			Values(
				"UPLOADED",
				"TRANSCRIBING",
				"TRANSCRIBED",
				"CORRECTING",
				"CORRECTED",
				"CORRECTION_REVIEW",
				"INDEXED",
				"FAILED",
			).
			Default("UPLOADED"),
		field.Time("state_changed_at").
			Default(time.Now),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Text("transcript_text").
			Optional(),
		field.JSON("transcript_segments", []models.Segment{}).
			Optional(),
		field.Text("corrected_transcript_text").
			Optional().
			Nillable(),
		field.JSON("corrected_transcript_segments", []models.Segment{}).
			Optional(),
		field.JSON("correction_questions", []models.CorrectionQuestion{}).
			Optional(),
		field.String("language").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Meeting.
func (Meeting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("client_id"),

		// Pipeline poll order
		index.Fields("state", "stopped_at"),

		// Stuck detection scans
		index.Fields("state", "state_changed_at"),

		index.Fields("error_message").
			Annotations(entsql.IndexWhere("error_message IS NOT NULL")),
	}
}
