package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IndexTask is the hand-off row between Pipeline-3 and the downstream
// knowledge-base indexer. One row per indexed meeting, consumed externally.
type IndexTask struct {
	ent.Schema
}

// Fields of the IndexTask.
func (IndexTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("meeting_id"),
		field.String("client_id"),
		field.String("project_id").
			Optional().
			Nillable(),
		field.String("title").
			Optional(),
		field.String("correlation_id").
			Comment("Always meeting:<meeting_id>"),
		field.Text("content").
			Comment("Rendered Markdown blob fed to the indexer"),
		field.Enum("status").
			Values("pending", "picked_up", "done", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IndexTask.
func (IndexTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("meeting_id"),
		index.Fields("correlation_id"),
	}
}
