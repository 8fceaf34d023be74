package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JanDamek/jervis-transcribe/ent"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
)

// IndexTask is one unit of work handed to the downstream knowledge-base
// indexer. Content is the rendered Markdown blob; CorrelationID lets the
// indexer deduplicate re-submissions of the same meeting.
type IndexTask struct {
	MeetingID     string
	ClientID      string
	ProjectID     string
	Title         string
	CorrelationID string
	Content       string
}

// IndexQueue is the enqueue side of the indexing handoff.
type IndexQueue interface {
	Enqueue(ctx context.Context, task *IndexTask) error
}

// EntIndexQueue stores index tasks as pending rows; the external indexer
// consumes them from the table.
type EntIndexQueue struct {
	client *ent.Client
}

// NewIndexQueue creates an Ent-backed IndexQueue.
func NewIndexQueue(client *ent.Client) *EntIndexQueue {
	return &EntIndexQueue{client: client}
}

// Enqueue implements IndexQueue.
func (q *EntIndexQueue) Enqueue(ctx context.Context, task *IndexTask) error {
	builder := q.client.IndexTask.Create().
		SetID(uuid.NewString()).
		SetMeetingID(task.MeetingID).
		SetClientID(task.ClientID).
		SetTitle(task.Title).
		SetCorrelationID(task.CorrelationID).
		SetContent(task.Content).
		SetStatus(indextask.StatusPending)

	if task.ProjectID != "" {
		builder.SetProjectID(task.ProjectID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to enqueue index task for meeting %s: %w", task.MeetingID, err)
	}
	return nil
}
