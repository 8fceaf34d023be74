// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/JanDamek/jervis-transcribe/ent/indextask"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/ent/predicate"
	"github.com/JanDamek/jervis-transcribe/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeIndexTask = "IndexTask"
	TypeMeeting   = "Meeting"
)

// IndexTaskMutation represents an operation that mutates the IndexTask nodes in the graph.
type IndexTaskMutation struct {
	config
	op             Op
	typ            string
	id             *string
	meeting_id     *string
	client_id      *string
	project_id     *string
	title          *string
	correlation_id *string
	content        *string
	status         *indextask.Status
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*IndexTask, error)
	predicates     []predicate.IndexTask
}

var _ ent.Mutation = (*IndexTaskMutation)(nil)

// indextaskOption allows management of the mutation configuration using functional options.
type indextaskOption func(*IndexTaskMutation)

// newIndexTaskMutation creates new mutation for the IndexTask entity.
func newIndexTaskMutation(c config, op Op, opts ...indextaskOption) *IndexTaskMutation {
	m := &IndexTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeIndexTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIndexTaskID sets the ID field of the mutation.
func withIndexTaskID(id string) indextaskOption {
	return func(m *IndexTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *IndexTask
		)
		m.oldValue = func(ctx context.Context) (*IndexTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IndexTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIndexTask sets the old IndexTask of the mutation.
func withIndexTask(node *IndexTask) indextaskOption {
	return func(m *IndexTaskMutation) {
		m.oldValue = func(context.Context) (*IndexTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IndexTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IndexTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IndexTask entities.
func (m *IndexTaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IndexTaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IndexTaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IndexTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMeetingID sets the "meeting_id" field.
func (m *IndexTaskMutation) SetMeetingID(s string) {
	m.meeting_id = &s
}

// MeetingID returns the value of the "meeting_id" field in the mutation.
func (m *IndexTaskMutation) MeetingID() (r string, exists bool) {
	v := m.meeting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingID returns the old "meeting_id" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldMeetingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingID: %w", err)
	}
	return oldValue.MeetingID, nil
}

// ResetMeetingID resets all changes to the "meeting_id" field.
func (m *IndexTaskMutation) ResetMeetingID() {
	m.meeting_id = nil
}

// SetClientID sets the "client_id" field.
func (m *IndexTaskMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *IndexTaskMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *IndexTaskMutation) ResetClientID() {
	m.client_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *IndexTaskMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *IndexTaskMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *IndexTaskMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[indextask.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *IndexTaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[indextask.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *IndexTaskMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, indextask.FieldProjectID)
}

// SetTitle sets the "title" field.
func (m *IndexTaskMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IndexTaskMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *IndexTaskMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[indextask.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *IndexTaskMutation) TitleCleared() bool {
	_, ok := m.clearedFields[indextask.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *IndexTaskMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, indextask.FieldTitle)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *IndexTaskMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *IndexTaskMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *IndexTaskMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetContent sets the "content" field.
func (m *IndexTaskMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *IndexTaskMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *IndexTaskMutation) ResetContent() {
	m.content = nil
}

// SetStatus sets the "status" field.
func (m *IndexTaskMutation) SetStatus(i indextask.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IndexTaskMutation) Status() (r indextask.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldStatus(ctx context.Context) (v indextask.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IndexTaskMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IndexTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IndexTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IndexTask entity.
// If the IndexTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IndexTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IndexTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IndexTaskMutation builder.
func (m *IndexTaskMutation) Where(ps ...predicate.IndexTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IndexTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IndexTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IndexTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IndexTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IndexTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IndexTask).
func (m *IndexTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IndexTaskMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.meeting_id != nil {
		fields = append(fields, indextask.FieldMeetingID)
	}
	if m.client_id != nil {
		fields = append(fields, indextask.FieldClientID)
	}
	if m.project_id != nil {
		fields = append(fields, indextask.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, indextask.FieldTitle)
	}
	if m.correlation_id != nil {
		fields = append(fields, indextask.FieldCorrelationID)
	}
	if m.content != nil {
		fields = append(fields, indextask.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, indextask.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, indextask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IndexTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case indextask.FieldMeetingID:
		return m.MeetingID()
	case indextask.FieldClientID:
		return m.ClientID()
	case indextask.FieldProjectID:
		return m.ProjectID()
	case indextask.FieldTitle:
		return m.Title()
	case indextask.FieldCorrelationID:
		return m.CorrelationID()
	case indextask.FieldContent:
		return m.Content()
	case indextask.FieldStatus:
		return m.Status()
	case indextask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IndexTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case indextask.FieldMeetingID:
		return m.OldMeetingID(ctx)
	case indextask.FieldClientID:
		return m.OldClientID(ctx)
	case indextask.FieldProjectID:
		return m.OldProjectID(ctx)
	case indextask.FieldTitle:
		return m.OldTitle(ctx)
	case indextask.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case indextask.FieldContent:
		return m.OldContent(ctx)
	case indextask.FieldStatus:
		return m.OldStatus(ctx)
	case indextask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IndexTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndexTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case indextask.FieldMeetingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingID(v)
		return nil
	case indextask.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case indextask.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case indextask.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case indextask.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case indextask.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case indextask.FieldStatus:
		v, ok := value.(indextask.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case indextask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IndexTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IndexTaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IndexTaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IndexTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown IndexTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IndexTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(indextask.FieldProjectID) {
		fields = append(fields, indextask.FieldProjectID)
	}
	if m.FieldCleared(indextask.FieldTitle) {
		fields = append(fields, indextask.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IndexTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IndexTaskMutation) ClearField(name string) error {
	switch name {
	case indextask.FieldProjectID:
		m.ClearProjectID()
		return nil
	case indextask.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown IndexTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IndexTaskMutation) ResetField(name string) error {
	switch name {
	case indextask.FieldMeetingID:
		m.ResetMeetingID()
		return nil
	case indextask.FieldClientID:
		m.ResetClientID()
		return nil
	case indextask.FieldProjectID:
		m.ResetProjectID()
		return nil
	case indextask.FieldTitle:
		m.ResetTitle()
		return nil
	case indextask.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case indextask.FieldContent:
		m.ResetContent()
		return nil
	case indextask.FieldStatus:
		m.ResetStatus()
		return nil
	case indextask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IndexTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IndexTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IndexTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IndexTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IndexTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IndexTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IndexTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IndexTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IndexTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IndexTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IndexTask edge %s", name)
}

// MeetingMutation represents an operation that mutates the Meeting nodes in the graph.
type MeetingMutation struct {
	config
	op                                  Op
	typ                                 string
	id                                  *string
	client_id                           *string
	project_id                          *string
	title                               *string
	started_at                          *time.Time
	stopped_at                          *time.Time
	duration_seconds                    *float64
	addduration_seconds                 *float64
	meeting_type                        *string
	audio_input_type                    *string
	audio_file_path                     *string
	state                               *meeting.State
	state_changed_at                    *time.Time
	error_message                       *string
	transcript_text                     *string
	transcript_segments                 *[]models.Segment
	appendtranscript_segments           []models.Segment
	corrected_transcript_text           *string
	corrected_transcript_segments       *[]models.Segment
	appendcorrected_transcript_segments []models.Segment
	correction_questions                *[]models.CorrectionQuestion
	appendcorrection_questions          []models.CorrectionQuestion
	language                            *string
	created_at                          *time.Time
	clearedFields                       map[string]struct{}
	done                                bool
	oldValue                            func(context.Context) (*Meeting, error)
	predicates                          []predicate.Meeting
}

var _ ent.Mutation = (*MeetingMutation)(nil)

// meetingOption allows management of the mutation configuration using functional options.
type meetingOption func(*MeetingMutation)

// newMeetingMutation creates new mutation for the Meeting entity.
func newMeetingMutation(c config, op Op, opts ...meetingOption) *MeetingMutation {
	m := &MeetingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeeting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeetingID sets the ID field of the mutation.
func withMeetingID(id string) meetingOption {
	return func(m *MeetingMutation) {
		var (
			err   error
			once  sync.Once
			value *Meeting
		)
		m.oldValue = func(ctx context.Context) (*Meeting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Meeting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeeting sets the old Meeting of the mutation.
func withMeeting(node *Meeting) meetingOption {
	return func(m *MeetingMutation) {
		m.oldValue = func(context.Context) (*Meeting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeetingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeetingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Meeting entities.
func (m *MeetingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeetingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeetingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Meeting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *MeetingMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *MeetingMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *MeetingMutation) ResetClientID() {
	m.client_id = nil
}

// SetProjectID sets the "project_id" field.
func (m *MeetingMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *MeetingMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *MeetingMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[meeting.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *MeetingMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[meeting.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *MeetingMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, meeting.FieldProjectID)
}

// SetTitle sets the "title" field.
func (m *MeetingMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MeetingMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *MeetingMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[meeting.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *MeetingMutation) TitleCleared() bool {
	_, ok := m.clearedFields[meeting.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *MeetingMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, meeting.FieldTitle)
}

// SetStartedAt sets the "started_at" field.
func (m *MeetingMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *MeetingMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *MeetingMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[meeting.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *MeetingMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[meeting.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *MeetingMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, meeting.FieldStartedAt)
}

// SetStoppedAt sets the "stopped_at" field.
func (m *MeetingMutation) SetStoppedAt(t time.Time) {
	m.stopped_at = &t
}

// StoppedAt returns the value of the "stopped_at" field in the mutation.
func (m *MeetingMutation) StoppedAt() (r time.Time, exists bool) {
	v := m.stopped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStoppedAt returns the old "stopped_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStoppedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoppedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoppedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoppedAt: %w", err)
	}
	return oldValue.StoppedAt, nil
}

// ClearStoppedAt clears the value of the "stopped_at" field.
func (m *MeetingMutation) ClearStoppedAt() {
	m.stopped_at = nil
	m.clearedFields[meeting.FieldStoppedAt] = struct{}{}
}

// StoppedAtCleared returns if the "stopped_at" field was cleared in this mutation.
func (m *MeetingMutation) StoppedAtCleared() bool {
	_, ok := m.clearedFields[meeting.FieldStoppedAt]
	return ok
}

// ResetStoppedAt resets all changes to the "stopped_at" field.
func (m *MeetingMutation) ResetStoppedAt() {
	m.stopped_at = nil
	delete(m.clearedFields, meeting.FieldStoppedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *MeetingMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *MeetingMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldDurationSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *MeetingMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *MeetingMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *MeetingMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
}

// SetMeetingType sets the "meeting_type" field.
func (m *MeetingMutation) SetMeetingType(s string) {
	m.meeting_type = &s
}

// MeetingType returns the value of the "meeting_type" field in the mutation.
func (m *MeetingMutation) MeetingType() (r string, exists bool) {
	v := m.meeting_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingType returns the old "meeting_type" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldMeetingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingType: %w", err)
	}
	return oldValue.MeetingType, nil
}

// ClearMeetingType clears the value of the "meeting_type" field.
func (m *MeetingMutation) ClearMeetingType() {
	m.meeting_type = nil
	m.clearedFields[meeting.FieldMeetingType] = struct{}{}
}

// MeetingTypeCleared returns if the "meeting_type" field was cleared in this mutation.
func (m *MeetingMutation) MeetingTypeCleared() bool {
	_, ok := m.clearedFields[meeting.FieldMeetingType]
	return ok
}

// ResetMeetingType resets all changes to the "meeting_type" field.
func (m *MeetingMutation) ResetMeetingType() {
	m.meeting_type = nil
	delete(m.clearedFields, meeting.FieldMeetingType)
}

// SetAudioInputType sets the "audio_input_type" field.
func (m *MeetingMutation) SetAudioInputType(s string) {
	m.audio_input_type = &s
}

// AudioInputType returns the value of the "audio_input_type" field in the mutation.
func (m *MeetingMutation) AudioInputType() (r string, exists bool) {
	v := m.audio_input_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioInputType returns the old "audio_input_type" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAudioInputType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioInputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioInputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioInputType: %w", err)
	}
	return oldValue.AudioInputType, nil
}

// ClearAudioInputType clears the value of the "audio_input_type" field.
func (m *MeetingMutation) ClearAudioInputType() {
	m.audio_input_type = nil
	m.clearedFields[meeting.FieldAudioInputType] = struct{}{}
}

// AudioInputTypeCleared returns if the "audio_input_type" field was cleared in this mutation.
func (m *MeetingMutation) AudioInputTypeCleared() bool {
	_, ok := m.clearedFields[meeting.FieldAudioInputType]
	return ok
}

// ResetAudioInputType resets all changes to the "audio_input_type" field.
func (m *MeetingMutation) ResetAudioInputType() {
	m.audio_input_type = nil
	delete(m.clearedFields, meeting.FieldAudioInputType)
}

// SetAudioFilePath sets the "audio_file_path" field.
func (m *MeetingMutation) SetAudioFilePath(s string) {
	m.audio_file_path = &s
}

// AudioFilePath returns the value of the "audio_file_path" field in the mutation.
func (m *MeetingMutation) AudioFilePath() (r string, exists bool) {
	v := m.audio_file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioFilePath returns the old "audio_file_path" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldAudioFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioFilePath: %w", err)
	}
	return oldValue.AudioFilePath, nil
}

// ResetAudioFilePath resets all changes to the "audio_file_path" field.
func (m *MeetingMutation) ResetAudioFilePath() {
	m.audio_file_path = nil
}

// SetState sets the "state" field.
func (m *MeetingMutation) SetState(value meeting.State) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *MeetingMutation) State() (r meeting.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldState(ctx context.Context) (v meeting.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *MeetingMutation) ResetState() {
	m.state = nil
}

// SetStateChangedAt sets the "state_changed_at" field.
func (m *MeetingMutation) SetStateChangedAt(t time.Time) {
	m.state_changed_at = &t
}

// StateChangedAt returns the value of the "state_changed_at" field in the mutation.
func (m *MeetingMutation) StateChangedAt() (r time.Time, exists bool) {
	v := m.state_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStateChangedAt returns the old "state_changed_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldStateChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateChangedAt: %w", err)
	}
	return oldValue.StateChangedAt, nil
}

// ResetStateChangedAt resets all changes to the "state_changed_at" field.
func (m *MeetingMutation) ResetStateChangedAt() {
	m.state_changed_at = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *MeetingMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *MeetingMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *MeetingMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[meeting.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *MeetingMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[meeting.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *MeetingMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, meeting.FieldErrorMessage)
}

// SetTranscriptText sets the "transcript_text" field.
func (m *MeetingMutation) SetTranscriptText(s string) {
	m.transcript_text = &s
}

// TranscriptText returns the value of the "transcript_text" field in the mutation.
func (m *MeetingMutation) TranscriptText() (r string, exists bool) {
	v := m.transcript_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptText returns the old "transcript_text" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTranscriptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptText: %w", err)
	}
	return oldValue.TranscriptText, nil
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (m *MeetingMutation) ClearTranscriptText() {
	m.transcript_text = nil
	m.clearedFields[meeting.FieldTranscriptText] = struct{}{}
}

// TranscriptTextCleared returns if the "transcript_text" field was cleared in this mutation.
func (m *MeetingMutation) TranscriptTextCleared() bool {
	_, ok := m.clearedFields[meeting.FieldTranscriptText]
	return ok
}

// ResetTranscriptText resets all changes to the "transcript_text" field.
func (m *MeetingMutation) ResetTranscriptText() {
	m.transcript_text = nil
	delete(m.clearedFields, meeting.FieldTranscriptText)
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (m *MeetingMutation) SetTranscriptSegments(value []models.Segment) {
	m.transcript_segments = &value
	m.appendtranscript_segments = nil
}

// TranscriptSegments returns the value of the "transcript_segments" field in the mutation.
func (m *MeetingMutation) TranscriptSegments() (r []models.Segment, exists bool) {
	v := m.transcript_segments
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptSegments returns the old "transcript_segments" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldTranscriptSegments(ctx context.Context) (v []models.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptSegments: %w", err)
	}
	return oldValue.TranscriptSegments, nil
}

// AppendTranscriptSegments adds value to the "transcript_segments" field.
func (m *MeetingMutation) AppendTranscriptSegments(value []models.Segment) {
	m.appendtranscript_segments = append(m.appendtranscript_segments, value...)
}

// AppendedTranscriptSegments returns the list of values that were appended to the "transcript_segments" field in this mutation.
func (m *MeetingMutation) AppendedTranscriptSegments() ([]models.Segment, bool) {
	if len(m.appendtranscript_segments) == 0 {
		return nil, false
	}
	return m.appendtranscript_segments, true
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (m *MeetingMutation) ClearTranscriptSegments() {
	m.transcript_segments = nil
	m.appendtranscript_segments = nil
	m.clearedFields[meeting.FieldTranscriptSegments] = struct{}{}
}

// TranscriptSegmentsCleared returns if the "transcript_segments" field was cleared in this mutation.
func (m *MeetingMutation) TranscriptSegmentsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldTranscriptSegments]
	return ok
}

// ResetTranscriptSegments resets all changes to the "transcript_segments" field.
func (m *MeetingMutation) ResetTranscriptSegments() {
	m.transcript_segments = nil
	m.appendtranscript_segments = nil
	delete(m.clearedFields, meeting.FieldTranscriptSegments)
}

// SetCorrectedTranscriptText sets the "corrected_transcript_text" field.
func (m *MeetingMutation) SetCorrectedTranscriptText(s string) {
	m.corrected_transcript_text = &s
}

// CorrectedTranscriptText returns the value of the "corrected_transcript_text" field in the mutation.
func (m *MeetingMutation) CorrectedTranscriptText() (r string, exists bool) {
	v := m.corrected_transcript_text
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedTranscriptText returns the old "corrected_transcript_text" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCorrectedTranscriptText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedTranscriptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedTranscriptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedTranscriptText: %w", err)
	}
	return oldValue.CorrectedTranscriptText, nil
}

// ClearCorrectedTranscriptText clears the value of the "corrected_transcript_text" field.
func (m *MeetingMutation) ClearCorrectedTranscriptText() {
	m.corrected_transcript_text = nil
	m.clearedFields[meeting.FieldCorrectedTranscriptText] = struct{}{}
}

// CorrectedTranscriptTextCleared returns if the "corrected_transcript_text" field was cleared in this mutation.
func (m *MeetingMutation) CorrectedTranscriptTextCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCorrectedTranscriptText]
	return ok
}

// ResetCorrectedTranscriptText resets all changes to the "corrected_transcript_text" field.
func (m *MeetingMutation) ResetCorrectedTranscriptText() {
	m.corrected_transcript_text = nil
	delete(m.clearedFields, meeting.FieldCorrectedTranscriptText)
}

// SetCorrectedTranscriptSegments sets the "corrected_transcript_segments" field.
func (m *MeetingMutation) SetCorrectedTranscriptSegments(value []models.Segment) {
	m.corrected_transcript_segments = &value
	m.appendcorrected_transcript_segments = nil
}

// CorrectedTranscriptSegments returns the value of the "corrected_transcript_segments" field in the mutation.
func (m *MeetingMutation) CorrectedTranscriptSegments() (r []models.Segment, exists bool) {
	v := m.corrected_transcript_segments
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedTranscriptSegments returns the old "corrected_transcript_segments" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCorrectedTranscriptSegments(ctx context.Context) (v []models.Segment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedTranscriptSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedTranscriptSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedTranscriptSegments: %w", err)
	}
	return oldValue.CorrectedTranscriptSegments, nil
}

// AppendCorrectedTranscriptSegments adds value to the "corrected_transcript_segments" field.
func (m *MeetingMutation) AppendCorrectedTranscriptSegments(value []models.Segment) {
	m.appendcorrected_transcript_segments = append(m.appendcorrected_transcript_segments, value...)
}

// AppendedCorrectedTranscriptSegments returns the list of values that were appended to the "corrected_transcript_segments" field in this mutation.
func (m *MeetingMutation) AppendedCorrectedTranscriptSegments() ([]models.Segment, bool) {
	if len(m.appendcorrected_transcript_segments) == 0 {
		return nil, false
	}
	return m.appendcorrected_transcript_segments, true
}

// ClearCorrectedTranscriptSegments clears the value of the "corrected_transcript_segments" field.
func (m *MeetingMutation) ClearCorrectedTranscriptSegments() {
	m.corrected_transcript_segments = nil
	m.appendcorrected_transcript_segments = nil
	m.clearedFields[meeting.FieldCorrectedTranscriptSegments] = struct{}{}
}

// CorrectedTranscriptSegmentsCleared returns if the "corrected_transcript_segments" field was cleared in this mutation.
func (m *MeetingMutation) CorrectedTranscriptSegmentsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCorrectedTranscriptSegments]
	return ok
}

// ResetCorrectedTranscriptSegments resets all changes to the "corrected_transcript_segments" field.
func (m *MeetingMutation) ResetCorrectedTranscriptSegments() {
	m.corrected_transcript_segments = nil
	m.appendcorrected_transcript_segments = nil
	delete(m.clearedFields, meeting.FieldCorrectedTranscriptSegments)
}

// SetCorrectionQuestions sets the "correction_questions" field.
func (m *MeetingMutation) SetCorrectionQuestions(mq []models.CorrectionQuestion) {
	m.correction_questions = &mq
	m.appendcorrection_questions = nil
}

// CorrectionQuestions returns the value of the "correction_questions" field in the mutation.
func (m *MeetingMutation) CorrectionQuestions() (r []models.CorrectionQuestion, exists bool) {
	v := m.correction_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectionQuestions returns the old "correction_questions" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCorrectionQuestions(ctx context.Context) (v []models.CorrectionQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectionQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectionQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectionQuestions: %w", err)
	}
	return oldValue.CorrectionQuestions, nil
}

// AppendCorrectionQuestions adds mq to the "correction_questions" field.
func (m *MeetingMutation) AppendCorrectionQuestions(mq []models.CorrectionQuestion) {
	m.appendcorrection_questions = append(m.appendcorrection_questions, mq...)
}

// AppendedCorrectionQuestions returns the list of values that were appended to the "correction_questions" field in this mutation.
func (m *MeetingMutation) AppendedCorrectionQuestions() ([]models.CorrectionQuestion, bool) {
	if len(m.appendcorrection_questions) == 0 {
		return nil, false
	}
	return m.appendcorrection_questions, true
}

// ClearCorrectionQuestions clears the value of the "correction_questions" field.
func (m *MeetingMutation) ClearCorrectionQuestions() {
	m.correction_questions = nil
	m.appendcorrection_questions = nil
	m.clearedFields[meeting.FieldCorrectionQuestions] = struct{}{}
}

// CorrectionQuestionsCleared returns if the "correction_questions" field was cleared in this mutation.
func (m *MeetingMutation) CorrectionQuestionsCleared() bool {
	_, ok := m.clearedFields[meeting.FieldCorrectionQuestions]
	return ok
}

// ResetCorrectionQuestions resets all changes to the "correction_questions" field.
func (m *MeetingMutation) ResetCorrectionQuestions() {
	m.correction_questions = nil
	m.appendcorrection_questions = nil
	delete(m.clearedFields, meeting.FieldCorrectionQuestions)
}

// SetLanguage sets the "language" field.
func (m *MeetingMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *MeetingMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *MeetingMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[meeting.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *MeetingMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[meeting.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *MeetingMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, meeting.FieldLanguage)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeetingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeetingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Meeting entity.
// If the Meeting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeetingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeetingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MeetingMutation builder.
func (m *MeetingMutation) Where(ps ...predicate.Meeting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeetingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeetingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Meeting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeetingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeetingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Meeting).
func (m *MeetingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeetingMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.client_id != nil {
		fields = append(fields, meeting.FieldClientID)
	}
	if m.project_id != nil {
		fields = append(fields, meeting.FieldProjectID)
	}
	if m.title != nil {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.started_at != nil {
		fields = append(fields, meeting.FieldStartedAt)
	}
	if m.stopped_at != nil {
		fields = append(fields, meeting.FieldStoppedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, meeting.FieldDurationSeconds)
	}
	if m.meeting_type != nil {
		fields = append(fields, meeting.FieldMeetingType)
	}
	if m.audio_input_type != nil {
		fields = append(fields, meeting.FieldAudioInputType)
	}
	if m.audio_file_path != nil {
		fields = append(fields, meeting.FieldAudioFilePath)
	}
	if m.state != nil {
		fields = append(fields, meeting.FieldState)
	}
	if m.state_changed_at != nil {
		fields = append(fields, meeting.FieldStateChangedAt)
	}
	if m.error_message != nil {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	if m.transcript_text != nil {
		fields = append(fields, meeting.FieldTranscriptText)
	}
	if m.transcript_segments != nil {
		fields = append(fields, meeting.FieldTranscriptSegments)
	}
	if m.corrected_transcript_text != nil {
		fields = append(fields, meeting.FieldCorrectedTranscriptText)
	}
	if m.corrected_transcript_segments != nil {
		fields = append(fields, meeting.FieldCorrectedTranscriptSegments)
	}
	if m.correction_questions != nil {
		fields = append(fields, meeting.FieldCorrectionQuestions)
	}
	if m.language != nil {
		fields = append(fields, meeting.FieldLanguage)
	}
	if m.created_at != nil {
		fields = append(fields, meeting.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeetingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldClientID:
		return m.ClientID()
	case meeting.FieldProjectID:
		return m.ProjectID()
	case meeting.FieldTitle:
		return m.Title()
	case meeting.FieldStartedAt:
		return m.StartedAt()
	case meeting.FieldStoppedAt:
		return m.StoppedAt()
	case meeting.FieldDurationSeconds:
		return m.DurationSeconds()
	case meeting.FieldMeetingType:
		return m.MeetingType()
	case meeting.FieldAudioInputType:
		return m.AudioInputType()
	case meeting.FieldAudioFilePath:
		return m.AudioFilePath()
	case meeting.FieldState:
		return m.State()
	case meeting.FieldStateChangedAt:
		return m.StateChangedAt()
	case meeting.FieldErrorMessage:
		return m.ErrorMessage()
	case meeting.FieldTranscriptText:
		return m.TranscriptText()
	case meeting.FieldTranscriptSegments:
		return m.TranscriptSegments()
	case meeting.FieldCorrectedTranscriptText:
		return m.CorrectedTranscriptText()
	case meeting.FieldCorrectedTranscriptSegments:
		return m.CorrectedTranscriptSegments()
	case meeting.FieldCorrectionQuestions:
		return m.CorrectionQuestions()
	case meeting.FieldLanguage:
		return m.Language()
	case meeting.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeetingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meeting.FieldClientID:
		return m.OldClientID(ctx)
	case meeting.FieldProjectID:
		return m.OldProjectID(ctx)
	case meeting.FieldTitle:
		return m.OldTitle(ctx)
	case meeting.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case meeting.FieldStoppedAt:
		return m.OldStoppedAt(ctx)
	case meeting.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case meeting.FieldMeetingType:
		return m.OldMeetingType(ctx)
	case meeting.FieldAudioInputType:
		return m.OldAudioInputType(ctx)
	case meeting.FieldAudioFilePath:
		return m.OldAudioFilePath(ctx)
	case meeting.FieldState:
		return m.OldState(ctx)
	case meeting.FieldStateChangedAt:
		return m.OldStateChangedAt(ctx)
	case meeting.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case meeting.FieldTranscriptText:
		return m.OldTranscriptText(ctx)
	case meeting.FieldTranscriptSegments:
		return m.OldTranscriptSegments(ctx)
	case meeting.FieldCorrectedTranscriptText:
		return m.OldCorrectedTranscriptText(ctx)
	case meeting.FieldCorrectedTranscriptSegments:
		return m.OldCorrectedTranscriptSegments(ctx)
	case meeting.FieldCorrectionQuestions:
		return m.OldCorrectionQuestions(ctx)
	case meeting.FieldLanguage:
		return m.OldLanguage(ctx)
	case meeting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Meeting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case meeting.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case meeting.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case meeting.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case meeting.FieldStoppedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoppedAt(v)
		return nil
	case meeting.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case meeting.FieldMeetingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingType(v)
		return nil
	case meeting.FieldAudioInputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioInputType(v)
		return nil
	case meeting.FieldAudioFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioFilePath(v)
		return nil
	case meeting.FieldState:
		v, ok := value.(meeting.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case meeting.FieldStateChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateChangedAt(v)
		return nil
	case meeting.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case meeting.FieldTranscriptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptText(v)
		return nil
	case meeting.FieldTranscriptSegments:
		v, ok := value.([]models.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptSegments(v)
		return nil
	case meeting.FieldCorrectedTranscriptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedTranscriptText(v)
		return nil
	case meeting.FieldCorrectedTranscriptSegments:
		v, ok := value.([]models.Segment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedTranscriptSegments(v)
		return nil
	case meeting.FieldCorrectionQuestions:
		v, ok := value.([]models.CorrectionQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectionQuestions(v)
		return nil
	case meeting.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case meeting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeetingMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, meeting.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeetingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meeting.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeetingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meeting.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Meeting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeetingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meeting.FieldProjectID) {
		fields = append(fields, meeting.FieldProjectID)
	}
	if m.FieldCleared(meeting.FieldTitle) {
		fields = append(fields, meeting.FieldTitle)
	}
	if m.FieldCleared(meeting.FieldStartedAt) {
		fields = append(fields, meeting.FieldStartedAt)
	}
	if m.FieldCleared(meeting.FieldStoppedAt) {
		fields = append(fields, meeting.FieldStoppedAt)
	}
	if m.FieldCleared(meeting.FieldMeetingType) {
		fields = append(fields, meeting.FieldMeetingType)
	}
	if m.FieldCleared(meeting.FieldAudioInputType) {
		fields = append(fields, meeting.FieldAudioInputType)
	}
	if m.FieldCleared(meeting.FieldErrorMessage) {
		fields = append(fields, meeting.FieldErrorMessage)
	}
	if m.FieldCleared(meeting.FieldTranscriptText) {
		fields = append(fields, meeting.FieldTranscriptText)
	}
	if m.FieldCleared(meeting.FieldTranscriptSegments) {
		fields = append(fields, meeting.FieldTranscriptSegments)
	}
	if m.FieldCleared(meeting.FieldCorrectedTranscriptText) {
		fields = append(fields, meeting.FieldCorrectedTranscriptText)
	}
	if m.FieldCleared(meeting.FieldCorrectedTranscriptSegments) {
		fields = append(fields, meeting.FieldCorrectedTranscriptSegments)
	}
	if m.FieldCleared(meeting.FieldCorrectionQuestions) {
		fields = append(fields, meeting.FieldCorrectionQuestions)
	}
	if m.FieldCleared(meeting.FieldLanguage) {
		fields = append(fields, meeting.FieldLanguage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeetingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeetingMutation) ClearField(name string) error {
	switch name {
	case meeting.FieldProjectID:
		m.ClearProjectID()
		return nil
	case meeting.FieldTitle:
		m.ClearTitle()
		return nil
	case meeting.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case meeting.FieldStoppedAt:
		m.ClearStoppedAt()
		return nil
	case meeting.FieldMeetingType:
		m.ClearMeetingType()
		return nil
	case meeting.FieldAudioInputType:
		m.ClearAudioInputType()
		return nil
	case meeting.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case meeting.FieldTranscriptText:
		m.ClearTranscriptText()
		return nil
	case meeting.FieldTranscriptSegments:
		m.ClearTranscriptSegments()
		return nil
	case meeting.FieldCorrectedTranscriptText:
		m.ClearCorrectedTranscriptText()
		return nil
	case meeting.FieldCorrectedTranscriptSegments:
		m.ClearCorrectedTranscriptSegments()
		return nil
	case meeting.FieldCorrectionQuestions:
		m.ClearCorrectionQuestions()
		return nil
	case meeting.FieldLanguage:
		m.ClearLanguage()
		return nil
	}
	return fmt.Errorf("unknown Meeting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeetingMutation) ResetField(name string) error {
	switch name {
	case meeting.FieldClientID:
		m.ResetClientID()
		return nil
	case meeting.FieldProjectID:
		m.ResetProjectID()
		return nil
	case meeting.FieldTitle:
		m.ResetTitle()
		return nil
	case meeting.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case meeting.FieldStoppedAt:
		m.ResetStoppedAt()
		return nil
	case meeting.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case meeting.FieldMeetingType:
		m.ResetMeetingType()
		return nil
	case meeting.FieldAudioInputType:
		m.ResetAudioInputType()
		return nil
	case meeting.FieldAudioFilePath:
		m.ResetAudioFilePath()
		return nil
	case meeting.FieldState:
		m.ResetState()
		return nil
	case meeting.FieldStateChangedAt:
		m.ResetStateChangedAt()
		return nil
	case meeting.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case meeting.FieldTranscriptText:
		m.ResetTranscriptText()
		return nil
	case meeting.FieldTranscriptSegments:
		m.ResetTranscriptSegments()
		return nil
	case meeting.FieldCorrectedTranscriptText:
		m.ResetCorrectedTranscriptText()
		return nil
	case meeting.FieldCorrectedTranscriptSegments:
		m.ResetCorrectedTranscriptSegments()
		return nil
	case meeting.FieldCorrectionQuestions:
		m.ResetCorrectionQuestions()
		return nil
	case meeting.FieldLanguage:
		m.ResetLanguage()
		return nil
	case meeting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Meeting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeetingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeetingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeetingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeetingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeetingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeetingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeetingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Meeting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeetingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Meeting edge %s", name)
}
