// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/JanDamek/jervis-transcribe/ent/indextask"
	"github.com/JanDamek/jervis-transcribe/ent/meeting"
	"github.com/JanDamek/jervis-transcribe/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	indextaskFields := schema.IndexTask{}.Fields()
	_ = indextaskFields
	// indextaskDescCreatedAt is the schema descriptor for created_at field.
	indextaskDescCreatedAt := indextaskFields[8].Descriptor()
	// indextask.DefaultCreatedAt holds the default value on creation for the created_at field.
	indextask.DefaultCreatedAt = indextaskDescCreatedAt.Default.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescDurationSeconds is the schema descriptor for duration_seconds field.
	meetingDescDurationSeconds := meetingFields[6].Descriptor()
	// meeting.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	meeting.DefaultDurationSeconds = meetingDescDurationSeconds.Default.(float64)
	// meetingDescStateChangedAt is the schema descriptor for state_changed_at field.
	meetingDescStateChangedAt := meetingFields[11].Descriptor()
	// meeting.DefaultStateChangedAt holds the default value on creation for the state_changed_at field.
	meeting.DefaultStateChangedAt = meetingDescStateChangedAt.Default.(func() time.Time)
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[19].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
}
