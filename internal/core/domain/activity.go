package domain

import "time"

// Activity actions recorded in the audit trail.
const (
	ActionCreated    = "created"
	ActionUpdated    = "updated"
	ActionDeleted    = "deleted"
	ActionRegistered = "registered"
)

// Entity types referenced by activity events.
const (
	EntityUser    = "user"
	EntityPost    = "post"
	EntityComment = "comment"
)

// ActivityEvent is an audit record of a state change, written asynchronously
// by the queue dispatcher.
type ActivityEvent struct {
	EntityType string
	EntityID   string
	Action     string
	ActorID    string
	OccurredAt time.Time
}
