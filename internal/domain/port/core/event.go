package core

import "context"

// EventType identifies a lifecycle event emitted by the engine
type EventType string

// Lifecycle events consumed by audit logging and webhook fan-out
const (
	EventMigrationCreated    EventType = "migration-created"
	EventMigrationExecuted   EventType = "migration-executed"
	EventMigrationFailed     EventType = "migration-failed"
	EventMigrationRolledBack EventType = "migration-rolled-back"
	EventScheduleCreated     EventType = "schedule-created"
	EventScheduleCancelled   EventType = "schedule-cancelled"
	EventScheduleProcessed   EventType = "schedule-processed"
)

// Event carries the outcome metadata external collaborators consume
type Event struct {
	Type        EventType
	MigrationID string
	TeamID      string
	ActorID     string
	Metadata    map[string]any
}

// EventEmitter delivers lifecycle events to external collaborators after the
// state transition commits. Delivery is fire-and-forget: the engine never
// retries and a failed emission must not fail the operation that produced it.
type EventEmitter interface {
	Emit(ctx context.Context, event Event)
}

// Notifier delivers user-facing notifications (email, chat) for scheduler
// outcomes. Fire-and-forget, same policy as EventEmitter.
type Notifier interface {
	Notify(ctx context.Context, teamID, subject, message string)
}
