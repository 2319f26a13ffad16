package event

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// AuditEmitter records lifecycle events through the structured logger. The
// log stream is the audit trail; downstream collectors index on event_type.
type AuditEmitter struct {
	logger core.Logger
}

// NewAuditEmitter creates a log-backed event emitter
func NewAuditEmitter(logger core.Logger) core.EventEmitter {
	return &AuditEmitter{logger: logger}
}

// Emit writes one audit record. It never returns an error; emission failures
// must not fail the operation that produced the event.
func (e *AuditEmitter) Emit(_ context.Context, event core.Event) {
	fields := map[string]any{
		"event_type":   string(event.Type),
		"migration_id": event.MigrationID,
		"team_id":      event.TeamID,
		"actor_id":     event.ActorID,
	}
	for k, v := range event.Metadata {
		fields[k] = v
	}
	e.logger.Info("audit event", fields)
}
