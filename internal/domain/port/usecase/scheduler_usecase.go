package usecase

import (
	"context"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ScheduleRequest is the boundary input for deferring a migration
type ScheduleRequest struct {
	MigrationID   string
	ConnectionID  string
	TeamID        string
	ScheduledFor  time.Time
	ScheduledByID string
}

// Scheduler turns time-based intent into executions
type Scheduler interface {
	// Schedule validates and persists a future-dated execution intent
	Schedule(ctx context.Context, req ScheduleRequest) (*entity.ScheduledExecution, error)

	// Cancel deletes a PENDING scheduled execution. Terminal entries fail
	// with a conflict naming their status.
	Cancel(ctx context.Context, scheduleID, teamID, requesterID string) error

	// List returns a team's scheduled executions
	List(ctx context.Context, teamID string) ([]*entity.ScheduledExecution, error)

	// ProcessDue promotes every due PENDING entry into the dispatcher,
	// isolating per-item failures. Invoked by an external periodic trigger.
	ProcessDue(ctx context.Context) error
}
