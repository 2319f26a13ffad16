package persistence

import (
	"context"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ScheduleRepository persists deferred execution intents
type ScheduleRepository interface {
	// Create persists a new scheduled execution
	Create(ctx context.Context, schedule *entity.ScheduledExecution) error

	// GetByID retrieves a scheduled execution by ID
	//
	// Possible errors:
	// - ErrScheduleNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.ScheduledExecution, error)

	// ListByTeam returns a team's scheduled executions, soonest first
	ListByTeam(ctx context.Context, teamID string) ([]*entity.ScheduledExecution, error)

	// ListDue returns all PENDING entries whose scheduled time is at or
	// before the given instant
	ListDue(ctx context.Context, before time.Time) ([]*entity.ScheduledExecution, error)

	// Claim atomically moves a PENDING entry to PROCESSING. Returns false
	// when another tick already owns it.
	Claim(ctx context.Context, id string) (bool, error)

	// MarkProcessed terminalizes a PROCESSING entry with its outcome.
	// Terminal entries are never re-armed.
	MarkProcessed(ctx context.Context, schedule *entity.ScheduledExecution) error

	// Delete removes a PENDING entry (cancellation)
	Delete(ctx context.Context, id string) error
}
