package persistence

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ExecutionRepository appends to the execution audit trail. Rows are never
// mutated except for the rollback tag on the most recent entry.
type ExecutionRepository interface {
	// Append persists one execution log entry
	Append(ctx context.Context, execution *entity.MigrationExecution) error

	// ListByMigration returns a migration's executions, newest first
	ListByMigration(ctx context.Context, migrationID string) ([]*entity.MigrationExecution, error)

	// TagLatestAsRolledBack marks the most recent execution of a migration
	// as superseded by a rollback. A migration with no executions is a no-op.
	TagLatestAsRolledBack(ctx context.Context, migrationID string) error
}

// RollbackRepository appends rollback attempt records
type RollbackRepository interface {
	// Append persists one rollback record
	Append(ctx context.Context, rollback *entity.MigrationRollback) error

	// ListByMigration returns a migration's rollback attempts, newest first
	ListByMigration(ctx context.Context, migrationID string) ([]*entity.MigrationRollback, error)
}
