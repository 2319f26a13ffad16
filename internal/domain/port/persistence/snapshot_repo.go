package persistence

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// SnapshotRepository persists at most one snapshot per migration
type SnapshotRepository interface {
	// Create persists a snapshot. ErrValidation when one already exists for
	// the migration; callers wanting idempotency should check GetByMigration
	// first (the snapshot service does).
	Create(ctx context.Context, snapshot *entity.MigrationSnapshot) error

	// GetByMigration returns the persisted snapshot for a migration
	//
	// Possible errors:
	// - ErrSnapshotNotFound
	// - ErrDatabaseConnection
	GetByMigration(ctx context.Context, migrationID string) (*entity.MigrationSnapshot, error)
}
