package usecase

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// SnapshotService captures recoverability records for migrations
type SnapshotService interface {
	// Derive builds an in-memory snapshot descriptor from migration content
	// without touching any database
	Derive(ctx context.Context, teamID, migrationID string) (*entity.MigrationSnapshot, error)

	// CreateAndPersist derives a snapshot, optionally captures live pre-state
	// of the affected tables, and stores it. Idempotent: an existing snapshot
	// is returned unchanged.
	CreateAndPersist(ctx context.Context, teamID, migrationID, createdByID string, capturePreState bool) (*entity.MigrationSnapshot, error)

	// Get returns the persisted snapshot when one exists, otherwise an
	// on-the-fly derived one with IsPersisted false
	Get(ctx context.Context, teamID, migrationID string) (*entity.MigrationSnapshot, error)

	// ProviderCapability reports whether the connection's hosting provider
	// natively supports point-in-time recovery
	ProviderCapability(ctx context.Context, teamID, connectionID string) (*entity.PITRCapability, error)
}
