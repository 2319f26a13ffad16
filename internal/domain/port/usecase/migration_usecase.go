package usecase

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// CreateMigrationRequest is the boundary input for registering a migration
type CreateMigrationRequest struct {
	TeamID       string
	ConnectionID string
	CreatedByID  string
	Name         string
	Kind         string
	Content      string
	Description  string
}

// MigrationUseCase manages migration records and their audit trail
type MigrationUseCase interface {
	// Create registers a new migration in PENDING and emits migration-created
	Create(ctx context.Context, req CreateMigrationRequest) (*entity.Migration, error)

	// Get returns a migration owned by the team
	Get(ctx context.Context, teamID, migrationID string) (*entity.Migration, error)

	// List returns a team's migrations, newest first
	List(ctx context.Context, teamID string) ([]*entity.Migration, error)

	// History returns a migration's execution log, newest first
	History(ctx context.Context, teamID, migrationID string) ([]*entity.MigrationExecution, error)
}
