package persistence

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// MigrationRepository persists migration records and owns the engine's only
// concurrency guarantee: Claim.
type MigrationRepository interface {
	// Create persists a new migration record
	//
	// Possible errors:
	// - ErrValidation: duplicate identifier
	// - ErrDatabaseConnection: store unreachable
	Create(ctx context.Context, migration *entity.Migration) error

	// GetByID retrieves a migration by ID
	//
	// Possible errors:
	// - ErrMigrationNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.Migration, error)

	// ListByTeam returns a team's migrations, newest first
	ListByTeam(ctx context.Context, teamID string) ([]*entity.Migration, error)

	// Claim atomically moves a migration from one of the given states into
	// toStatus and reports whether this caller won. The store must implement
	// it as a conditional update (compare-and-swap), never a read-then-write,
	// since competing callers may be distinct processes. A false return with
	// nil error means another caller holds the claim or the migration is in
	// an ineligible state.
	Claim(ctx context.Context, id string, fromStates []entity.MigrationStatus, toStatus entity.MigrationStatus) (bool, error)

	// UpdateStatus moves a claimed migration to its outcome state and stamps
	// the matching timestamp columns from the entity
	UpdateStatus(ctx context.Context, migration *entity.Migration) error
}
