package persistence

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ConnectionRepository persists database connection descriptors. Deletion is
// intentionally absent: connections are shared by many migrations and removal
// semantics belong to the persistence layer, not this engine.
type ConnectionRepository interface {
	// Create persists a new connection descriptor
	Create(ctx context.Context, conn *entity.DatabaseConnection) error

	// GetByID retrieves a connection by ID
	//
	// Possible errors:
	// - ErrConnectionNotFound
	// - ErrDatabaseConnection
	GetByID(ctx context.Context, id string) (*entity.DatabaseConnection, error)

	// ListByTeam returns a team's connections
	ListByTeam(ctx context.Context, teamID string) ([]*entity.DatabaseConnection, error)
}
