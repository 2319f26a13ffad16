package usecase

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

// CreateConnectionRequest is the boundary input for registering a target
// database. Password arrives in plaintext and is encrypted before persistence.
type CreateConnectionRequest struct {
	TeamID        string
	Name          string
	Backend       string
	Host          string
	Port          int
	Database      string
	Username      string
	Password      string
	ConnectionURL string
	SSL           bool
}

// ConnectionUseCase manages target database descriptors
type ConnectionUseCase interface {
	// Create encrypts the password and persists the descriptor
	Create(ctx context.Context, req CreateConnectionRequest) (*entity.DatabaseConnection, error)

	// Get returns a connection owned by the team
	Get(ctx context.Context, teamID, connectionID string) (*entity.DatabaseConnection, error)

	// List returns a team's connections
	List(ctx context.Context, teamID string) ([]*entity.DatabaseConnection, error)

	// Test probes connectivity and reports latency
	Test(ctx context.Context, teamID, connectionID string) (*dbexec.TestResult, error)

	// DetectORMTool runs the advisory catalog probe
	DetectORMTool(ctx context.Context, teamID, connectionID string) (*dbexec.ORMDetection, error)
}
