package migration

import (
	"context"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/persistence"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
)

// Service manages migration records: creation, reads and the audit trail.
// Execution belongs to the dispatcher.
type Service struct {
	migrations   persistence.MigrationRepository
	connections  persistence.ConnectionRepository
	executions   persistence.ExecutionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	emitter      coreport.EventEmitter
}

// NewService creates a migration service
func NewService(
	migrations persistence.MigrationRepository,
	connections persistence.ConnectionRepository,
	executions persistence.ExecutionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	emitter coreport.EventEmitter,
) *Service {
	return &Service{
		migrations:   migrations,
		connections:  connections,
		executions:   executions,
		timeProvider: timeProvider,
		logger:       logger,
		emitter:      emitter,
	}
}

// Create registers a new migration in PENDING. The connection must exist and
// belong to the same team; the checksum is captured here, at creation time.
func (s *Service) Create(ctx context.Context, req usecase.CreateMigrationRequest) (*entity.Migration, error) {
	conn, err := s.connections.GetByID(ctx, req.ConnectionID)
	if err != nil {
		return nil, err
	}
	if !conn.OwnedBy(req.TeamID) {
		return nil, fmt.Errorf("%w: connection %s", errs.ErrConnectionNotFound, req.ConnectionID)
	}

	migration, err := entity.NewMigration(
		req.TeamID, req.ConnectionID, req.CreatedByID,
		req.Name, req.Kind, req.Content, req.Description,
		s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.migrations.Create(ctx, migration); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventMigrationCreated,
		MigrationID: migration.ID,
		TeamID:      migration.TeamID,
		ActorID:     req.CreatedByID,
		Metadata: map[string]any{
			"name":    migration.Name,
			"kind":    string(migration.Kind),
			"version": migration.Version,
		},
	})

	s.logger.Info("Migration created", map[string]any{
		"migration_id": migration.ID,
		"name":         migration.Name,
		"kind":         migration.Kind,
		"version":      migration.Version,
	})
	return migration, nil
}

// Get returns a migration owned by the team
func (s *Service) Get(ctx context.Context, teamID, migrationID string) (*entity.Migration, error) {
	migration, err := s.migrations.GetByID(ctx, migrationID)
	if err != nil {
		return nil, err
	}
	if !migration.OwnedBy(teamID) {
		return nil, fmt.Errorf("%w: migration %s", errs.ErrMigrationNotFound, migrationID)
	}
	return migration, nil
}

// List returns a team's migrations, newest first
func (s *Service) List(ctx context.Context, teamID string) ([]*entity.Migration, error) {
	return s.migrations.ListByTeam(ctx, teamID)
}

// History returns a migration's execution log, newest first
func (s *Service) History(ctx context.Context, teamID, migrationID string) ([]*entity.MigrationExecution, error) {
	if _, err := s.Get(ctx, teamID, migrationID); err != nil {
		return nil, err
	}
	return s.executions.ListByMigration(ctx, migrationID)
}
