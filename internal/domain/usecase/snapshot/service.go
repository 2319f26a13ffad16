package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
	"github.com/schemaflow/migration-engine/internal/domain/port/persistence"
	"github.com/schemaflow/migration-engine/internal/domain/usecase/rollback"
)

// Service captures recoverability records. Derivation is pure; persistence
// and pre-state capture are optional extras a migration never depends on.
type Service struct {
	migrations   persistence.MigrationRepository
	connections  persistence.ConnectionRepository
	snapshots    persistence.SnapshotRepository
	executors    dbexec.Factory
	cipher       coreport.SecretCipher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a snapshot service
func NewService(
	migrations persistence.MigrationRepository,
	connections persistence.ConnectionRepository,
	snapshots persistence.SnapshotRepository,
	executors dbexec.Factory,
	cipher coreport.SecretCipher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		migrations:   migrations,
		connections:  connections,
		snapshots:    snapshots,
		executors:    executors,
		cipher:       cipher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Derive builds an in-memory snapshot descriptor from migration content:
// affected tables and best-effort rollback SQL, no database contact.
func (s *Service) Derive(ctx context.Context, teamID, migrationID string) (*entity.MigrationSnapshot, error) {
	migration, err := s.ownedMigration(ctx, teamID, migrationID)
	if err != nil {
		return nil, err
	}
	return s.derive(migration, ""), nil
}

func (s *Service) derive(migration *entity.Migration, createdByID string) *entity.MigrationSnapshot {
	derivation := rollback.DeriveRollbackSQL(migration.Content)
	snap := entity.NewMigrationSnapshot(
		migration.ID,
		migration.Version,
		rollback.AffectedTables(migration.Content),
		derivation.SQL(),
		nil,
		createdByID,
		s.timeProvider,
	)
	if derivation.Undecidable {
		snap.Metadata["rollback_undecidable"] = "forward content drops a table"
	}
	if derivation.Partial {
		snap.Metadata["rollback_partial"] = "some statements had no derivable reverse"
	}
	return snap
}

// CreateAndPersist derives and stores the migration's snapshot, optionally
// capturing live pre-change table state first. Idempotent: one snapshot per
// migration, re-requesting returns the existing record.
func (s *Service) CreateAndPersist(ctx context.Context, teamID, migrationID, createdByID string, capturePreState bool) (*entity.MigrationSnapshot, error) {
	migration, err := s.ownedMigration(ctx, teamID, migrationID)
	if err != nil {
		return nil, err
	}

	existing, err := s.snapshots.GetByMigration(ctx, migrationID)
	if err == nil {
		existing.IsPersisted = true
		return existing, nil
	}
	if !errors.Is(err, errs.ErrSnapshotNotFound) {
		return nil, err
	}

	snap := s.derive(migration, createdByID)

	if capturePreState {
		// Capture failure degrades to "no pre-state"; it never blocks the
		// snapshot, let alone the migration
		preState, captureErr := s.capturePreState(ctx, migration, snap.AffectedTables)
		if captureErr != nil {
			s.logger.Warn("Pre-state capture failed, persisting snapshot without it", map[string]any{
				"migration_id": migrationID,
				"error":        captureErr.Error(),
			})
			snap.Metadata["pre_state_capture"] = "failed: " + captureErr.Error()
		} else {
			snap.PreState = preState
		}
	}

	if err := s.snapshots.Create(ctx, snap); err != nil {
		// A concurrent call may have persisted first; the stored row wins
		if errors.Is(err, errs.ErrValidation) {
			if existing, getErr := s.snapshots.GetByMigration(ctx, migrationID); getErr == nil {
				existing.IsPersisted = true
				return existing, nil
			}
		}
		return nil, err
	}
	snap.IsPersisted = true

	s.logger.Info("Snapshot persisted", map[string]any{
		"migration_id":    migrationID,
		"snapshot_id":     snap.ID,
		"affected_tables": snap.AffectedTables,
		"has_pre_state":   len(snap.PreState) > 0,
	})
	return snap, nil
}

// Get returns the persisted snapshot when one exists, otherwise an on-the-fly
// derived one distinguished by IsPersisted.
func (s *Service) Get(ctx context.Context, teamID, migrationID string) (*entity.MigrationSnapshot, error) {
	migration, err := s.ownedMigration(ctx, teamID, migrationID)
	if err != nil {
		return nil, err
	}

	persisted, err := s.snapshots.GetByMigration(ctx, migrationID)
	if err == nil {
		persisted.IsPersisted = true
		return persisted, nil
	}
	if !errors.Is(err, errs.ErrSnapshotNotFound) {
		return nil, err
	}
	return s.derive(migration, ""), nil
}

// ProviderCapability reports the hosting provider's native PITR support for
// a connection. Informational only.
func (s *Service) ProviderCapability(ctx context.Context, teamID, connectionID string) (*entity.PITRCapability, error) {
	conn, err := s.connections.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.OwnedBy(teamID) {
		return nil, fmt.Errorf("%w: connection belongs to another team", errs.ErrForbidden)
	}
	return providerCapability(conn), nil
}

// capturePreState opens a separate short-lived read connection and inspects
// the affected tables' current column definitions
func (s *Service) capturePreState(ctx context.Context, migration *entity.Migration, tables []string) ([]entity.TableState, error) {
	if len(tables) == 0 {
		return nil, nil
	}

	conn, err := s.connections.GetByID(ctx, migration.ConnectionID)
	if err != nil {
		return nil, err
	}

	password, err := s.cipher.Decrypt(conn.EncryptedPassword)
	if err != nil {
		return nil, fmt.Errorf("decrypting connection secret: %w", err)
	}

	executor, err := s.executors.ExecutorFor(conn.Backend)
	if err != nil {
		return nil, err
	}

	return executor.InspectTables(ctx, dbexec.ConnectionConfig{
		Backend:  conn.Backend,
		Host:     conn.Host,
		Port:     conn.Port,
		Database: conn.Database,
		Username: conn.Username,
		Password: password,
		URL:      conn.ConnectionURL,
		SSL:      conn.SSL,
	}, tables)
}

// ownedMigration loads a migration and re-checks team linkage even though
// authorization proper is an external collaborator
func (s *Service) ownedMigration(ctx context.Context, teamID, migrationID string) (*entity.Migration, error) {
	migration, err := s.migrations.GetByID(ctx, migrationID)
	if err != nil {
		return nil, err
	}
	if !migration.OwnedBy(teamID) {
		return nil, fmt.Errorf("%w: migration belongs to another team", errs.ErrForbidden)
	}
	return migration, nil
}
