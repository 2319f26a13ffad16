package rollback

import (
	"context"
	"fmt"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
	"github.com/schemaflow/migration-engine/internal/domain/port/persistence"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
)

// Engine reverses executed migrations using heuristically derived SQL
type Engine struct {
	migrations   persistence.MigrationRepository
	connections  persistence.ConnectionRepository
	executions   persistence.ExecutionRepository
	rollbacks    persistence.RollbackRepository
	executors    dbexec.Factory
	cipher       coreport.SecretCipher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	emitter      coreport.EventEmitter
}

// NewEngine creates a rollback engine
func NewEngine(
	migrations persistence.MigrationRepository,
	connections persistence.ConnectionRepository,
	executions persistence.ExecutionRepository,
	rollbacks persistence.RollbackRepository,
	executors dbexec.Factory,
	cipher coreport.SecretCipher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	emitter coreport.EventEmitter,
) *Engine {
	return &Engine{
		migrations:   migrations,
		connections:  connections,
		executions:   executions,
		rollbacks:    rollbacks,
		executors:    executors,
		cipher:       cipher,
		timeProvider: timeProvider,
		logger:       logger,
		emitter:      emitter,
	}
}

// CanRollback reports whether a migration is eligible for reversal. Without
// force, ORM-tool migrations are never eligible and raw SQL must textually
// suggest reversibility.
func (e *Engine) CanRollback(ctx context.Context, teamID, migrationID string, force bool) (bool, error) {
	migration, err := e.ownedMigration(ctx, teamID, migrationID)
	if err != nil {
		return false, err
	}
	if !migration.Status.CanRollback() {
		return false, nil
	}
	return force || EligibleWithoutForce(migration.Kind, migration.Content), nil
}

// Rollback derives reversal SQL, runs it against the migration's connection,
// and records the outcome. Only EXECUTED migrations are eligible; a failed
// attempt reverts the migration to EXECUTED, never leaving it in EXECUTING.
func (e *Engine) Rollback(ctx context.Context, migrationID string, opts usecase.RollbackOptions) (*entity.RollbackResult, error) {
	migration, err := e.ownedMigration(ctx, opts.TeamID, migrationID)
	if err != nil {
		return nil, err
	}

	if !migration.Status.CanRollback() {
		return nil, &errs.ClaimConflictError{
			MigrationID: migrationID,
			Current:     migration.Status.String(),
			Wanted:      statusStrings(entity.RollbackClaimStates()),
		}
	}

	if !opts.Force && !EligibleWithoutForce(migration.Kind, migration.Content) {
		if migration.Kind.IsORMTool() {
			return nil, fmt.Errorf("%w: %s migrations require re-running the originating tool (or force)",
				errs.ErrRollbackUnsupported, migration.Kind)
		}
		return nil, fmt.Errorf("%w: content gives no indication it is reversible", errs.ErrRollbackUnsupported)
	}

	derivation := DeriveRollbackSQL(migration.Content)
	if len(derivation.Statements) == 0 && !opts.Force {
		if derivation.Undecidable {
			return nil, fmt.Errorf("%w: forward content drops a table; only a snapshot can restore its prior shape",
				errs.ErrRollbackUnsupported)
		}
		return nil, fmt.Errorf("%w: no reversal could be derived from the forward content", errs.ErrRollbackUnsupported)
	}

	claimed, err := e.migrations.Claim(ctx, migrationID, entity.RollbackClaimStates(), entity.StatusExecuting)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, &errs.ClaimConflictError{
			MigrationID: migrationID,
			Current:     entity.StatusExecuting.String(),
			Wanted:      statusStrings(entity.RollbackClaimStates()),
		}
	}

	start := e.timeProvider.Now()

	// Placeholder hook: actual dump creation is the database-native tooling's
	// job, this only reserves an identifier for it
	var backupLocation string
	if opts.CreateBackup {
		backupLocation = fmt.Sprintf("backup/%s/%s", migrationID, start.UTC().Format("20060102150405"))
		e.logger.Info("Backup location reserved", map[string]any{
			"migration_id": migrationID,
			"location":     backupLocation,
		})
	}

	rollbackSQL := derivation.SQL()
	if len(derivation.Statements) > 0 {
		if err := e.runReversal(ctx, migration, derivation.Statements); err != nil {
			return e.recordFailure(ctx, migration, opts, rollbackSQL, backupLocation, start, err)
		}
	} else {
		// Forced rollback with nothing derivable proceeds as a safe no-op
		// rather than fabricating statements
		e.logger.Warn("Forced rollback produced no SQL, completing as no-op", map[string]any{
			"migration_id": migrationID,
			"undecidable":  derivation.Undecidable,
		})
	}

	return e.recordSuccess(ctx, migration, opts, rollbackSQL, backupLocation, start)
}

// runReversal resolves the connection and executes the derived statements
func (e *Engine) runReversal(ctx context.Context, migration *entity.Migration, statements []string) error {
	conn, err := e.connections.GetByID(ctx, migration.ConnectionID)
	if err != nil {
		return err
	}

	password, err := e.cipher.Decrypt(conn.EncryptedPassword)
	if err != nil {
		return fmt.Errorf("decrypting connection secret: %w", err)
	}

	executor, err := e.executors.ExecutorFor(conn.Backend)
	if err != nil {
		return err
	}

	_, err = executor.Execute(ctx, dbexec.ConnectionConfig{
		Backend:  conn.Backend,
		Host:     conn.Host,
		Port:     conn.Port,
		Database: conn.Database,
		Username: conn.Username,
		Password: password,
		URL:      conn.ConnectionURL,
		SSL:      conn.SSL,
	}, statements)
	return err
}

// recordSuccess commits the rollback: append the record, flip status to
// ROLLED_BACK, tag the superseded execution, emit the lifecycle event.
func (e *Engine) recordSuccess(
	ctx context.Context,
	migration *entity.Migration,
	opts usecase.RollbackOptions,
	rollbackSQL, backupLocation string,
	start time.Time,
) (*entity.RollbackResult, error) {
	duration := e.timeProvider.Since(start)

	record := entity.NewMigrationRollback(
		migration.ID, opts.Reason, rollbackSQL,
		entity.RollbackSuccess, backupLocation, opts.RolledBackByID,
		e.timeProvider,
	)
	if err := e.rollbacks.Append(ctx, record); err != nil {
		e.logger.Error("Failed to append rollback record", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	migration.MarkRolledBack(e.timeProvider)
	if err := e.migrations.UpdateStatus(ctx, migration); err != nil {
		return nil, err
	}

	if err := e.executions.TagLatestAsRolledBack(ctx, migration.ID); err != nil {
		// Best-effort tag; the rollback record itself is the source of truth
		e.logger.Warn("Failed to tag superseded execution", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	e.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventMigrationRolledBack,
		MigrationID: migration.ID,
		TeamID:      migration.TeamID,
		ActorID:     opts.RolledBackByID,
		Metadata: map[string]any{
			"reason":      opts.Reason,
			"duration_ms": duration.Milliseconds(),
			"forced":      opts.Force,
		},
	})

	e.logger.Info("Migration rolled back", map[string]any{
		"migration_id": migration.ID,
		"duration_ms":  duration.Milliseconds(),
		"forced":       opts.Force,
	})

	return &entity.RollbackResult{
		Success:        true,
		Duration:       duration,
		RollbackSQL:    rollbackSQL,
		BackupLocation: backupLocation,
	}, nil
}

// recordFailure reverts the migration to EXECUTED and appends a FAILURE
// rollback record. The backend error is returned inside the result, never
// re-thrown raw.
func (e *Engine) recordFailure(
	ctx context.Context,
	migration *entity.Migration,
	opts usecase.RollbackOptions,
	rollbackSQL, backupLocation string,
	start time.Time,
	cause error,
) (*entity.RollbackResult, error) {
	duration := e.timeProvider.Since(start)

	migration.Status = entity.StatusExecuted
	if err := e.migrations.UpdateStatus(ctx, migration); err != nil {
		e.logger.Error("Failed to revert migration status after rollback failure", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	record := entity.NewMigrationRollback(
		migration.ID, opts.Reason, rollbackSQL,
		entity.RollbackFailure, backupLocation, opts.RolledBackByID,
		e.timeProvider,
	)
	if err := e.rollbacks.Append(ctx, record); err != nil {
		e.logger.Error("Failed to append rollback failure record", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	e.logger.Error("Rollback failed", map[string]any{
		"migration_id": migration.ID,
		"duration_ms":  duration.Milliseconds(),
		"error":        cause.Error(),
	})

	return &entity.RollbackResult{
		Success:        false,
		Duration:       duration,
		RollbackSQL:    rollbackSQL,
		BackupLocation: backupLocation,
		Error:          cause.Error(),
	}, nil
}

// ownedMigration loads a migration and re-checks team linkage even though
// authorization proper is an external collaborator
func (e *Engine) ownedMigration(ctx context.Context, teamID, migrationID string) (*entity.Migration, error) {
	migration, err := e.migrations.GetByID(ctx, migrationID)
	if err != nil {
		return nil, err
	}
	if !migration.OwnedBy(teamID) {
		return nil, fmt.Errorf("%w: migration belongs to another team", errs.ErrForbidden)
	}
	return migration, nil
}

// statusStrings renders claim states for error messages
func statusStrings(states []entity.MigrationStatus) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.String()
	}
	return out
}
