package execution

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

// Dispatcher routes a migration by kind to its execution strategy and owns
// the execute-side state transitions. All kinds ultimately delegate to the
// backend executor; ORM-tool kinds differ only in their dry-run preview.
type Dispatcher struct {
	migrations   persistence.MigrationRepository
	connections  persistence.ConnectionRepository
	executions   persistence.ExecutionRepository
	executors    dbexec.Factory
	cipher       coreport.SecretCipher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	emitter      coreport.EventEmitter
}

// NewDispatcher creates an execution dispatcher
func NewDispatcher(
	migrations persistence.MigrationRepository,
	connections persistence.ConnectionRepository,
	executions persistence.ExecutionRepository,
	executors dbexec.Factory,
	cipher coreport.SecretCipher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	emitter coreport.EventEmitter,
) *Dispatcher {
	return &Dispatcher{
		migrations:   migrations,
		connections:  connections,
		executions:   executions,
		executors:    executors,
		cipher:       cipher,
		timeProvider: timeProvider,
		logger:       logger,
		emitter:      emitter,
	}
}

// Execute runs one migration. Order of operations is deliberate: team
// linkage, checksum verification, the dry-run short-circuit and batch
// preparation (connection, secret, statements) all happen before any claim,
// so a rejected call leaves no trace. A real run claims the migration with a
// compare-and-swap, and exactly one execution record is appended whatever
// the outcome.
func (d *Dispatcher) Execute(ctx context.Context, migrationID string, opts usecase.ExecuteOptions) (*entity.ExecutionResult, error) {
	migration, err := d.migrations.GetByID(ctx, migrationID)
	if err != nil {
		return nil, err
	}
	if !migration.OwnedBy(opts.TeamID) {
		return nil, fmt.Errorf("%w: migration belongs to another team", errs.ErrForbidden)
	}

	if opts.Checksum != "" && !migration.VerifyChecksum(opts.Checksum) {
		return nil, &errs.ChecksumMismatchError{
			MigrationID: migrationID,
			Supplied:    opts.Checksum,
			Current:     entity.ComputeChecksum(migration.Content),
		}
	}

	if opts.DryRun {
		return d.dryRun(migration), nil
	}

	batch, err := d.prepareBatch(ctx, migration)
	if err != nil {
		return nil, err
	}

	claimed, err := d.migrations.Claim(ctx, migrationID, entity.ExecutionClaimStates(), entity.StatusExecuting)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, &errs.ClaimConflictError{
			MigrationID: migrationID,
			Current:     migration.Status.String(),
			Wanted:      claimStateStrings(),
		}
	}

	start := d.timeProvider.Now()

	execResult, err := batch.executor.Execute(ctx, batch.config, batch.statements)
	if err != nil {
		return d.recordFailure(ctx, migration, opts, start, err)
	}
	return d.recordSuccess(ctx, migration, opts, start, execResult)
}

// dryRun previews without state transitions or target contact. The contract
// is "no irreversible effect occurs"; this implementation satisfies it for
// every kind by never opening a connection.
func (d *Dispatcher) dryRun(migration *entity.Migration) *entity.ExecutionResult {
	d.logger.Info("Dry-run preview", map[string]any{
		"migration_id": migration.ID,
		"kind":         migration.Kind,
	})
	return &entity.ExecutionResult{
		Success: true,
		DryRun:  true,
		Preview: previewStatements(migration.Content),
	}
}

// preparedBatch is everything a claimed run needs to touch the target
type preparedBatch struct {
	executor   dbexec.Executor
	config     dbexec.ConnectionConfig
	statements []string
}

// prepareBatch splits and validates the content, resolves the connection and
// decrypts its secret. It runs before the claim so a dangling connection or
// an empty batch rejects the call without any state mutation.
func (d *Dispatcher) prepareBatch(ctx context.Context, migration *entity.Migration) (*preparedBatch, error) {
	statements := dbexec.SplitStatements(migration.Content)
	if len(statements) == 0 {
		return nil, fmt.Errorf("%w: migration content contains no statements", errs.ErrValidation)
	}

	conn, err := d.connections.GetByID(ctx, migration.ConnectionID)
	if err != nil {
		return nil, err
	}

	password, err := d.cipher.Decrypt(conn.EncryptedPassword)
	if err != nil {
		return nil, fmt.Errorf("decrypting connection secret: %w", err)
	}

	executor, err := d.executors.ExecutorFor(conn.Backend)
	if err != nil {
		return nil, err
	}

	return &preparedBatch{
		executor: executor,
		config: dbexec.ConnectionConfig{
			Backend:  conn.Backend,
			Host:     conn.Host,
			Port:     conn.Port,
			Database: conn.Database,
			Username: conn.Username,
			Password: password,
			URL:      conn.ConnectionURL,
			SSL:      conn.SSL,
		},
		statements: statements,
	}, nil
}

// recordSuccess appends the execution record, transitions to EXECUTED and
// emits migration-executed
func (d *Dispatcher) recordSuccess(
	ctx context.Context,
	migration *entity.Migration,
	opts usecase.ExecuteOptions,
	start time.Time,
	execResult *dbexec.ExecuteResult,
) (*entity.ExecutionResult, error) {
	duration := d.timeProvider.Since(start)

	record := entity.NewMigrationExecution(
		migration.ID, entity.OutcomeSuccess, duration, "", opts.ExecutedByID, d.timeProvider)
	if err := d.executions.Append(ctx, record); err != nil {
		d.logger.Error("Failed to append execution record", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	migration.MarkExecuted(d.timeProvider)
	if err := d.migrations.UpdateStatus(ctx, migration); err != nil {
		return nil, err
	}

	d.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventMigrationExecuted,
		MigrationID: migration.ID,
		TeamID:      migration.TeamID,
		ActorID:     opts.ExecutedByID,
		Metadata: map[string]any{
			"duration_ms":   duration.Milliseconds(),
			"rows_affected": execResult.RowsAffected,
		},
	})

	d.logger.Info("Migration executed", map[string]any{
		"migration_id":  migration.ID,
		"duration_ms":   duration.Milliseconds(),
		"statements":    len(execResult.Statements),
		"rows_affected": execResult.RowsAffected,
	})

	return &entity.ExecutionResult{
		Success:      true,
		Duration:     duration,
		Statements:   execResult.Statements,
		RowsAffected: execResult.RowsAffected,
	}, nil
}

// recordFailure appends a FAILURE record, transitions to FAILED and emits
// migration-failed. The backend error is returned inside the result.
func (d *Dispatcher) recordFailure(
	ctx context.Context,
	migration *entity.Migration,
	opts usecase.ExecuteOptions,
	start time.Time,
	cause error,
) (*entity.ExecutionResult, error) {
	duration := d.timeProvider.Since(start)

	record := entity.NewMigrationExecution(
		migration.ID, entity.OutcomeFailure, duration, cause.Error(), opts.ExecutedByID, d.timeProvider)
	if err := d.executions.Append(ctx, record); err != nil {
		d.logger.Error("Failed to append execution failure record", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	migration.MarkFailed()
	if err := d.migrations.UpdateStatus(ctx, migration); err != nil {
		d.logger.Error("Failed to transition migration to FAILED", map[string]any{
			"migration_id": migration.ID,
			"error":        err.Error(),
		})
	}

	d.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventMigrationFailed,
		MigrationID: migration.ID,
		TeamID:      migration.TeamID,
		ActorID:     opts.ExecutedByID,
		Metadata: map[string]any{
			"duration_ms": duration.Milliseconds(),
			"error":       cause.Error(),
		},
	})

	d.logger.Error("Migration execution failed", map[string]any{
		"migration_id": migration.ID,
		"duration_ms":  duration.Milliseconds(),
		"error":        cause.Error(),
	})

	return &entity.ExecutionResult{
		Success:  false,
		Duration: duration,
		Error:    cause.Error(),
	}, nil
}

func claimStateStrings() []string {
	states := entity.ExecutionClaimStates()
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.String()
	}
	return out
}
