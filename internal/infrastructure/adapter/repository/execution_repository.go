package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/database"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ExecutionRepository implements the append-only execution log using GORM
type ExecutionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewExecutionRepository creates a new ExecutionRepository instance
func NewExecutionRepository(db *gorm.DB, logger coreport.Logger) *ExecutionRepository {
	return &ExecutionRepository{db: db, logger: logger}
}

func executionToEntity(m *model.MigrationExecution) *entity.MigrationExecution {
	return &entity.MigrationExecution{
		ID:           m.ID,
		MigrationID:  m.MigrationID,
		Outcome:      entity.ExecutionOutcome(m.Outcome),
		Duration:     time.Duration(m.DurationMs) * time.Millisecond,
		ErrorMessage: m.ErrorMessage,
		ExecutedByID: m.ExecutedByID,
		ExecutedAt:   m.ExecutedAt,
	}
}

// Append persists one execution log entry. Transient store errors are
// retried; losing an audit row over a momentary hiccup is worse than the
// extra round trips.
func (r *ExecutionRepository) Append(ctx context.Context, execution *entity.MigrationExecution) error {
	row := &model.MigrationExecution{
		ID:           execution.ID,
		MigrationID:  execution.MigrationID,
		Outcome:      string(execution.Outcome),
		DurationMs:   execution.Duration.Milliseconds(),
		ErrorMessage: execution.ErrorMessage,
		ExecutedByID: execution.ExecutedByID,
		ExecutedAt:   execution.ExecutedAt,
	}
	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.db.WithContext(ctx).Create(row).Error
	}, r.logger)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// ListByMigration returns a migration's executions, newest first
func (r *ExecutionRepository) ListByMigration(ctx context.Context, migrationID string) ([]*entity.MigrationExecution, error) {
	var rows []model.MigrationExecution
	if err := r.db.WithContext(ctx).
		Where("migration_id = ?", migrationID).
		Order("executed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	executions := make([]*entity.MigrationExecution, len(rows))
	for i := range rows {
		executions[i] = executionToEntity(&rows[i])
	}
	return executions, nil
}

// TagLatestAsRolledBack marks the most recent execution as superseded by a
// rollback. No executions is a no-op.
func (r *ExecutionRepository) TagLatestAsRolledBack(ctx context.Context, migrationID string) error {
	var latest model.MigrationExecution
	err := r.db.WithContext(ctx).
		Where("migration_id = ?", migrationID).
		Order("executed_at DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if err := r.db.WithContext(ctx).
		Model(&model.MigrationExecution{}).
		Where("id = ?", latest.ID).
		Update("outcome", string(entity.OutcomeRollback)).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// RollbackRepository implements the append-only rollback log using GORM
type RollbackRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewRollbackRepository creates a new RollbackRepository instance
func NewRollbackRepository(db *gorm.DB, logger coreport.Logger) *RollbackRepository {
	return &RollbackRepository{db: db, logger: logger}
}

// Append persists one rollback record, retrying transient store errors
func (r *RollbackRepository) Append(ctx context.Context, rollback *entity.MigrationRollback) error {
	row := &model.MigrationRollback{
		ID:             rollback.ID,
		MigrationID:    rollback.MigrationID,
		Reason:         rollback.Reason,
		RollbackSQL:    rollback.RollbackSQL,
		Outcome:        string(rollback.Outcome),
		BackupLocation: rollback.BackupLocation,
		RolledBackByID: rollback.RolledBackByID,
		CompletedAt:    rollback.CompletedAt,
	}
	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		return r.db.WithContext(ctx).Create(row).Error
	}, r.logger)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// ListByMigration returns a migration's rollback attempts, newest first
func (r *RollbackRepository) ListByMigration(ctx context.Context, migrationID string) ([]*entity.MigrationRollback, error) {
	var rows []model.MigrationRollback
	if err := r.db.WithContext(ctx).
		Where("migration_id = ?", migrationID).
		Order("completed_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	rollbacks := make([]*entity.MigrationRollback, len(rows))
	for i := range rows {
		rollbacks[i] = &entity.MigrationRollback{
			ID:             rows[i].ID,
			MigrationID:    rows[i].MigrationID,
			Reason:         rows[i].Reason,
			RollbackSQL:    rows[i].RollbackSQL,
			Outcome:        entity.RollbackOutcome(rows[i].Outcome),
			BackupLocation: rows[i].BackupLocation,
			RolledBackByID: rows[i].RolledBackByID,
			CompletedAt:    rows[i].CompletedAt,
		}
	}
	return rollbacks, nil
}
