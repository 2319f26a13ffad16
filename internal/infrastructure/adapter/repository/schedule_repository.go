package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ScheduleRepository implements persistence.ScheduleRepository using GORM
type ScheduleRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewScheduleRepository creates a new ScheduleRepository instance
func NewScheduleRepository(db *gorm.DB, logger coreport.Logger) *ScheduleRepository {
	return &ScheduleRepository{db: db, logger: logger}
}

func scheduleToModel(s *entity.ScheduledExecution) *model.ScheduledExecution {
	return &model.ScheduledExecution{
		ID:            s.ID,
		MigrationID:   s.MigrationID,
		ConnectionID:  s.ConnectionID,
		TeamID:        s.TeamID,
		ScheduledFor:  s.ScheduledFor,
		Status:        string(s.Status),
		ErrorMessage:  s.ErrorMessage,
		ScheduledByID: s.ScheduledByID,
		CreatedAt:     s.CreatedAt,
		ProcessedAt:   s.ProcessedAt,
	}
}

func scheduleToEntity(m *model.ScheduledExecution) *entity.ScheduledExecution {
	return &entity.ScheduledExecution{
		ID:            m.ID,
		MigrationID:   m.MigrationID,
		ConnectionID:  m.ConnectionID,
		TeamID:        m.TeamID,
		ScheduledFor:  m.ScheduledFor,
		Status:        entity.ScheduleStatus(m.Status),
		ErrorMessage:  m.ErrorMessage,
		ScheduledByID: m.ScheduledByID,
		CreatedAt:     m.CreatedAt,
		ProcessedAt:   m.ProcessedAt,
	}
}

// Create persists a new scheduled execution
func (r *ScheduleRepository) Create(ctx context.Context, schedule *entity.ScheduledExecution) error {
	if err := r.db.WithContext(ctx).Create(scheduleToModel(schedule)).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// GetByID retrieves a scheduled execution by ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*entity.ScheduledExecution, error) {
	var row model.ScheduledExecution
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", errs.ErrScheduleNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return scheduleToEntity(&row), nil
}

// ListByTeam returns a team's scheduled executions, soonest first
func (r *ScheduleRepository) ListByTeam(ctx context.Context, teamID string) ([]*entity.ScheduledExecution, error) {
	var rows []model.ScheduledExecution
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("scheduled_for ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	schedules := make([]*entity.ScheduledExecution, len(rows))
	for i := range rows {
		schedules[i] = scheduleToEntity(&rows[i])
	}
	return schedules, nil
}

// ListDue returns all PENDING entries due at or before the given instant
func (r *ScheduleRepository) ListDue(ctx context.Context, before time.Time) ([]*entity.ScheduledExecution, error) {
	var rows []model.ScheduledExecution
	if err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_for <= ?", string(entity.SchedulePending), before).
		Order("scheduled_for ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	schedules := make([]*entity.ScheduledExecution, len(rows))
	for i := range rows {
		schedules[i] = scheduleToEntity(&rows[i])
	}
	return schedules, nil
}

// Claim moves a PENDING entry to PROCESSING with a compare-and-swap. The
// winning tick is the only one that dispatches the entry.
func (r *ScheduleRepository) Claim(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ScheduledExecution{}).
		Where("id = ? AND status = ?", id, string(entity.SchedulePending)).
		Update("status", string(entity.ScheduleProcessing))
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return result.RowsAffected > 0, nil
}

// MarkProcessed terminalizes a claimed entry. The status guard keeps a
// concurrent tick from double-terminalizing the same entry.
func (r *ScheduleRepository) MarkProcessed(ctx context.Context, schedule *entity.ScheduledExecution) error {
	result := r.db.WithContext(ctx).
		Model(&model.ScheduledExecution{}).
		Where("id = ? AND status = ?", schedule.ID, string(entity.ScheduleProcessing)).
		Updates(map[string]any{
			"status":        string(schedule.Status),
			"error_message": schedule.ErrorMessage,
			"processed_at":  schedule.ProcessedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s is not claimed for processing", errs.ErrScheduleNotFound, schedule.ID)
	}
	return nil
}

// Delete removes a PENDING entry (cancellation)
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(entity.SchedulePending)).
		Delete(&model.ScheduledExecution{})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errs.ErrScheduleNotFound, id)
	}
	return nil
}
