package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationRepository implements persistence.MigrationRepository using GORM
type MigrationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMigrationRepository creates a new MigrationRepository instance
func NewMigrationRepository(db *gorm.DB, logger coreport.Logger) *MigrationRepository {
	return &MigrationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func migrationToModel(m *entity.Migration) *model.Migration {
	return &model.Migration{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Version:      m.Version,
		Kind:         string(m.Kind),
		Content:      m.Content,
		Checksum:     m.Checksum,
		Status:       string(m.Status),
		TeamID:       m.TeamID,
		ConnectionID: m.ConnectionID,
		CreatedByID:  m.CreatedByID,
		CreatedAt:    m.CreatedAt,
		ExecutedAt:   m.ExecutedAt,
		RolledBackAt: m.RolledBackAt,
	}
}

func migrationToEntity(m *model.Migration) *entity.Migration {
	return &entity.Migration{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Version:      m.Version,
		Kind:         entity.MigrationKind(m.Kind),
		Content:      m.Content,
		Checksum:     m.Checksum,
		Status:       entity.MigrationStatus(m.Status),
		TeamID:       m.TeamID,
		ConnectionID: m.ConnectionID,
		CreatedByID:  m.CreatedByID,
		CreatedAt:    m.CreatedAt,
		ExecutedAt:   m.ExecutedAt,
		RolledBackAt: m.RolledBackAt,
	}
}

// handleDatabaseError standardizes store error handling
func (r *MigrationRepository) handleDatabaseError(operation string, err error, migrationID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", errs.ErrMigrationNotFound, migrationID)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"migration_id": migrationID,
		"error":        err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: migration %s already exists", errs.ErrValidation, migrationID)
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new migration record
func (r *MigrationRepository) Create(ctx context.Context, migration *entity.Migration) error {
	if err := r.db.WithContext(ctx).Create(migrationToModel(migration)).Error; err != nil {
		return r.handleDatabaseError("creating migration", err, migration.ID)
	}
	return nil
}

// GetByID retrieves a migration by ID
func (r *MigrationRepository) GetByID(ctx context.Context, id string) (*entity.Migration, error) {
	var m model.Migration
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting migration", err, id)
	}
	return migrationToEntity(&m), nil
}

// ListByTeam returns a team's migrations, newest first
func (r *MigrationRepository) ListByTeam(ctx context.Context, teamID string) ([]*entity.Migration, error) {
	var ms []model.Migration
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, r.handleDatabaseError("listing migrations", err, "")
	}

	migrations := make([]*entity.Migration, len(ms))
	for i := range ms {
		migrations[i] = migrationToEntity(&ms[i])
	}
	return migrations, nil
}

// Claim is the engine's concurrency guarantee: a single conditional UPDATE
// whose WHERE clause carries the eligible states. The row moves to toStatus
// only if its current status is in fromStates, and RowsAffected tells this
// caller whether it won the race. No read-then-write, no in-memory locking.
func (r *MigrationRepository) Claim(ctx context.Context, id string, fromStates []entity.MigrationStatus, toStatus entity.MigrationStatus) (bool, error) {
	from := make([]string, len(fromStates))
	for i, s := range fromStates {
		from[i] = string(s)
	}

	result := r.db.WithContext(ctx).
		Model(&model.Migration{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", string(toStatus))
	if result.Error != nil {
		return false, r.handleDatabaseError("claiming migration", result.Error, id)
	}

	claimed := result.RowsAffected == 1
	r.logger.Debug("Migration claim attempt", map[string]any{
		"migration_id": id,
		"to_status":    toStatus.String(),
		"claimed":      claimed,
	})
	return claimed, nil
}

// UpdateStatus moves a claimed migration to its outcome state and stamps the
// timestamp columns from the entity
func (r *MigrationRepository) UpdateStatus(ctx context.Context, migration *entity.Migration) error {
	updates := map[string]any{
		"status":         string(migration.Status),
		"executed_at":    migration.ExecutedAt,
		"rolled_back_at": migration.RolledBackAt,
	}

	result := r.db.WithContext(ctx).
		Model(&model.Migration{}).
		Where("id = ?", migration.ID).
		Updates(updates)
	if result.Error != nil {
		return r.handleDatabaseError("updating migration status", result.Error, migration.ID)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", errs.ErrMigrationNotFound, migration.ID)
	}
	return nil
}
