package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// SnapshotRepository implements persistence.SnapshotRepository using GORM.
// Affected tables, pre-state and metadata travel as JSON text columns.
type SnapshotRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSnapshotRepository creates a new SnapshotRepository instance
func NewSnapshotRepository(db *gorm.DB, logger coreport.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func snapshotToModel(s *entity.MigrationSnapshot) (*model.MigrationSnapshot, error) {
	tables, err := json.Marshal(s.AffectedTables)
	if err != nil {
		return nil, err
	}
	preState, err := json.Marshal(s.PreState)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(s.Metadata)
	if err != nil {
		return nil, err
	}

	return &model.MigrationSnapshot{
		ID:             s.ID,
		MigrationID:    s.MigrationID,
		SchemaVersion:  s.SchemaVersion,
		AffectedTables: string(tables),
		RollbackSQL:    s.RollbackSQL,
		PreState:       string(preState),
		Metadata:       string(metadata),
		CreatedByID:    s.CreatedByID,
		CreatedAt:      s.CreatedAt,
	}, nil
}

func snapshotToEntity(m *model.MigrationSnapshot) (*entity.MigrationSnapshot, error) {
	snap := &entity.MigrationSnapshot{
		ID:            m.ID,
		MigrationID:   m.MigrationID,
		SchemaVersion: m.SchemaVersion,
		RollbackSQL:   m.RollbackSQL,
		CreatedByID:   m.CreatedByID,
		CreatedAt:     m.CreatedAt,
	}

	if m.AffectedTables != "" {
		if err := json.Unmarshal([]byte(m.AffectedTables), &snap.AffectedTables); err != nil {
			return nil, err
		}
	}
	if m.PreState != "" {
		if err := json.Unmarshal([]byte(m.PreState), &snap.PreState); err != nil {
			return nil, err
		}
	}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &snap.Metadata); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// Create persists a snapshot. The unique index on migration_id enforces the
// 1:1 invariant at the store level.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *entity.MigrationSnapshot) error {
	row, err := snapshotToModel(snapshot)
	if err != nil {
		return fmt.Errorf("%w: serializing snapshot: %s", errs.ErrInternalServer, err.Error())
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: snapshot already exists for migration %s",
				errs.ErrValidation, snapshot.MigrationID)
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// GetByMigration returns the persisted snapshot for a migration
func (r *SnapshotRepository) GetByMigration(ctx context.Context, migrationID string) (*entity.MigrationSnapshot, error) {
	var row model.MigrationSnapshot
	err := r.db.WithContext(ctx).First(&row, "migration_id = ?", migrationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: migration %s", errs.ErrSnapshotNotFound, migrationID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	snap, err := snapshotToEntity(&row)
	if err != nil {
		return nil, fmt.Errorf("%w: deserializing snapshot: %s", errs.ErrInternalServer, err.Error())
	}
	return snap, nil
}
