package migration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current engine store schema version
	CurrentSchemaVersion = "1.0.0"
)

// SchemaManager manages the engine store's own schema. It versions and
// migrates the engine's bookkeeping tables, not customer databases.
type SchemaManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *AdvancedIndexManager
}

// NewSchemaManager creates a new schema manager
func NewSchemaManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *SchemaManager {
	return &SchemaManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll brings the engine store schema to the current version
func (m *SchemaManager) MigrateAll() error {
	m.logger.Info("Starting engine store schema migration", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Engine store already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.indexMgr.CreateAdvancedIndexes(); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Engine store schema migration completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current schema version
func (m *SchemaManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new schema version
func (m *SchemaManager) setVersion(ctx context.Context, version string, details string) error {
	schemaVersion := model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&schemaVersion).Error
}

// autoMigrateModels auto-migrates the engine store models
func (m *SchemaManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating engine store models", nil)

	return m.db.AutoMigrate(
		&model.DatabaseConnection{},
		&model.Migration{},
		&model.MigrationExecution{},
		&model.MigrationRollback{},
		&model.MigrationSnapshot{},
		&model.ScheduledExecution{},
	)
}

// createIndexes creates basic engine store indexes
func (m *SchemaManager) createIndexes() error {
	m.logger.Info("Creating engine store indexes", nil)

	// Team-scoped listings are the hottest read path
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_migrations_team_created ON migrations (team_id, created_at DESC)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_migration_executions_migration_id ON migration_executions (migration_id)").Error; err != nil {
		return err
	}

	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_migration_rollbacks_migration_id ON migration_rollbacks (migration_id)").Error; err != nil {
		return err
	}

	return nil
}
