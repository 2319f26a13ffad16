package migration

import (
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// Partial index over pending schedules; the scheduler sweep only ever
	// reads rows in this state
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_scheduled_executions_due
		ON scheduled_executions (scheduled_for)
		WHERE status = 'PENDING'
	`).Error; err != nil {
		m.logger.Error("Failed to create due schedules partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// The claim update filters on id plus status; a composite index keeps
	// the CAS cheap under contention
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_migrations_id_status
		ON migrations (id, status)
	`).Error; err != nil {
		m.logger.Error("Failed to create migrations id_status index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// One persisted snapshot per migration
	if err := m.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_migration_snapshots_migration_id
		ON migration_snapshots (migration_id)
	`).Error; err != nil {
		m.logger.Error("Failed to create unique snapshot index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// Execution history is read newest-first per migration
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_migration_executions_history
		ON migration_executions (migration_id, executed_at DESC)
	`).Error; err != nil {
		m.logger.Error("Failed to create execution history index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// BRIN index for temporal scans over the append-only execution log
	if err := m.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_migration_executions_executed_at_brin
		ON migration_executions USING BRIN (executed_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on executed_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}
