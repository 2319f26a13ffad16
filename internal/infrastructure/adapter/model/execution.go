package model

import (
	"time"
)

// MigrationExecution represents one append-only execution log row
type MigrationExecution struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	MigrationID  string    `gorm:"type:uuid;not null;index"`
	Outcome      string    `gorm:"not null;size:20"`
	DurationMs   int64     `gorm:"not null"`
	ErrorMessage string    `gorm:"type:text"`
	ExecutedByID string    `gorm:"type:uuid"`
	ExecutedAt   time.Time `gorm:"not null;index"`

	Migration Migration `gorm:"foreignKey:MigrationID;references:ID"`
}

// TableName specifies the table name for MigrationExecution
func (MigrationExecution) TableName() string {
	return "migration_executions"
}

// MigrationRollback represents one append-only rollback attempt row
type MigrationRollback struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	MigrationID    string    `gorm:"type:uuid;not null;index"`
	Reason         string    `gorm:"type:text"`
	RollbackSQL    string    `gorm:"type:text"`
	Outcome        string    `gorm:"not null;size:20"`
	BackupLocation string    `gorm:"type:text"`
	RolledBackByID string    `gorm:"type:uuid"`
	CompletedAt    time.Time `gorm:"not null"`

	Migration Migration `gorm:"foreignKey:MigrationID;references:ID"`
}

// TableName specifies the table name for MigrationRollback
func (MigrationRollback) TableName() string {
	return "migration_rollbacks"
}
