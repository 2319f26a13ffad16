package model

import (
	"time"
)

// MigrationSnapshot represents the 1:1 recoverability record for a
// migration. Affected tables, pre-state and metadata are serialized JSON;
// the repository owns the round-trip.
type MigrationSnapshot struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	MigrationID    string    `gorm:"type:uuid;not null;uniqueIndex"`
	SchemaVersion  string    `gorm:"size:20"`
	AffectedTables string    `gorm:"type:text"`
	RollbackSQL    string    `gorm:"type:text"`
	PreState       string    `gorm:"type:text"`
	Metadata       string    `gorm:"type:text"`
	CreatedByID    string    `gorm:"type:uuid"`
	CreatedAt      time.Time `gorm:"not null"`

	Migration Migration `gorm:"foreignKey:MigrationID;references:ID"`
}

// TableName specifies the table name for MigrationSnapshot
func (MigrationSnapshot) TableName() string {
	return "migration_snapshots"
}
