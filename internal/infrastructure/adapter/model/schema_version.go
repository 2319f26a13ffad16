package model

import (
	"time"
)

// SchemaVersion tracks the engine store's own schema version. This is the
// engine's internal bookkeeping, unrelated to the customer migrations the
// engine manages.
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the schema version model
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
