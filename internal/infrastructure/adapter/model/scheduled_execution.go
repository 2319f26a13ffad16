package model

import (
	"time"
)

// ScheduledExecution represents a deferred execution intent
type ScheduledExecution struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	MigrationID   string    `gorm:"type:uuid;not null;index"`
	ConnectionID  string    `gorm:"type:uuid;not null"`
	TeamID        string    `gorm:"type:uuid;not null;index"`
	ScheduledFor  time.Time `gorm:"not null;index"`
	Status        string    `gorm:"not null;size:20;index"`
	ErrorMessage  string    `gorm:"type:text"`
	ScheduledByID string    `gorm:"type:uuid"`
	CreatedAt     time.Time `gorm:"not null"`
	ProcessedAt   *time.Time

	Migration Migration `gorm:"foreignKey:MigrationID;references:ID"`
}

// TableName specifies the table name for ScheduledExecution
func (ScheduledExecution) TableName() string {
	return "scheduled_executions"
}
