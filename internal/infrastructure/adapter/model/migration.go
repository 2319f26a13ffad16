package model

import (
	"time"
)

// Migration represents the database model for migration records
type Migration struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null;size:255"`
	Description  string    `gorm:"type:text"`
	Version      string    `gorm:"not null;size:20;index"`
	Kind         string    `gorm:"not null;size:20"`
	Content      string    `gorm:"type:text;not null"`
	Checksum     string    `gorm:"size:64"`
	Status       string    `gorm:"not null;size:20;index"`
	TeamID       string    `gorm:"type:uuid;not null;index"`
	ConnectionID string    `gorm:"type:uuid;not null;index"`
	CreatedByID  string    `gorm:"type:uuid"`
	CreatedAt    time.Time `gorm:"not null"`
	ExecutedAt   *time.Time
	RolledBackAt *time.Time

	Connection DatabaseConnection `gorm:"foreignKey:ConnectionID;references:ID"`
}

// TableName specifies the table name for Migration
func (Migration) TableName() string {
	return "migrations"
}
