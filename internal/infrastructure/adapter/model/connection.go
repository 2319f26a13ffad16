package model

import (
	"time"
)

// DatabaseConnection represents the database model for target connection
// descriptors. Password is stored encrypted; the plaintext never reaches
// this table.
type DatabaseConnection struct {
	ID                string    `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"not null;size:255"`
	Backend           string    `gorm:"not null;size:20"`
	Host              string    `gorm:"size:255"`
	Port              int       `gorm:""`
	Database          string    `gorm:"not null;size:255"`
	Username          string    `gorm:"size:255"`
	EncryptedPassword string    `gorm:"type:text"`
	ConnectionURL     string    `gorm:"type:text"`
	SSL               bool      `gorm:"not null;default:false"`
	TeamID            string    `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for DatabaseConnection
func (DatabaseConnection) TableName() string {
	return "database_connections"
}
