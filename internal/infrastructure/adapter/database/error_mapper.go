package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainErr "github.com/schemaflow/migration-engine/internal/domain/error"
)

// EntityType represents the type of entity for error mapping
type EntityType string

const (
	// EntityTypeMigration represents the migration entity
	EntityTypeMigration EntityType = "migration"
	// EntityTypeConnection represents the database connection entity
	EntityTypeConnection EntityType = "connection"
	// EntityTypeSchedule represents the scheduled execution entity
	EntityTypeSchedule EntityType = "schedule"
)

// ErrorMapper maps engine store errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps an engine store error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrMigrationNotFound
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Contention errors
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serialization") ||
		strings.Contains(errMsg, "lock timeout"):
		return domainErr.ErrConflict

	// Duplicate key errors
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return domainErr.ErrValidation

	// Constraint violations
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key constraint"):
		return domainErr.ErrValidation

	// Connection issues
	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset"):
		return domainErr.ErrDatabaseConnection

	// Timeout errors
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrDatabaseConnection, operation)

	default:
		return domainErr.ErrInternalServer
	}
}

// MapEntityNotFoundError maps store errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeMigration:
			return domainErr.ErrMigrationNotFound
		case EntityTypeConnection:
			return domainErr.ErrConnectionNotFound
		case EntityTypeSchedule:
			return domainErr.ErrScheduleNotFound
		default:
			return domainErr.ErrMigrationNotFound
		}
	}

	return m.MapError(err, string(entityType))
}
