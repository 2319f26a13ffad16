package entity

import (
	"time"

	"github.com/google/uuid"

	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// RollbackOutcome is the terminal result of a rollback attempt
type RollbackOutcome string

// Rollback outcomes
const (
	RollbackSuccess RollbackOutcome = "SUCCESS"
	RollbackFailure RollbackOutcome = "FAILURE"
)

// MigrationRollback is an append-only record of one reversal attempt,
// including the SQL that was actually run against the target.
type MigrationRollback struct {
	ID             string
	MigrationID    string
	Reason         string
	RollbackSQL    string
	Outcome        RollbackOutcome
	BackupLocation string
	RolledBackByID string
	CompletedAt    time.Time
}

// NewMigrationRollback records one reversal attempt
func NewMigrationRollback(
	migrationID, reason, rollbackSQL string,
	outcome RollbackOutcome,
	backupLocation, rolledBackByID string,
	timeProvider tport.TimeProvider,
) *MigrationRollback {
	return &MigrationRollback{
		ID:             uuid.NewString(),
		MigrationID:    migrationID,
		Reason:         reason,
		RollbackSQL:    rollbackSQL,
		Outcome:        outcome,
		BackupLocation: backupLocation,
		RolledBackByID: rolledBackByID,
		CompletedAt:    timeProvider.Now(),
	}
}

// RollbackResult is the normalized outcome the rollback engine returns
type RollbackResult struct {
	Success        bool
	Duration       time.Duration
	RollbackSQL    string
	BackupLocation string
	Error          string
}
