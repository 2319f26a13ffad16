package entity

import (
	"time"

	"github.com/google/uuid"

	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// ExecutionOutcome is the terminal result of one execution attempt
type ExecutionOutcome string

// Execution outcomes. OutcomeRollback tags the execution row that a later
// rollback superseded.
const (
	OutcomeSuccess  ExecutionOutcome = "SUCCESS"
	OutcomeFailure  ExecutionOutcome = "FAILURE"
	OutcomeRollback ExecutionOutcome = "ROLLBACK"
)

// MigrationExecution is an append-only log entry for one execution attempt.
// Rows are never mutated after the fact except for the rollback tag.
type MigrationExecution struct {
	ID           string
	MigrationID  string
	Outcome      ExecutionOutcome
	Duration     time.Duration
	ErrorMessage string
	ExecutedByID string
	ExecutedAt   time.Time
}

// NewMigrationExecution records one attempt with its outcome and duration
func NewMigrationExecution(
	migrationID string,
	outcome ExecutionOutcome,
	duration time.Duration,
	errorMessage string,
	executedByID string,
	timeProvider tport.TimeProvider,
) *MigrationExecution {
	return &MigrationExecution{
		ID:           uuid.NewString(),
		MigrationID:  migrationID,
		Outcome:      outcome,
		Duration:     duration,
		ErrorMessage: errorMessage,
		ExecutedByID: executedByID,
		ExecutedAt:   timeProvider.Now(),
	}
}

// StatementResult summarizes the effect of one executed statement
type StatementResult struct {
	Statement    string
	RowsAffected int64
}

// ExecutionResult is the normalized outcome the dispatcher returns to callers
type ExecutionResult struct {
	Success      bool
	DryRun       bool
	Duration     time.Duration
	Statements   []StatementResult
	RowsAffected int64
	Preview      []string // DDL preview lines, dry-run only
	Error        string
}
