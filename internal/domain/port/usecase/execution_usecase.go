package usecase

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ExecuteOptions controls one dispatch of a migration
type ExecuteOptions struct {
	// TeamID is the requesting team; the migration's team linkage is
	// re-checked against it before anything else happens
	TeamID string
	// Checksum, when non-empty, is verified against current content before
	// anything else happens. A mismatch fails fast with no state mutation.
	Checksum string
	// DryRun previews the migration without any state transition and without
	// touching the target database
	DryRun bool
	// ExecutedByID identifies the triggering user for the audit trail
	ExecutedByID string
}

// ExecutionDispatcher routes a migration by kind to the right execution
// strategy and normalizes the result. Exactly one MigrationExecution record
// is appended per real (non-dry-run) dispatch.
type ExecutionDispatcher interface {
	Execute(ctx context.Context, migrationID string, opts ExecuteOptions) (*entity.ExecutionResult, error)
}

// RollbackOptions controls one reversal attempt
type RollbackOptions struct {
	// TeamID is the requesting team; the migration's team linkage is
	// re-checked against it before eligibility
	TeamID string
	// Force bypasses the eligibility gate; derivation stays best-effort and
	// may legitimately produce no SQL
	Force bool
	// Reason is the human-supplied justification recorded with the attempt
	Reason string
	// CreateBackup requests a backup location identifier before reversal
	CreateBackup bool
	// RolledBackByID identifies the triggering user
	RolledBackByID string
}

// RollbackEngine reverses an executed migration using heuristically derived
// SQL. Only EXECUTED migrations are eligible.
type RollbackEngine interface {
	Rollback(ctx context.Context, migrationID string, opts RollbackOptions) (*entity.RollbackResult, error)

	// CanRollback reports eligibility without performing anything
	CanRollback(ctx context.Context, teamID, migrationID string, force bool) (bool, error)
}
