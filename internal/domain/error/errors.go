package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeChecksumMismatch    = 4002
	CodeRollbackUnsupported = 4003
	CodeForbidden           = 4030
	CodeMigrationNotFound   = 4040
	CodeConnectionNotFound  = 4041
	CodeScheduleNotFound    = 4042
	CodeConflict            = 4090

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeBackendExecution = 5001
)

// Base error kinds
var (
	// ErrValidation is returned for malformed input, such as a past-dated
	// schedule or a mismatched connection
	ErrValidation = errors.New("validation failed")

	// ErrMigrationNotFound is returned when a migration does not exist or is
	// not owned by the requesting team
	ErrMigrationNotFound = errors.New("migration not found")

	// ErrConnectionNotFound is returned when a database connection is absent
	ErrConnectionNotFound = errors.New("database connection not found")

	// ErrScheduleNotFound is returned when a scheduled execution is absent
	ErrScheduleNotFound = errors.New("scheduled execution not found")

	// ErrSnapshotNotFound is returned when no snapshot exists for a migration
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrConflict is returned when a state-machine claim is refused, e.g. a
	// migration already being executed by a concurrent caller
	ErrConflict = errors.New("conflicting operation in progress")

	// ErrForbidden is returned when the caller lacks access to the resource
	ErrForbidden = errors.New("access denied")

	// ErrChecksumMismatch is returned when migration content drifted between
	// creation and execution
	ErrChecksumMismatch = errors.New("migration content checksum mismatch")

	// ErrRollbackUnsupported is returned for ORM-tool migrations without
	// force, or when reversal SQL cannot be derived
	ErrRollbackUnsupported = errors.New("rollback not supported for this migration")

	// ErrBackendExecution is returned when the target database rejected a statement
	ErrBackendExecution = errors.New("backend execution failed")

	// ErrDatabaseConnection is returned when the engine store is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known error kinds
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrChecksumMismatch):
		return CodeChecksumMismatch
	case errors.Is(err, ErrRollbackUnsupported):
		return CodeRollbackUnsupported
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrMigrationNotFound):
		return CodeMigrationNotFound
	case errors.Is(err, ErrConnectionNotFound):
		return CodeConnectionNotFound
	case errors.Is(err, ErrScheduleNotFound), errors.Is(err, ErrSnapshotNotFound):
		return CodeScheduleNotFound
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrBackendExecution):
		return CodeBackendExecution
	default:
		return CodeInternalServer
	}
}

// ClaimConflictError reports a refused state-machine claim: the migration was
// not in any of the states the claim required.
type ClaimConflictError struct {
	MigrationID string
	Current     string
	Wanted      []string
}

// Error implements the error interface
func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("migration %s cannot be claimed from status %s (requires one of %v)",
		e.MigrationID, e.Current, e.Wanted)
}

// Is reports the claim conflict as an ErrConflict kind
func (e *ClaimConflictError) Is(target error) bool {
	return target == ErrConflict
}

// LogFields returns structured logging fields
func (e *ClaimConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "claim_conflict",
		"migration_id":    e.MigrationID,
		"current_status":  e.Current,
		"eligible_states": e.Wanted,
		"error_code":      CodeConflict,
	}
}

// ChecksumMismatchError carries both digests for diagnostics
type ChecksumMismatchError struct {
	MigrationID string
	Supplied    string
	Current     string
}

// Error implements the error interface
func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("migration %s content drifted: supplied checksum %s, current %s",
		e.MigrationID, e.Supplied, e.Current)
}

// Is reports the mismatch as an ErrChecksumMismatch kind
func (e *ChecksumMismatchError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// LogFields returns structured logging fields
func (e *ChecksumMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":        "checksum_mismatch",
		"migration_id":      e.MigrationID,
		"supplied_checksum": e.Supplied,
		"current_checksum":  e.Current,
		"error_code":        CodeChecksumMismatch,
	}
}

// BackendExecutionError wraps a statement-level failure from a target database
type BackendExecutionError struct {
	Backend   string
	Statement string
	Err       error
}

// Error implements the error interface
func (e *BackendExecutionError) Error() string {
	return fmt.Sprintf("%s backend rejected statement %q: %v", e.Backend, e.Statement, e.Err)
}

// Unwrap returns the underlying driver error
func (e *BackendExecutionError) Unwrap() error {
	return e.Err
}

// Is reports the failure as an ErrBackendExecution kind
func (e *BackendExecutionError) Is(target error) bool {
	return target == ErrBackendExecution
}

// LogFields returns structured logging fields
func (e *BackendExecutionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "backend_execution",
		"backend":    e.Backend,
		"statement":  e.Statement,
		"error":      e.Err.Error(),
		"error_code": CodeBackendExecution,
	}
}

// ScheduleConflictError reports an attempt to cancel a scheduled execution
// that already reached a terminal status.
type ScheduleConflictError struct {
	ScheduleID string
	Status     string
}

// Error implements the error interface
func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("scheduled execution %s is already %s and cannot be cancelled",
		e.ScheduleID, e.Status)
}

// Is reports the conflict as an ErrConflict kind
func (e *ScheduleConflictError) Is(target error) bool {
	return target == ErrConflict
}

// LogFields returns structured logging fields
func (e *ScheduleConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "schedule_conflict",
		"schedule_id": e.ScheduleID,
		"status":      e.Status,
		"error_code":  CodeConflict,
	}
}

// IsNotFoundError checks if the error is any "not found" kind
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrMigrationNotFound) ||
		errors.Is(err, ErrConnectionNotFound) ||
		errors.Is(err, ErrScheduleNotFound) ||
		errors.Is(err, ErrSnapshotNotFound)
}

// IsConflictError checks if the error is a claim or cancel conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
