package entity

import "fmt"

// MigrationStatus represents the lifecycle state of a migration
type MigrationStatus string

// Migration lifecycle states
const (
	StatusPending    MigrationStatus = "PENDING"
	StatusExecuting  MigrationStatus = "EXECUTING"
	StatusExecuted   MigrationStatus = "EXECUTED"
	StatusFailed     MigrationStatus = "FAILED"
	StatusRolledBack MigrationStatus = "ROLLED_BACK"
)

// executionClaimStates are the states from which a migration may be claimed
// for execution. EXECUTING is deliberately absent: a concurrent claim must
// observe it and fail with a conflict.
var executionClaimStates = []MigrationStatus{StatusPending, StatusFailed}

// rollbackClaimStates are the states from which a rollback may be claimed.
var rollbackClaimStates = []MigrationStatus{StatusExecuted}

// IsValid reports whether the status is one of the known lifecycle states
func (s MigrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusExecuting, StatusExecuted, StatusFailed, StatusRolledBack:
		return true
	}
	return false
}

// CanExecute reports whether a migration in this status may be claimed for execution
func (s MigrationStatus) CanExecute() bool {
	for _, from := range executionClaimStates {
		if s == from {
			return true
		}
	}
	return false
}

// CanRollback reports whether a migration in this status may be claimed for rollback
func (s MigrationStatus) CanRollback() bool {
	for _, from := range rollbackClaimStates {
		if s == from {
			return true
		}
	}
	return false
}

// ExecutionClaimStates returns the set of states eligible for an execution claim
func ExecutionClaimStates() []MigrationStatus {
	states := make([]MigrationStatus, len(executionClaimStates))
	copy(states, executionClaimStates)
	return states
}

// RollbackClaimStates returns the set of states eligible for a rollback claim
func RollbackClaimStates() []MigrationStatus {
	states := make([]MigrationStatus, len(rollbackClaimStates))
	copy(states, rollbackClaimStates)
	return states
}

// ValidTransition reports whether moving from one status to another is allowed
// by the state machine:
//
//	PENDING  -> EXECUTING -> {EXECUTED, FAILED}
//	FAILED   -> EXECUTING              (retry)
//	EXECUTED -> EXECUTING -> {ROLLED_BACK, EXECUTED}   (rollback attempt)
func ValidTransition(from, to MigrationStatus) bool {
	switch from {
	case StatusPending, StatusFailed, StatusExecuted:
		return to == StatusExecuting
	case StatusExecuting:
		return to == StatusExecuted || to == StatusFailed || to == StatusRolledBack
	}
	return false
}

// String returns the status as a string for logging
func (s MigrationStatus) String() string {
	return string(s)
}

// ParseMigrationStatus converts a raw string into a MigrationStatus
func ParseMigrationStatus(raw string) (MigrationStatus, error) {
	s := MigrationStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown migration status: %q", raw)
	}
	return s, nil
}
