package error_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/schemaflow/migration-engine/internal/domain/error"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", errs.ErrValidation, errs.CodeValidation},
		{"wrapped validation", fmt.Errorf("%w: bad input", errs.ErrValidation), errs.CodeValidation},
		{"checksum mismatch", errs.ErrChecksumMismatch, errs.CodeChecksumMismatch},
		{"rollback unsupported", errs.ErrRollbackUnsupported, errs.CodeRollbackUnsupported},
		{"forbidden", errs.ErrForbidden, errs.CodeForbidden},
		{"migration not found", errs.ErrMigrationNotFound, errs.CodeMigrationNotFound},
		{"connection not found", errs.ErrConnectionNotFound, errs.CodeConnectionNotFound},
		{"schedule not found", errs.ErrScheduleNotFound, errs.CodeScheduleNotFound},
		{"conflict", errs.ErrConflict, errs.CodeConflict},
		{"backend execution", errs.ErrBackendExecution, errs.CodeBackendExecution},
		{"unknown", errors.New("boom"), errs.CodeInternalServer},
		{"internal", errs.ErrInternalServer, errs.CodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, errs.ErrorCode(tc.err))
		})
	}
}

func TestClaimConflictError(t *testing.T) {
	err := &errs.ClaimConflictError{
		MigrationID: "mig-1",
		Current:     "EXECUTING",
		Wanted:      []string{"PENDING", "FAILED"},
	}

	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.True(t, errs.IsConflictError(err))
	assert.Equal(t, errs.CodeConflict, errs.ErrorCode(err))
	assert.Contains(t, err.Error(), "mig-1")
	assert.Contains(t, err.Error(), "EXECUTING")

	fields := err.LogFields()
	assert.Equal(t, "claim_conflict", fields["error_type"])
	assert.Equal(t, "mig-1", fields["migration_id"])
}

func TestChecksumMismatchError(t *testing.T) {
	err := &errs.ChecksumMismatchError{MigrationID: "mig-1", Supplied: "aaa", Current: "bbb"}

	assert.ErrorIs(t, err, errs.ErrChecksumMismatch)
	assert.Equal(t, errs.CodeChecksumMismatch, errs.ErrorCode(err))

	fields := err.LogFields()
	assert.Equal(t, "aaa", fields["supplied_checksum"])
	assert.Equal(t, "bbb", fields["current_checksum"])
}

func TestBackendExecutionError(t *testing.T) {
	cause := errors.New("syntax error at or near \"TABEL\"")
	err := &errs.BackendExecutionError{Backend: "POSTGRES", Statement: "CREATE TABEL t;", Err: cause}

	assert.ErrorIs(t, err, errs.ErrBackendExecution)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, errs.CodeBackendExecution, errs.ErrorCode(err))
	assert.Contains(t, err.Error(), "POSTGRES")
}

func TestScheduleConflictError(t *testing.T) {
	err := &errs.ScheduleConflictError{ScheduleID: "sched-1", Status: "SUCCESS"}

	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), "SUCCESS")
	assert.Equal(t, "schedule_conflict", err.LogFields()["error_type"])
}

func TestNotFoundClassification(t *testing.T) {
	assert.True(t, errs.IsNotFoundError(fmt.Errorf("%w: mig-1", errs.ErrMigrationNotFound)))
	assert.True(t, errs.IsNotFoundError(errs.ErrConnectionNotFound))
	assert.True(t, errs.IsNotFoundError(errs.ErrScheduleNotFound))
	assert.True(t, errs.IsNotFoundError(errs.ErrSnapshotNotFound))
	assert.False(t, errs.IsNotFoundError(errs.ErrValidation))
}
