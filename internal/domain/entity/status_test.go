package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

func TestStatusClaimEligibility(t *testing.T) {
	t.Run("PENDING and FAILED can be claimed for execution", func(t *testing.T) {
		assert.True(t, entity.StatusPending.CanExecute())
		assert.True(t, entity.StatusFailed.CanExecute())
	})

	t.Run("EXECUTING, EXECUTED and ROLLED_BACK cannot be claimed for execution", func(t *testing.T) {
		assert.False(t, entity.StatusExecuting.CanExecute())
		assert.False(t, entity.StatusExecuted.CanExecute())
		assert.False(t, entity.StatusRolledBack.CanExecute())
	})

	t.Run("Only EXECUTED can be claimed for rollback", func(t *testing.T) {
		assert.True(t, entity.StatusExecuted.CanRollback())
		assert.False(t, entity.StatusPending.CanRollback())
		assert.False(t, entity.StatusExecuting.CanRollback())
		assert.False(t, entity.StatusFailed.CanRollback())
		assert.False(t, entity.StatusRolledBack.CanRollback())
	})
}

func TestValidTransition(t *testing.T) {
	allowed := [][2]entity.MigrationStatus{
		{entity.StatusPending, entity.StatusExecuting},
		{entity.StatusFailed, entity.StatusExecuting},
		{entity.StatusExecuted, entity.StatusExecuting},
		{entity.StatusExecuting, entity.StatusExecuted},
		{entity.StatusExecuting, entity.StatusFailed},
		{entity.StatusExecuting, entity.StatusRolledBack},
	}
	for _, tr := range allowed {
		assert.True(t, entity.ValidTransition(tr[0], tr[1]), "%s -> %s should be allowed", tr[0], tr[1])
	}

	denied := [][2]entity.MigrationStatus{
		{entity.StatusPending, entity.StatusExecuted},
		{entity.StatusPending, entity.StatusRolledBack},
		{entity.StatusExecuted, entity.StatusPending},
		{entity.StatusRolledBack, entity.StatusExecuting},
		{entity.StatusExecuting, entity.StatusPending},
	}
	for _, tr := range denied {
		assert.False(t, entity.ValidTransition(tr[0], tr[1]), "%s -> %s should be denied", tr[0], tr[1])
	}
}

func TestClaimStateSetsAreCopies(t *testing.T) {
	states := entity.ExecutionClaimStates()
	require.Equal(t, []entity.MigrationStatus{entity.StatusPending, entity.StatusFailed}, states)

	states[0] = entity.StatusRolledBack
	assert.Equal(t, []entity.MigrationStatus{entity.StatusPending, entity.StatusFailed}, entity.ExecutionClaimStates())

	assert.Equal(t, []entity.MigrationStatus{entity.StatusExecuted}, entity.RollbackClaimStates())
}

func TestParseMigrationStatus(t *testing.T) {
	s, err := entity.ParseMigrationStatus("EXECUTED")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusExecuted, s)

	_, err = entity.ParseMigrationStatus("DONE")
	assert.Error(t, err)
}
