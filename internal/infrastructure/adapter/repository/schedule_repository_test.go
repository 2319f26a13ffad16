package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
)

func TestScheduleRepositoryListDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	db, sqlMock := newMockDB(t)
	repo := NewScheduleRepository(db, quietLogger(t))

	rows := sqlmock.NewRows([]string{
		"id", "migration_id", "connection_id", "team_id", "scheduled_for",
		"status", "error_message", "scheduled_by_id", "created_at", "processed_at",
	}).AddRow(
		"sched-1", "mig-1", "conn-1", "team-1", now.Add(-time.Minute),
		"PENDING", "", "user-1", now.Add(-time.Hour), nil,
	)
	sqlMock.ExpectQuery(`SELECT .* FROM "scheduled_executions" WHERE status = \$1 AND scheduled_for <= \$2`).
		WithArgs("PENDING", now).
		WillReturnRows(rows)

	due, err := repo.ListDue(ctx, now)

	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "sched-1", due[0].ID)
	assert.Equal(t, entity.SchedulePending, due[0].Status)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestScheduleRepositoryClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("wins the pending entry", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "scheduled_executions" SET "status"=\$1 WHERE id = \$2 AND status = \$3`).
			WithArgs("PROCESSING", "sched-1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.Claim(ctx, "sched-1")
		require.NoError(t, err)
		assert.True(t, claimed)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("loses an already claimed entry", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "scheduled_executions" SET "status"=\$1 WHERE id = \$2 AND status = \$3`).
			WithArgs("PROCESSING", "sched-1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.Claim(ctx, "sched-1")
		require.NoError(t, err)
		assert.False(t, claimed)
	})
}

func TestScheduleRepositoryMarkProcessed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	terminal := func() *entity.ScheduledExecution {
		return &entity.ScheduledExecution{
			ID:          "sched-1",
			Status:      entity.ScheduleSuccess,
			ProcessedAt: &now,
		}
	}

	t.Run("terminalizes a claimed entry", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "scheduled_executions" SET .* WHERE id = \$4 AND status = \$5`).
			WithArgs("", sqlmock.AnyArg(), "SUCCESS", "sched-1", "PROCESSING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkProcessed(ctx, terminal()))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("unclaimed entry is rejected by the guard", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "scheduled_executions" SET .* WHERE id = \$4 AND status = \$5`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkProcessed(ctx, terminal())
		require.ErrorIs(t, err, errs.ErrScheduleNotFound)
		assert.Contains(t, err.Error(), "not claimed")
	})
}

func TestScheduleRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes only pending entries", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`DELETE FROM "scheduled_executions" WHERE id = \$1 AND status = \$2`).
			WithArgs("sched-1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "sched-1"))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("processed entry cannot be cancelled", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewScheduleRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`DELETE FROM "scheduled_executions" WHERE id = \$1 AND status = \$2`).
			WithArgs("sched-1", "PENDING").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "sched-1"), errs.ErrScheduleNotFound)
	})
}

func TestScheduleRepositoryGetByID(t *testing.T) {
	ctx := context.Background()

	db, sqlMock := newMockDB(t)
	repo := NewScheduleRepository(db, quietLogger(t))

	sqlMock.ExpectQuery(`SELECT .* FROM "scheduled_executions" WHERE id = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrScheduleNotFound)
}
