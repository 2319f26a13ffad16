package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
	coremocks "github.com/schemaflow/migration-engine/mocks/port/core"
	persistencemocks "github.com/schemaflow/migration-engine/mocks/port/persistence"
	usecasemocks "github.com/schemaflow/migration-engine/mocks/port/usecase"
)

type schedulerMocks struct {
	schedules  *persistencemocks.MockScheduleRepository
	migrations *persistencemocks.MockMigrationRepository
	dispatcher *usecasemocks.MockExecutionDispatcher
	timeProv   *coremocks.MockTimeProvider
	logger     *coremocks.MockLogger
	emitter    *coremocks.MockEventEmitter
	notifier   *coremocks.MockNotifier
}

func newSchedulerMocks(t *testing.T) *schedulerMocks {
	m := &schedulerMocks{
		schedules:  persistencemocks.NewMockScheduleRepository(t),
		migrations: persistencemocks.NewMockMigrationRepository(t),
		dispatcher: usecasemocks.NewMockExecutionDispatcher(t),
		timeProv:   coremocks.NewMockTimeProvider(t),
		logger:     coremocks.NewMockLogger(t),
		emitter:    coremocks.NewMockEventEmitter(t),
		notifier:   coremocks.NewMockNotifier(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *schedulerMocks) scheduler() *Scheduler {
	return NewScheduler(
		m.schedules, m.migrations, m.dispatcher,
		m.timeProv, m.logger, m.emitter, m.notifier)
}

func ownedMigration() *entity.Migration {
	return &entity.Migration{
		ID:           "mig-1",
		Status:       entity.StatusPending,
		TeamID:       "team-1",
		ConnectionID: "conn-1",
	}
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("persists a valid future intent", func(t *testing.T) {
		m := newSchedulerMocks(t)
		scheduledFor := now.Add(2 * time.Hour)

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(ownedMigration(), nil).Once()
		m.timeProv.EXPECT().Now().Return(now).Maybe()
		m.schedules.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.ScheduledExecution) bool {
			return s.MigrationID == "mig-1" &&
				s.Status == entity.SchedulePending &&
				s.ScheduledFor.Equal(scheduledFor)
		})).Return(nil).Once()
		m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		schedule, err := m.scheduler().Schedule(ctx, usecase.ScheduleRequest{
			MigrationID:   "mig-1",
			ConnectionID:  "conn-1",
			TeamID:        "team-1",
			ScheduledFor:  scheduledFor,
			ScheduledByID: "user-1",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, schedule.ID)
		assert.Equal(t, entity.SchedulePending, schedule.Status)
	})

	t.Run("foreign team sees not found", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(ownedMigration(), nil).Once()

		_, err := m.scheduler().Schedule(ctx, usecase.ScheduleRequest{
			MigrationID:  "mig-1",
			ConnectionID: "conn-1",
			TeamID:       "team-other",
			ScheduledFor: now.Add(time.Hour),
		})

		assert.ErrorIs(t, err, errs.ErrMigrationNotFound)
	})

	t.Run("connection mismatch is rejected", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(ownedMigration(), nil).Once()

		_, err := m.scheduler().Schedule(ctx, usecase.ScheduleRequest{
			MigrationID:  "mig-1",
			ConnectionID: "conn-other",
			TeamID:       "team-1",
			ScheduledFor: now.Add(time.Hour),
		})

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "bound to connection conn-1")
	})

	t.Run("past date is rejected before any write", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(ownedMigration(), nil).Once()
		m.timeProv.EXPECT().Now().Return(now).Maybe()

		_, err := m.scheduler().Schedule(ctx, usecase.ScheduleRequest{
			MigrationID:  "mig-1",
			ConnectionID: "conn-1",
			TeamID:       "team-1",
			ScheduledFor: now.Add(-time.Minute),
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	pendingSchedule := func() *entity.ScheduledExecution {
		return &entity.ScheduledExecution{
			ID:          "sched-1",
			MigrationID: "mig-1",
			TeamID:      "team-1",
			Status:      entity.SchedulePending,
		}
	}

	t.Run("pending entry is deleted", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.schedules.EXPECT().GetByID(mock.Anything, "sched-1").Return(pendingSchedule(), nil).Once()
		m.schedules.EXPECT().Delete(mock.Anything, "sched-1").Return(nil).Once()
		m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		err := m.scheduler().Cancel(ctx, "sched-1", "team-1", "user-1")
		assert.NoError(t, err)
	})

	t.Run("foreign team sees not found", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.schedules.EXPECT().GetByID(mock.Anything, "sched-1").Return(pendingSchedule(), nil).Once()

		err := m.scheduler().Cancel(ctx, "sched-1", "team-other", "user-1")
		assert.ErrorIs(t, err, errs.ErrScheduleNotFound)
	})

	t.Run("claimed entry conflicts", func(t *testing.T) {
		m := newSchedulerMocks(t)
		claimed := pendingSchedule()
		claimed.Status = entity.ScheduleProcessing
		m.schedules.EXPECT().GetByID(mock.Anything, "sched-1").Return(claimed, nil).Once()

		err := m.scheduler().Cancel(ctx, "sched-1", "team-1", "user-1")

		require.ErrorIs(t, err, errs.ErrConflict)
		var conflict *errs.ScheduleConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "PROCESSING", conflict.Status)
	})

	t.Run("terminal entry conflicts", func(t *testing.T) {
		m := newSchedulerMocks(t)
		processed := pendingSchedule()
		processed.Status = entity.ScheduleSuccess
		m.schedules.EXPECT().GetByID(mock.Anything, "sched-1").Return(processed, nil).Once()

		err := m.scheduler().Cancel(ctx, "sched-1", "team-1", "user-1")

		require.ErrorIs(t, err, errs.ErrConflict)
		var conflict *errs.ScheduleConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "SUCCESS", conflict.Status)
	})
}

func TestProcessDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	dueSchedule := func(id, migrationID string) *entity.ScheduledExecution {
		return &entity.ScheduledExecution{
			ID:            id,
			MigrationID:   migrationID,
			ConnectionID:  "conn-1",
			TeamID:        "team-1",
			ScheduledFor:  now.Add(-time.Minute),
			Status:        entity.SchedulePending,
			ScheduledByID: "user-1",
		}
	}

	t.Run("empty queue is a no-op", func(t *testing.T) {
		m := newSchedulerMocks(t)
		m.timeProv.EXPECT().Now().Return(now).Maybe()
		m.schedules.EXPECT().ListDue(mock.Anything, now).Return(nil, nil).Once()

		assert.NoError(t, m.scheduler().ProcessDue(ctx))
	})

	t.Run("failures are isolated per item", func(t *testing.T) {
		m := newSchedulerMocks(t)
		first := dueSchedule("sched-1", "mig-1")
		second := dueSchedule("sched-2", "mig-2")

		m.timeProv.EXPECT().Now().Return(now).Maybe()
		m.schedules.EXPECT().ListDue(mock.Anything, now).
			Return([]*entity.ScheduledExecution{first, second}, nil).Once()
		m.schedules.EXPECT().Claim(mock.Anything, "sched-1").Return(true, nil).Once()
		m.schedules.EXPECT().Claim(mock.Anything, "sched-2").Return(true, nil).Once()

		m.dispatcher.EXPECT().
			Execute(mock.Anything, "mig-1", usecase.ExecuteOptions{TeamID: "team-1", ExecutedByID: "user-1"}).
			Return(nil, errors.New("claim lost")).Once()
		m.dispatcher.EXPECT().
			Execute(mock.Anything, "mig-2", usecase.ExecuteOptions{TeamID: "team-1", ExecutedByID: "user-1"}).
			Return(&entity.ExecutionResult{Success: true}, nil).Once()

		m.schedules.EXPECT().MarkProcessed(mock.Anything, mock.MatchedBy(func(s *entity.ScheduledExecution) bool {
			return s.ID == "sched-1" && s.Status == entity.ScheduleFailure && s.ErrorMessage == "claim lost"
		})).Return(nil).Once()
		m.schedules.EXPECT().MarkProcessed(mock.Anything, mock.MatchedBy(func(s *entity.ScheduledExecution) bool {
			return s.ID == "sched-2" && s.Status == entity.ScheduleSuccess
		})).Return(nil).Once()

		m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Twice()
		m.notifier.EXPECT().
			Notify(mock.Anything, "team-1", "Scheduled migration failed", "Migration mig-1 failed: claim lost").
			Once()
		m.notifier.EXPECT().
			Notify(mock.Anything, "team-1", "Scheduled migration executed", "Migration mig-2 ran as scheduled.").
			Once()

		assert.NoError(t, m.scheduler().ProcessDue(ctx))
	})

	t.Run("entry claimed by another tick is skipped untouched", func(t *testing.T) {
		m := newSchedulerMocks(t)
		due := dueSchedule("sched-1", "mig-1")

		m.timeProv.EXPECT().Now().Return(now).Maybe()
		m.schedules.EXPECT().ListDue(mock.Anything, now).
			Return([]*entity.ScheduledExecution{due}, nil).Once()
		m.schedules.EXPECT().Claim(mock.Anything, "sched-1").Return(false, nil).Once()

		// No dispatch, no MarkProcessed, no notification for the loser
		assert.NoError(t, m.scheduler().ProcessDue(ctx))
	})

	t.Run("dispatch failure result marks FAILURE", func(t *testing.T) {
		m := newSchedulerMocks(t)
		due := dueSchedule("sched-1", "mig-1")

		m.timeProv.EXPECT().Now().Return(now).Maybe()
		m.schedules.EXPECT().ListDue(mock.Anything, now).
			Return([]*entity.ScheduledExecution{due}, nil).Once()
		m.schedules.EXPECT().Claim(mock.Anything, "sched-1").Return(true, nil).Once()
		m.dispatcher.EXPECT().
			Execute(mock.Anything, "mig-1", mock.Anything).
			Return(&entity.ExecutionResult{Success: false, Error: "syntax error"}, nil).Once()
		m.schedules.EXPECT().MarkProcessed(mock.Anything, mock.MatchedBy(func(s *entity.ScheduledExecution) bool {
			return s.Status == entity.ScheduleFailure && s.ErrorMessage == "syntax error"
		})).Return(nil).Once()
		m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()
		m.notifier.EXPECT().
			Notify(mock.Anything, "team-1", "Scheduled migration failed", "Migration mig-1 failed: syntax error").
			Once()

		assert.NoError(t, m.scheduler().ProcessDue(ctx))
	})
}
