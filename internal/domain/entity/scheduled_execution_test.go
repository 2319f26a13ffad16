package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coremocks "github.com/schemaflow/migration-engine/mocks/port/core"
)

func TestNewScheduledExecution(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newTimeMock := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(now).Maybe()
		return mockTime
	}

	t.Run("Future time builds a PENDING intent", func(t *testing.T) {
		s, err := entity.NewScheduledExecution(
			"mig-1", "conn-1", "team-1",
			now.Add(time.Hour), "user-1", newTimeMock(t))

		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, entity.SchedulePending, s.Status)
		assert.Equal(t, now, s.CreatedAt)
		assert.Nil(t, s.ProcessedAt)
	})

	t.Run("Past time is rejected", func(t *testing.T) {
		_, err := entity.NewScheduledExecution(
			"mig-1", "conn-1", "team-1",
			now.Add(-time.Minute), "user-1", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Exactly now is rejected, strictly future only", func(t *testing.T) {
		_, err := entity.NewScheduledExecution(
			"mig-1", "conn-1", "team-1",
			now, "user-1", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestScheduleMarkProcessed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Success terminalizes as SUCCESS", func(t *testing.T) {
		s := &entity.ScheduledExecution{Status: entity.SchedulePending}
		s.MarkProcessed(true, "", mockTime)
		assert.Equal(t, entity.ScheduleSuccess, s.Status)
		assert.Empty(t, s.ErrorMessage)
		require.NotNil(t, s.ProcessedAt)
		assert.Equal(t, now, *s.ProcessedAt)
	})

	t.Run("Failure keeps the error message", func(t *testing.T) {
		s := &entity.ScheduledExecution{Status: entity.SchedulePending}
		s.MarkProcessed(false, "target unreachable", mockTime)
		assert.Equal(t, entity.ScheduleFailure, s.Status)
		assert.Equal(t, "target unreachable", s.ErrorMessage)
	})

	t.Run("Terminal states are terminal", func(t *testing.T) {
		assert.True(t, entity.ScheduleSuccess.IsTerminal())
		assert.True(t, entity.ScheduleFailure.IsTerminal())
		assert.False(t, entity.SchedulePending.IsTerminal())
		assert.False(t, entity.ScheduleProcessing.IsTerminal())
	})
}

func TestScheduleIsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	due := &entity.ScheduledExecution{Status: entity.SchedulePending, ScheduledFor: now.Add(-time.Second)}
	assert.True(t, due.IsDue(mockTime))

	atNow := &entity.ScheduledExecution{Status: entity.SchedulePending, ScheduledFor: now}
	assert.True(t, atNow.IsDue(mockTime))

	future := &entity.ScheduledExecution{Status: entity.SchedulePending, ScheduledFor: now.Add(time.Second)}
	assert.False(t, future.IsDue(mockTime))

	terminal := &entity.ScheduledExecution{Status: entity.ScheduleSuccess, ScheduledFor: now.Add(-time.Hour)}
	assert.False(t, terminal.IsDue(mockTime))
}
