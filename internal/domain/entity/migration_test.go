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

func TestNewMigration(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	newTimeMock := func(t *testing.T) *coremocks.MockTimeProvider {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		return mockTime
	}

	t.Run("Creates a PENDING migration with checksum and version", func(t *testing.T) {
		m, err := entity.NewMigration(
			"team-1", "conn-1", "user-1",
			"add users table", string(entity.KindRawSQL),
			"CREATE TABLE users (id INT);", "initial schema",
			newTimeMock(t))

		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, entity.StatusPending, m.Status)
		assert.Equal(t, "20250310093000", m.Version)
		assert.Equal(t, entity.ComputeChecksum("CREATE TABLE users (id INT);"), m.Checksum)
		assert.Equal(t, fixedTime, m.CreatedAt)
		assert.Nil(t, m.ExecutedAt)
	})

	t.Run("Rejects missing team or connection", func(t *testing.T) {
		_, err := entity.NewMigration("", "conn-1", "user-1", "m", "RAW_SQL", "SELECT 1;", "", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = entity.NewMigration("team-1", "", "user-1", "m", "RAW_SQL", "SELECT 1;", "", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects blank name and content", func(t *testing.T) {
		_, err := entity.NewMigration("team-1", "conn-1", "user-1", "   ", "RAW_SQL", "SELECT 1;", "", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = entity.NewMigration("team-1", "conn-1", "user-1", "m", "RAW_SQL", "  \n ", "", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Rejects unknown kind", func(t *testing.T) {
		_, err := entity.NewMigration("team-1", "conn-1", "user-1", "m", "FLYWAY", "SELECT 1;", "", newTimeMock(t))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestMigrationChecksum(t *testing.T) {
	t.Run("VerifyChecksum accepts the creation checksum", func(t *testing.T) {
		content := "ALTER TABLE users ADD COLUMN email TEXT;"
		m := &entity.Migration{Content: content}
		assert.True(t, m.VerifyChecksum(entity.ComputeChecksum(content)))
	})

	t.Run("VerifyChecksum rejects after content drift", func(t *testing.T) {
		m := &entity.Migration{Content: "SELECT 2;"}
		assert.False(t, m.VerifyChecksum(entity.ComputeChecksum("SELECT 1;")))
	})

	t.Run("ComputeChecksum is a hex SHA-256", func(t *testing.T) {
		sum := entity.ComputeChecksum("SELECT 1;")
		assert.Len(t, sum, 64)
		assert.Equal(t, sum, entity.ComputeChecksum("SELECT 1;"))
	})
}

func TestMigrationStateStamps(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("MarkExecuted stamps ExecutedAt", func(t *testing.T) {
		m := &entity.Migration{Status: entity.StatusExecuting}
		m.MarkExecuted(mockTime)
		assert.Equal(t, entity.StatusExecuted, m.Status)
		require.NotNil(t, m.ExecutedAt)
		assert.Equal(t, fixedTime, *m.ExecutedAt)
	})

	t.Run("MarkFailed leaves timestamps alone", func(t *testing.T) {
		m := &entity.Migration{Status: entity.StatusExecuting}
		m.MarkFailed()
		assert.Equal(t, entity.StatusFailed, m.Status)
		assert.Nil(t, m.ExecutedAt)
	})

	t.Run("MarkRolledBack stamps RolledBackAt", func(t *testing.T) {
		m := &entity.Migration{Status: entity.StatusExecuting}
		m.MarkRolledBack(mockTime)
		assert.Equal(t, entity.StatusRolledBack, m.Status)
		require.NotNil(t, m.RolledBackAt)
		assert.Equal(t, fixedTime, *m.RolledBackAt)
	})
}

func TestMigrationKind(t *testing.T) {
	assert.True(t, entity.KindPrisma.IsORMTool())
	assert.True(t, entity.KindDrizzle.IsORMTool())
	assert.False(t, entity.KindRawSQL.IsORMTool())

	assert.True(t, entity.KindRawSQL.IsValid())
	assert.False(t, entity.MigrationKind("LIQUIBASE").IsValid())
}

func TestMigrationOwnedBy(t *testing.T) {
	m := &entity.Migration{TeamID: "team-1"}
	assert.True(t, m.OwnedBy("team-1"))
	assert.False(t, m.OwnedBy("team-2"))
}
