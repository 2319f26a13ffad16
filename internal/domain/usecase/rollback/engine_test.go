package rollback

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
	portdbexec "github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
	coremocks "github.com/schemaflow/migration-engine/mocks/port/core"
	dbexecmocks "github.com/schemaflow/migration-engine/mocks/port/dbexec"
	persistencemocks "github.com/schemaflow/migration-engine/mocks/port/persistence"
)

type engineMocks struct {
	migrations  *persistencemocks.MockMigrationRepository
	connections *persistencemocks.MockConnectionRepository
	executions  *persistencemocks.MockExecutionRepository
	rollbacks   *persistencemocks.MockRollbackRepository
	executors   *dbexecmocks.MockFactory
	cipher      *coremocks.MockSecretCipher
	timeProv    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
	emitter     *coremocks.MockEventEmitter
}

func newEngineMocks(t *testing.T) *engineMocks {
	m := &engineMocks{
		migrations:  persistencemocks.NewMockMigrationRepository(t),
		connections: persistencemocks.NewMockConnectionRepository(t),
		executions:  persistencemocks.NewMockExecutionRepository(t),
		rollbacks:   persistencemocks.NewMockRollbackRepository(t),
		executors:   dbexecmocks.NewMockFactory(t),
		cipher:      coremocks.NewMockSecretCipher(t),
		timeProv:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
		emitter:     coremocks.NewMockEventEmitter(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *engineMocks) engine() *Engine {
	return NewEngine(
		m.migrations, m.connections, m.executions, m.rollbacks,
		m.executors, m.cipher, m.timeProv, m.logger, m.emitter)
}

func executedMigration(kind entity.MigrationKind, content string) *entity.Migration {
	return &entity.Migration{
		ID:           "mig-1",
		Name:         "add users table",
		Kind:         kind,
		Content:      content,
		Checksum:     entity.ComputeChecksum(content),
		Status:       entity.StatusExecuted,
		TeamID:       "team-1",
		ConnectionID: "conn-1",
	}
}

func rollbackConnection() *entity.DatabaseConnection {
	return &entity.DatabaseConnection{
		ID:                "conn-1",
		Backend:           entity.BackendPostgres,
		Host:              "db.internal",
		Port:              5432,
		Database:          "app",
		Username:          "app",
		EncryptedPassword: "enc:secret",
		TeamID:            "team-1",
	}
}

func TestCanRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("not eligible before execution", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
		migration.Status = entity.StatusPending
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		ok, err := m.engine().CanRollback(ctx, "team-1", "mig-1", false)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tool generated migrations need force", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindPrisma, "ALTER TABLE t ADD COLUMN c INT;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Twice()

		ok, err := m.engine().CanRollback(ctx, "team-1", "mig-1", false)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = m.engine().CanRollback(ctx, "team-1", "mig-1", true)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("raw sql with reversal hints", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		ok, err := m.engine().CanRollback(ctx, "team-1", "mig-1", false)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCanRollbackForeignTeam(t *testing.T) {
	ctx := context.Background()
	m := newEngineMocks(t)
	migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
	migration.TeamID = "team-b"
	m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

	ok, err := m.engine().CanRollback(ctx, "team-a", "mig-1", false)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestRollbackRefusals(t *testing.T) {
	ctx := context.Background()

	t.Run("migration owned by another team", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
		migration.TeamID = "team-b"
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{
			TeamID:         "team-a",
			RolledBackByID: "user-from-team-a",
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		// No claim, no rollback record: the mocks would fail on any such call
	})

	t.Run("only executed migrations qualify", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
		migration.Status = entity.StatusFailed
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("tool generated migration without force", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindPrisma, "ALTER TABLE t ADD COLUMN c INT;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1"})
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrRollbackUnsupported)
		assert.Contains(t, err.Error(), "PRISMA")
		assert.Contains(t, err.Error(), "originating tool")
	})

	t.Run("forward drop table is undecidable", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "DROP TABLE legacy_events;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1"})
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrRollbackUnsupported)
		assert.Contains(t, err.Error(), "snapshot")
	})

	t.Run("claim lost to concurrent transition", func(t *testing.T) {
		m := newEngineMocks(t)
		migration := executedMigration(entity.KindRawSQL, "ALTER TABLE t ADD COLUMN c INT;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.migrations.EXPECT().
			Claim(mock.Anything, "mig-1", entity.RollbackClaimStates(), entity.StatusExecuting).
			Return(false, nil).Once()

		result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1"})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestRollbackSuccess(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	content := "CREATE TABLE t (id INT);\nALTER TABLE t ADD COLUMN name TEXT;"
	wantSQL := "DROP TABLE IF EXISTS t;\nALTER TABLE t DROP COLUMN IF EXISTS name;"

	m := newEngineMocks(t)
	migration := executedMigration(entity.KindRawSQL, content)
	executor := dbexecmocks.NewMockExecutor(t)

	m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
	m.migrations.EXPECT().
		Claim(mock.Anything, "mig-1", entity.RollbackClaimStates(), entity.StatusExecuting).
		Return(true, nil).Once()
	m.timeProv.EXPECT().Now().Return(fixedTime).Maybe()
	m.timeProv.EXPECT().Since(fixedTime).Return(200 * time.Millisecond).Once()

	m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(rollbackConnection(), nil).Once()
	m.cipher.EXPECT().Decrypt("enc:secret").Return("secret", nil).Once()
	m.executors.EXPECT().ExecutorFor(entity.BackendPostgres).Return(executor, nil).Once()
	executor.EXPECT().
		Execute(mock.Anything, mock.MatchedBy(func(cfg portdbexec.ConnectionConfig) bool {
			return cfg.Password == "secret"
		}), []string{"DROP TABLE IF EXISTS t;", "ALTER TABLE t DROP COLUMN IF EXISTS name;"}).
		Return(&portdbexec.ExecuteResult{FailedIndex: -1}, nil).Once()

	m.rollbacks.EXPECT().Append(mock.Anything, mock.MatchedBy(func(rec *entity.MigrationRollback) bool {
		return rec.MigrationID == "mig-1" &&
			rec.Outcome == entity.RollbackSuccess &&
			rec.RollbackSQL == wantSQL &&
			rec.Reason == "staging regression" &&
			rec.BackupLocation == "backup/mig-1/20250310093000"
	})).Return(nil).Once()
	m.migrations.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(mg *entity.Migration) bool {
		return mg.Status == entity.StatusRolledBack && mg.RolledBackAt != nil
	})).Return(nil).Once()
	m.executions.EXPECT().TagLatestAsRolledBack(mock.Anything, "mig-1").Return(nil).Once()
	m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()

	result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{
		TeamID:         "team-1",
		Reason:         "staging regression",
		CreateBackup:   true,
		RolledBackByID: "user-1",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, wantSQL, result.RollbackSQL)
	assert.Equal(t, "backup/mig-1/20250310093000", result.BackupLocation)
	assert.Equal(t, 200*time.Millisecond, result.Duration)
}

func TestRollbackBackendFailureRevertsStatus(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	m := newEngineMocks(t)
	migration := executedMigration(entity.KindRawSQL, "CREATE TABLE t (id INT);\n-- safe to drop on rollback")
	executor := dbexecmocks.NewMockExecutor(t)

	m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
	m.migrations.EXPECT().
		Claim(mock.Anything, "mig-1", entity.RollbackClaimStates(), entity.StatusExecuting).
		Return(true, nil).Once()
	m.timeProv.EXPECT().Now().Return(fixedTime).Maybe()
	m.timeProv.EXPECT().Since(fixedTime).Return(30 * time.Millisecond).Once()

	m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(rollbackConnection(), nil).Once()
	m.cipher.EXPECT().Decrypt("enc:secret").Return("secret", nil).Once()
	m.executors.EXPECT().ExecutorFor(entity.BackendPostgres).Return(executor, nil).Once()
	executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("table is locked")).Once()

	// Failure reverts the migration to EXECUTED so it stays rollback-eligible
	m.migrations.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(mg *entity.Migration) bool {
		return mg.Status == entity.StatusExecuted
	})).Return(nil).Once()
	m.rollbacks.EXPECT().Append(mock.Anything, mock.MatchedBy(func(rec *entity.MigrationRollback) bool {
		return rec.Outcome == entity.RollbackFailure && rec.RollbackSQL == "DROP TABLE IF EXISTS t;"
	})).Return(nil).Once()

	result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "table is locked")
}

func TestRollbackForcedNoOp(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	m := newEngineMocks(t)
	// Pure DML: nothing derivable, but force still completes as a no-op
	migration := executedMigration(entity.KindRawSQL, "UPDATE settings SET flag = true;")

	m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
	m.migrations.EXPECT().
		Claim(mock.Anything, "mig-1", entity.RollbackClaimStates(), entity.StatusExecuting).
		Return(true, nil).Once()
	m.timeProv.EXPECT().Now().Return(fixedTime).Maybe()
	m.timeProv.EXPECT().Since(fixedTime).Return(time.Millisecond).Once()

	m.rollbacks.EXPECT().Append(mock.Anything, mock.MatchedBy(func(rec *entity.MigrationRollback) bool {
		return rec.Outcome == entity.RollbackSuccess && rec.RollbackSQL == ""
	})).Return(nil).Once()
	m.migrations.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil).Once()
	m.executions.EXPECT().TagLatestAsRolledBack(mock.Anything, "mig-1").Return(nil).Once()
	m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()

	result, err := m.engine().Rollback(ctx, "mig-1", usecase.RollbackOptions{TeamID: "team-1", Force: true})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.RollbackSQL)
	assert.Empty(t, result.BackupLocation)
}
