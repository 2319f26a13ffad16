package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coremocks "github.com/schemaflow/migration-engine/mocks/port/core"
	dbexecmocks "github.com/schemaflow/migration-engine/mocks/port/dbexec"
	persistencemocks "github.com/schemaflow/migration-engine/mocks/port/persistence"
)

type snapshotMocks struct {
	migrations  *persistencemocks.MockMigrationRepository
	connections *persistencemocks.MockConnectionRepository
	snapshots   *persistencemocks.MockSnapshotRepository
	executors   *dbexecmocks.MockFactory
	cipher      *coremocks.MockSecretCipher
	timeProv    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newSnapshotMocks(t *testing.T) *snapshotMocks {
	m := &snapshotMocks{
		migrations:  persistencemocks.NewMockMigrationRepository(t),
		connections: persistencemocks.NewMockConnectionRepository(t),
		snapshots:   persistencemocks.NewMockSnapshotRepository(t),
		executors:   dbexecmocks.NewMockFactory(t),
		cipher:      coremocks.NewMockSecretCipher(t),
		timeProv:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.timeProv.EXPECT().Now().Return(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)).Maybe()
	return m
}

func (m *snapshotMocks) service() *Service {
	return NewService(
		m.migrations, m.connections, m.snapshots,
		m.executors, m.cipher, m.timeProv, m.logger)
}

func snapshotMigration(content string) *entity.Migration {
	return &entity.Migration{
		ID:           "mig-1",
		Version:      "20250310093000",
		Kind:         entity.KindRawSQL,
		Content:      content,
		Status:       entity.StatusPending,
		TeamID:       "team-1",
		ConnectionID: "conn-1",
	}
}

func TestDerive(t *testing.T) {
	ctx := context.Background()

	t.Run("tables and reversal from forward content", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);\nINSERT INTO t (id) VALUES (1);")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		snap, err := m.service().Derive(ctx, "team-1", "mig-1")

		require.NoError(t, err)
		assert.Equal(t, "mig-1", snap.MigrationID)
		assert.Equal(t, "20250310093000", snap.SchemaVersion)
		assert.Equal(t, []string{"t"}, snap.AffectedTables)
		assert.Equal(t, "DROP TABLE IF EXISTS t;", snap.RollbackSQL)
		assert.Equal(t, "some statements had no derivable reverse", snap.Metadata["rollback_partial"])
		assert.False(t, snap.IsPersisted)
	})

	t.Run("undecidable reversal is flagged", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("DROP TABLE legacy;")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		snap, err := m.service().Derive(ctx, "team-1", "mig-1")

		require.NoError(t, err)
		assert.Empty(t, snap.RollbackSQL)
		assert.Equal(t, "forward content drops a table", snap.Metadata["rollback_undecidable"])
	})

	t.Run("foreign team is forbidden", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()

		_, err := m.service().Derive(ctx, "team-other", "mig-1")
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestCreateAndPersist(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a derived snapshot", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").
			Return(nil, errs.ErrSnapshotNotFound).Once()
		m.snapshots.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.MigrationSnapshot) bool {
			return s.MigrationID == "mig-1" && s.RollbackSQL == "DROP TABLE IF EXISTS t;" && s.CreatedByID == "user-1"
		})).Return(nil).Once()

		snap, err := m.service().CreateAndPersist(ctx, "team-1", "mig-1", "user-1", false)

		require.NoError(t, err)
		assert.True(t, snap.IsPersisted)
		assert.Empty(t, snap.PreState)
	})

	t.Run("re-request returns the existing snapshot", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")
		existing := &entity.MigrationSnapshot{ID: "snap-1", MigrationID: "mig-1"}

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").Return(existing, nil).Once()

		snap, err := m.service().CreateAndPersist(ctx, "team-1", "mig-1", "user-1", true)

		require.NoError(t, err)
		assert.Equal(t, "snap-1", snap.ID)
		assert.True(t, snap.IsPersisted)
	})

	t.Run("losing a concurrent create returns the stored snapshot", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")
		stored := &entity.MigrationSnapshot{ID: "snap-1", MigrationID: "mig-1"}
		dupErr := fmt.Errorf("%w: snapshot already exists for migration mig-1", errs.ErrValidation)

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").
			Return(nil, errs.ErrSnapshotNotFound).Once()
		m.snapshots.EXPECT().Create(mock.Anything, mock.Anything).Return(dupErr).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").Return(stored, nil).Once()

		snap, err := m.service().CreateAndPersist(ctx, "team-1", "mig-1", "user-1", false)

		require.NoError(t, err)
		assert.Equal(t, "snap-1", snap.ID)
		assert.True(t, snap.IsPersisted)
	})

	t.Run("captures live pre-state when requested", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("ALTER TABLE users ADD COLUMN age INT;")
		executor := dbexecmocks.NewMockExecutor(t)
		preState := []entity.TableState{{
			Table:   "users",
			Columns: []entity.ColumnState{{Name: "id", Type: "integer", Nullable: false}},
		}}

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").
			Return(nil, errs.ErrSnapshotNotFound).Once()
		m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(&entity.DatabaseConnection{
			ID:                "conn-1",
			Backend:           entity.BackendPostgres,
			Host:              "db.internal",
			EncryptedPassword: "enc:secret",
			TeamID:            "team-1",
		}, nil).Once()
		m.cipher.EXPECT().Decrypt("enc:secret").Return("secret", nil).Once()
		m.executors.EXPECT().ExecutorFor(entity.BackendPostgres).Return(executor, nil).Once()
		executor.EXPECT().InspectTables(mock.Anything, mock.Anything, []string{"users"}).
			Return(preState, nil).Once()
		m.snapshots.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.MigrationSnapshot) bool {
			return len(s.PreState) == 1 && s.PreState[0].Table == "users"
		})).Return(nil).Once()

		snap, err := m.service().CreateAndPersist(ctx, "team-1", "mig-1", "user-1", true)

		require.NoError(t, err)
		assert.Equal(t, preState, snap.PreState)
	})

	t.Run("capture failure degrades instead of blocking", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("ALTER TABLE users ADD COLUMN age INT;")

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").
			Return(nil, errs.ErrSnapshotNotFound).Once()
		m.connections.EXPECT().GetByID(mock.Anything, "conn-1").
			Return(nil, errors.New("connection refused")).Once()
		m.snapshots.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.MigrationSnapshot) bool {
			return s.Metadata["pre_state_capture"] == "failed: connection refused" && len(s.PreState) == 0
		})).Return(nil).Once()

		snap, err := m.service().CreateAndPersist(ctx, "team-1", "mig-1", "user-1", true)

		require.NoError(t, err)
		assert.True(t, snap.IsPersisted)
		assert.Empty(t, snap.PreState)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers the persisted snapshot", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")
		persisted := &entity.MigrationSnapshot{ID: "snap-1", MigrationID: "mig-1"}

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").Return(persisted, nil).Once()

		snap, err := m.service().Get(ctx, "team-1", "mig-1")

		require.NoError(t, err)
		assert.Equal(t, "snap-1", snap.ID)
		assert.True(t, snap.IsPersisted)
	})

	t.Run("falls back to on-the-fly derivation", func(t *testing.T) {
		m := newSnapshotMocks(t)
		migration := snapshotMigration("CREATE TABLE t (id INT);")

		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").Return(migration, nil).Once()
		m.snapshots.EXPECT().GetByMigration(mock.Anything, "mig-1").
			Return(nil, errs.ErrSnapshotNotFound).Once()

		snap, err := m.service().Get(ctx, "team-1", "mig-1")

		require.NoError(t, err)
		assert.False(t, snap.IsPersisted)
		assert.Equal(t, "DROP TABLE IF EXISTS t;", snap.RollbackSQL)
	})
}
