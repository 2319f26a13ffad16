package migration

import (
	"context"
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
)

type serviceMocks struct {
	migrations  *persistencemocks.MockMigrationRepository
	connections *persistencemocks.MockConnectionRepository
	executions  *persistencemocks.MockExecutionRepository
	timeProv    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
	emitter     *coremocks.MockEventEmitter
}

func newServiceMocks(t *testing.T) *serviceMocks {
	m := &serviceMocks{
		migrations:  persistencemocks.NewMockMigrationRepository(t),
		connections: persistencemocks.NewMockConnectionRepository(t),
		executions:  persistencemocks.NewMockExecutionRepository(t),
		timeProv:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
		emitter:     coremocks.NewMockEventEmitter(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.timeProv.EXPECT().Now().Return(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)).Maybe()
	return m
}

func (m *serviceMocks) service() *Service {
	return NewService(m.migrations, m.connections, m.executions, m.timeProv, m.logger, m.emitter)
}

func teamConnection() *entity.DatabaseConnection {
	return &entity.DatabaseConnection{
		ID:      "conn-1",
		Backend: entity.BackendPostgres,
		TeamID:  "team-1",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	validRequest := func() usecase.CreateMigrationRequest {
		return usecase.CreateMigrationRequest{
			TeamID:       "team-1",
			ConnectionID: "conn-1",
			CreatedByID:  "user-1",
			Name:         "add users table",
			Kind:         string(entity.KindRawSQL),
			Content:      "CREATE TABLE users (id INT);",
		}
	}

	t.Run("creates a pending migration", func(t *testing.T) {
		m := newServiceMocks(t)
		m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(teamConnection(), nil).Once()
		m.migrations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(mg *entity.Migration) bool {
			return mg.Status == entity.StatusPending &&
				mg.Version == "20250310093000" &&
				mg.Checksum == entity.ComputeChecksum("CREATE TABLE users (id INT);")
		})).Return(nil).Once()
		m.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Once()

		created, err := m.service().Create(ctx, validRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, entity.StatusPending, created.Status)
	})

	t.Run("foreign connection reads as not found", func(t *testing.T) {
		m := newServiceMocks(t)
		conn := teamConnection()
		conn.TeamID = "team-other"
		m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(conn, nil).Once()

		_, err := m.service().Create(ctx, validRequest())
		assert.ErrorIs(t, err, errs.ErrConnectionNotFound)
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		m := newServiceMocks(t)
		m.connections.EXPECT().GetByID(mock.Anything, "conn-1").Return(teamConnection(), nil).Once()

		req := validRequest()
		req.Content = "   "
		_, err := m.service().Create(ctx, req)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns an owned migration", func(t *testing.T) {
		m := newServiceMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").
			Return(&entity.Migration{ID: "mig-1", TeamID: "team-1"}, nil).Once()

		got, err := m.service().Get(ctx, "team-1", "mig-1")
		require.NoError(t, err)
		assert.Equal(t, "mig-1", got.ID)
	})

	t.Run("foreign migration reads as not found", func(t *testing.T) {
		m := newServiceMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").
			Return(&entity.Migration{ID: "mig-1", TeamID: "team-1"}, nil).Once()

		_, err := m.service().Get(ctx, "team-other", "mig-1")
		assert.ErrorIs(t, err, errs.ErrMigrationNotFound)
	})
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the execution log", func(t *testing.T) {
		m := newServiceMocks(t)
		records := []*entity.MigrationExecution{
			{ID: "exec-2", MigrationID: "mig-1", Outcome: entity.OutcomeSuccess},
			{ID: "exec-1", MigrationID: "mig-1", Outcome: entity.OutcomeFailure},
		}
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").
			Return(&entity.Migration{ID: "mig-1", TeamID: "team-1"}, nil).Once()
		m.executions.EXPECT().ListByMigration(mock.Anything, "mig-1").Return(records, nil).Once()

		got, err := m.service().History(ctx, "team-1", "mig-1")
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("ownership is checked before the log is read", func(t *testing.T) {
		m := newServiceMocks(t)
		m.migrations.EXPECT().GetByID(mock.Anything, "mig-1").
			Return(&entity.Migration{ID: "mig-1", TeamID: "team-1"}, nil).Once()

		_, err := m.service().History(ctx, "team-other", "mig-1")
		assert.ErrorIs(t, err, errs.ErrMigrationNotFound)
	})
}
