package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coremocks "github.com/schemaflow/migration-engine/mocks/port/core"
)

var errDuplicateKey = errors.New(`duplicate key value violates unique constraint "idx_migrations_version"`)

// newMockDB wires a sqlmock connection behind GORM. Default transactions are
// skipped so write expectations stay one statement each.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return db, sqlMock
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestMigrationRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("maps the row to the entity", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		rows := sqlmock.NewRows([]string{
			"id", "name", "description", "version", "kind", "content", "checksum",
			"status", "team_id", "connection_id", "created_by_id", "created_at",
			"executed_at", "rolled_back_at",
		}).AddRow(
			"mig-1", "add users", "", "20250310093000", "RAW_SQL",
			"CREATE TABLE users (id INT);", "abc", "PENDING",
			"team-1", "conn-1", "user-1", now, nil, nil,
		)
		sqlMock.ExpectQuery(`SELECT .* FROM "migrations" WHERE id = \$1`).
			WithArgs("mig-1", 1).
			WillReturnRows(rows)

		migration, err := repo.GetByID(ctx, "mig-1")

		require.NoError(t, err)
		assert.Equal(t, "mig-1", migration.ID)
		assert.Equal(t, entity.KindRawSQL, migration.Kind)
		assert.Equal(t, entity.StatusPending, migration.Status)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("missing row reads as not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		sqlMock.ExpectQuery(`SELECT .* FROM "migrations" WHERE id = \$1`).
			WithArgs("missing", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrMigrationNotFound)
	})
}

func TestMigrationRepositoryClaim(t *testing.T) {
	ctx := context.Background()
	fromStates := []entity.MigrationStatus{entity.StatusPending, entity.StatusFailed}

	t.Run("wins when the row is in an eligible state", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "migrations" SET "status"=\$1 WHERE id = \$2 AND status IN \(\$3,\$4\)`).
			WithArgs("EXECUTING", "mig-1", "PENDING", "FAILED").
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := repo.Claim(ctx, "mig-1", fromStates, entity.StatusExecuting)

		require.NoError(t, err)
		assert.True(t, claimed)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("loses when another caller already transitioned it", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "migrations" SET "status"=\$1 WHERE id = \$2 AND status IN \(\$3,\$4\)`).
			WithArgs("EXECUTING", "mig-1", "PENDING", "FAILED").
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := repo.Claim(ctx, "mig-1", fromStates, entity.StatusExecuting)

		require.NoError(t, err)
		assert.False(t, claimed)
	})
}

func TestMigrationRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("stamps the outcome columns", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		migration := &entity.Migration{
			ID:         "mig-1",
			Status:     entity.StatusExecuted,
			ExecutedAt: &now,
		}
		sqlMock.ExpectExec(`UPDATE "migrations" SET .* WHERE id = \$4`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(ctx, migration))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("missing row reads as not found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`UPDATE "migrations" SET .* WHERE id = \$4`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, &entity.Migration{ID: "missing", Status: entity.StatusExecuted})
		assert.ErrorIs(t, err, errs.ErrMigrationNotFound)
	})
}

func TestMigrationRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate version surfaces as validation", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		repo := NewMigrationRepository(db, quietLogger(t))

		sqlMock.ExpectExec(`INSERT INTO "migrations"`).
			WillReturnError(errDuplicateKey)

		err := repo.Create(ctx, &entity.Migration{ID: "mig-1", Status: entity.StatusPending})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
