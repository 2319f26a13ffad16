package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

func newSQLiteExecutor(connectTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *sqlExecutor {
	return &sqlExecutor{
		backend:        entity.BackendSQLite,
		driverName:     "sqlite3",
		dsn:            sqliteDSN,
		inspect:        inspectSQLiteTables,
		detect:         detectSQLiteORM,
		connectTimeout: connectTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// sqliteDSN resolves the file path. SQLite has no host; URL takes precedence
// and the Database field is treated as a path otherwise.
func sqliteDSN(cfg dbexec.ConnectionConfig, _ time.Duration) (string, error) {
	if cfg.URL != "" {
		return strings.TrimPrefix(cfg.URL, "sqlite://"), nil
	}
	if cfg.Database == "" {
		return "", fmt.Errorf("sqlite connection requires a database path")
	}
	return cfg.Database, nil
}

func inspectSQLiteTables(ctx context.Context, db *sql.DB, _ dbexec.ConnectionConfig, tables []string) ([]entity.TableState, error) {
	var states []entity.TableState
	for _, table := range tables {
		safe, err := sqliteIdentifier(table)
		if err != nil {
			return nil, err
		}

		rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", safe))
		if err != nil {
			return nil, err
		}

		var columns []entity.ColumnState
		for rows.Next() {
			var cid, notNull, pk int
			var name, colType string
			var defaultVal sql.NullString
			if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
				rows.Close()
				return nil, err
			}
			columns = append(columns, entity.ColumnState{
				Name:     name,
				Type:     colType,
				Nullable: notNull == 0,
				Default:  defaultVal.String,
			})
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()

		if len(columns) > 0 {
			states = append(states, entity.TableState{Table: table, Columns: columns})
		}
	}
	return states, nil
}

func detectSQLiteORM(ctx context.Context, db *sql.DB) (*dbexec.ORMDetection, error) {
	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table'
			AND name IN ('_prisma_migrations', '__drizzle_migrations', 'drizzle_migrations')
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		found = append(found, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return classifyBookkeepingTables(found), nil
}

// sqliteIdentifier rejects table names that cannot be interpolated into a
// PRAGMA, which does not accept bind parameters
func sqliteIdentifier(name string) (string, error) {
	for _, r := range name {
		if r == '"' || r == ';' {
			return "", fmt.Errorf("%w: invalid table name %q", errs.ErrValidation, name)
		}
	}
	return name, nil
}
