package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

const defaultPostgresPort = 5432

func newPostgresExecutor(connectTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *sqlExecutor {
	return &sqlExecutor{
		backend:        entity.BackendPostgres,
		driverName:     "pgx",
		dsn:            postgresDSN,
		inspect:        inspectPostgresTables,
		detect:         detectPostgresORM,
		connectTimeout: connectTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

func postgresDSN(cfg dbexec.ConnectionConfig, connectTimeout time.Duration) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
	}
	sslMode := "disable"
	if cfg.SSL {
		sslMode = "require"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, port),
		Path:   "/" + cfg.Database,
	}
	q := u.Query()
	q.Set("sslmode", sslMode)
	q.Set("connect_timeout", fmt.Sprintf("%d", int(connectTimeout.Seconds())))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func inspectPostgresTables(ctx context.Context, db *sql.DB, _ dbexec.ConnectionConfig, tables []string) ([]entity.TableState, error) {
	query := `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name = $1
		ORDER BY ordinal_position
	`

	var states []entity.TableState
	for _, table := range tables {
		rows, err := db.QueryContext(ctx, query, table)
		if err != nil {
			return nil, err
		}

		var columns []entity.ColumnState
		for rows.Next() {
			var col entity.ColumnState
			var nullable string
			var defaultVal sql.NullString
			if err := rows.Scan(&col.Name, &col.Type, &nullable, &defaultVal); err != nil {
				rows.Close()
				return nil, err
			}
			col.Nullable = nullable == "YES"
			col.Default = defaultVal.String
			columns = append(columns, col)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()

		// zero columns means the table does not exist yet
		if len(columns) > 0 {
			states = append(states, entity.TableState{Table: table, Columns: columns})
		}
	}
	return states, nil
}

func detectPostgresORM(ctx context.Context, db *sql.DB) (*dbexec.ORMDetection, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_name IN ('_prisma_migrations', '__drizzle_migrations', 'drizzle_migrations')
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
