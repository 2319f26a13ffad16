package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

const defaultMySQLPort = 3306

func newMySQLExecutor(connectTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *sqlExecutor {
	return &sqlExecutor{
		backend:        entity.BackendMySQL,
		driverName:     "mysql",
		dsn:            mysqlDSN,
		inspect:        inspectMySQLTables,
		detect:         detectMySQLORM,
		connectTimeout: connectTimeout,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// mysqlDSN builds a go-sql-driver DSN. A populated URL is passed through
// verbatim and must already be in driver format, not mysql:// form.
func mysqlDSN(cfg dbexec.ConnectionConfig, connectTimeout time.Duration) (string, error) {
	if cfg.URL != "" {
		return cfg.URL, nil
	}

	port := cfg.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&timeout=%s",
		cfg.Username, cfg.Password, cfg.Host, port, cfg.Database, connectTimeout)
	if cfg.SSL {
		dsn += "&tls=true"
	}
	return dsn, nil
}

func inspectMySQLTables(ctx context.Context, db *sql.DB, _ dbexec.ConnectionConfig, tables []string) ([]entity.TableState, error) {
	query := `
		SELECT column_name, column_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
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

		if len(columns) > 0 {
			states = append(states, entity.TableState{Table: table, Columns: columns})
		}
	}
	return states, nil
}

func detectMySQLORM(ctx context.Context, db *sql.DB) (*dbexec.ORMDetection, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
			AND table_name IN ('_prisma_migrations', '__drizzle_migrations', 'drizzle_migrations')
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
