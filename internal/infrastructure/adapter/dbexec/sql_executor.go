package dbexec

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

// sqlExecutor runs statement batches over database/sql. Each call opens its
// own short-lived connection and closes it before returning; target databases
// are customer systems and must never hold idle pool slots between calls.
type sqlExecutor struct {
	backend        entity.BackendKind
	driverName     string
	dsn            func(cfg dbexec.ConnectionConfig, connectTimeout time.Duration) (string, error)
	inspect        func(ctx context.Context, db *sql.DB, cfg dbexec.ConnectionConfig, tables []string) ([]entity.TableState, error)
	detect         func(ctx context.Context, db *sql.DB) (*dbexec.ORMDetection, error)
	connectTimeout time.Duration
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

func (e *sqlExecutor) open(ctx context.Context, cfg dbexec.ConnectionConfig) (*sql.DB, error) {
	dsn, err := e.dsn(cfg, e.connectTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrValidation, err.Error())
	}

	db, err := sql.Open(e.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	pingCtx, cancel := e.timeProvider.WithTimeout(ctx, e.connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return db, nil
}

// Test opens a connection, pings, and reports latency
func (e *sqlExecutor) Test(ctx context.Context, cfg dbexec.ConnectionConfig) (*dbexec.TestResult, error) {
	start := e.timeProvider.Now()
	db, err := e.open(ctx, cfg)
	if err != nil {
		return &dbexec.TestResult{OK: false, Latency: e.timeProvider.Since(start)}, err
	}
	defer db.Close()

	return &dbexec.TestResult{OK: true, Latency: e.timeProvider.Since(start)}, nil
}

// Execute runs the statements sequentially against a fresh connection. There
// is no implicit transaction around the batch; a failure leaves the earlier
// statements applied and FailedIndex pointing at the one that broke.
func (e *sqlExecutor) Execute(ctx context.Context, cfg dbexec.ConnectionConfig, statements []string) (*dbexec.ExecuteResult, error) {
	db, err := e.open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	result := &dbexec.ExecuteResult{FailedIndex: -1}
	for i, stmt := range statements {
		res, err := db.ExecContext(ctx, stmt)
		if err != nil {
			result.FailedIndex = i
			e.logger.Warn("statement failed", map[string]any{
				"backend":   string(e.backend),
				"statement": stmt,
				"error":     err.Error(),
			})
			return result, &errs.BackendExecutionError{
				Backend:   string(e.backend),
				Statement: stmt,
				Err:       err,
			}
		}

		affected, raErr := res.RowsAffected()
		if raErr != nil {
			// drivers without affected-row support for DDL report an error here
			affected = 0
		}
		result.Statements = append(result.Statements, entity.StatementResult{
			Statement:    stmt,
			RowsAffected: affected,
		})
		result.RowsAffected += affected
	}
	return result, nil
}

// InspectTables reads the current column definitions of the given tables.
// Tables that do not exist yet are skipped, not reported as errors.
func (e *sqlExecutor) InspectTables(ctx context.Context, cfg dbexec.ConnectionConfig, tables []string) ([]entity.TableState, error) {
	db, err := e.open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return e.inspect(ctx, db, cfg, tables)
}

// DetectORMTool probes migration-bookkeeping tables on the target
func (e *sqlExecutor) DetectORMTool(ctx context.Context, cfg dbexec.ConnectionConfig) (*dbexec.ORMDetection, error) {
	db, err := e.open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return e.detect(ctx, db)
}

// classifyBookkeepingTables maps observed bookkeeping table names to a
// migration tooling guess. Shared across backends; only the catalog query
// that produces the names differs.
func classifyBookkeepingTables(found []string) *dbexec.ORMDetection {
	detection := &dbexec.ORMDetection{Kind: entity.KindRawSQL}
	for _, name := range found {
		switch name {
		case "_prisma_migrations":
			detection.Kind = entity.KindPrisma
			detection.Confidence = 0.9
			detection.Evidence = append(detection.Evidence, "found bookkeeping table _prisma_migrations")
		case "__drizzle_migrations", "drizzle_migrations":
			// prisma evidence wins when both are present; prisma's table is
			// created exclusively by its own engine
			if detection.Kind != entity.KindPrisma {
				detection.Kind = entity.KindDrizzle
				detection.Confidence = 0.8
			}
			detection.Evidence = append(detection.Evidence, "found bookkeeping table "+name)
		}
	}
	return detection
}
