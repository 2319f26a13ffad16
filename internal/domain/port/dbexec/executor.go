package dbexec

import (
	"context"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ConnectionConfig is a fully resolved target descriptor: backend kind,
// endpoint, and the already-decrypted password. It never touches the engine
// store and must not be logged with the password populated.
type ConnectionConfig struct {
	Backend  entity.BackendKind
	Host     string
	Port     int
	Database string
	Username string
	Password string
	URL      string // optional direct connection URL, takes precedence
	SSL      bool
}

// TestResult reports a connectivity probe
type TestResult struct {
	OK      bool
	Latency time.Duration
}

// ExecuteResult normalizes a statement batch run. A batch is not atomic
// unless the SQL itself opens a transaction; partial execution is possible
// and FailedIndex points at the statement that broke.
type ExecuteResult struct {
	Statements   []entity.StatementResult
	RowsAffected int64
	FailedIndex  int // -1 when all statements ran
}

// ORMDetection is the advisory classification of a target database's
// migration tooling, based on catalog metadata. Never load-bearing.
type ORMDetection struct {
	Kind       entity.MigrationKind
	Confidence float64 // 0..1
	Evidence   []string
}

// Executor runs statement batches against one backend kind. Implementations
// open a short-lived connection per call with a bounded connect timeout and
// close it deterministically on both success and failure paths.
type Executor interface {
	// Test opens a connection, pings, and reports latency
	Test(ctx context.Context, cfg ConnectionConfig) (*TestResult, error)

	// Execute runs the statements sequentially. On a statement failure it
	// returns both the partial result and a BackendExecutionError.
	Execute(ctx context.Context, cfg ConnectionConfig, statements []string) (*ExecuteResult, error)

	// InspectTables reads the current column definitions of the given
	// tables, for pre-change snapshot capture. Missing tables are skipped.
	InspectTables(ctx context.Context, cfg ConnectionConfig, tables []string) ([]entity.TableState, error)

	// DetectORMTool probes migration-bookkeeping tables and returns a
	// best-effort classification with supporting evidence
	DetectORMTool(ctx context.Context, cfg ConnectionConfig) (*ORMDetection, error)
}

// Factory selects the executor for a backend kind. Adding a backend means
// adding an implementation, not editing a dispatch switch in the usecases.
type Factory interface {
	ExecutorFor(backend entity.BackendKind) (Executor, error)
}
