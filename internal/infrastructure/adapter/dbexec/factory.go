package dbexec

import (
	"fmt"
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

// Factory maps backend kinds to their executor. All executors share the
// database/sql harness; only driver, DSN shape, and catalog queries differ.
type Factory struct {
	executors map[entity.BackendKind]dbexec.Executor
}

// NewFactory builds executors for every supported backend
func NewFactory(connectTimeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *Factory {
	return &Factory{
		executors: map[entity.BackendKind]dbexec.Executor{
			entity.BackendPostgres: newPostgresExecutor(connectTimeout, timeProvider, logger),
			entity.BackendMySQL:    newMySQLExecutor(connectTimeout, timeProvider, logger),
			entity.BackendSQLite:   newSQLiteExecutor(connectTimeout, timeProvider, logger),
		},
	}
}

// ExecutorFor returns the executor for a backend kind
func (f *Factory) ExecutorFor(backend entity.BackendKind) (dbexec.Executor, error) {
	executor, ok := f.executors[backend]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported backend %q", errs.ErrValidation, backend)
	}
	return executor, nil
}
