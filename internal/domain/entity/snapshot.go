package entity

import (
	"time"

	"github.com/google/uuid"

	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// ColumnState captures one column's definition as observed before a migration ran
type ColumnState struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Default  string `json:"default,omitempty"`
}

// TableState is the pre-change shape of one affected table
type TableState struct {
	Table   string        `json:"table"`
	Columns []ColumnState `json:"columns"`
}

// MigrationSnapshot is a recoverability record for one migration: the tables
// the migration touches, best-effort derived rollback SQL, and optionally the
// live pre-change column state. At most one persisted snapshot per migration.
type MigrationSnapshot struct {
	ID             string
	MigrationID    string
	SchemaVersion  string
	AffectedTables []string
	RollbackSQL    string // empty when reversal is undecidable
	PreState       []TableState
	Metadata       map[string]string
	CreatedByID    string
	CreatedAt      time.Time
	IsPersisted    bool
}

// NewMigrationSnapshot builds a snapshot descriptor. Persistence is the
// repository's concern; IsPersisted starts false.
func NewMigrationSnapshot(
	migrationID, schemaVersion string,
	affectedTables []string,
	rollbackSQL string,
	preState []TableState,
	createdByID string,
	timeProvider tport.TimeProvider,
) *MigrationSnapshot {
	return &MigrationSnapshot{
		ID:             uuid.NewString(),
		MigrationID:    migrationID,
		SchemaVersion:  schemaVersion,
		AffectedTables: affectedTables,
		RollbackSQL:    rollbackSQL,
		PreState:       preState,
		Metadata:       map[string]string{},
		CreatedByID:    createdByID,
		CreatedAt:      timeProvider.Now(),
	}
}

// PITRCapability reports whether a hosting provider natively supports
// continuous point-in-time recovery. Informational only.
type PITRCapability struct {
	Provider     string
	Supported    bool
	Instructions string
}
