package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// MigrationKind identifies how a migration's content was produced
type MigrationKind string

// Migration kinds. PRISMA and DRIZZLE content is generated by the
// corresponding schema tool; RAW_SQL is hand-written SQL.
const (
	KindPrisma  MigrationKind = "PRISMA"
	KindDrizzle MigrationKind = "DRIZZLE"
	KindRawSQL  MigrationKind = "RAW_SQL"
)

// IsORMTool reports whether the kind is a tool-generated migration
func (k MigrationKind) IsORMTool() bool {
	return k == KindPrisma || k == KindDrizzle
}

// IsValid reports whether the kind is known
func (k MigrationKind) IsValid() bool {
	return k == KindPrisma || k == KindDrizzle || k == KindRawSQL
}

// Migration is one versioned unit of database change. Content is immutable
// after creation; a changed migration is a new record.
type Migration struct {
	ID           string
	Name         string
	Description  string
	Version      string // creation timestamp token, monotonic per team
	Kind         MigrationKind
	Content      string
	Checksum     string // hex SHA-256 of Content, captured at creation
	Status       MigrationStatus
	TeamID       string
	ConnectionID string
	CreatedByID  string
	CreatedAt    time.Time
	ExecutedAt   *time.Time
	RolledBackAt *time.Time
}

// NewMigration creates a migration in PENDING with a content checksum
func NewMigration(
	teamID, connectionID, createdByID string,
	name string,
	kind string,
	content string,
	description string,
	timeProvider tport.TimeProvider,
) (*Migration, error) {
	if teamID == "" || connectionID == "" {
		return nil, fmt.Errorf("%w: team and connection are required", errs.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: migration name is required", errs.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: migration content is required", errs.ErrValidation)
	}

	k := MigrationKind(kind)
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: unknown migration kind %q", errs.ErrValidation, kind)
	}

	now := timeProvider.Now()
	return &Migration{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		Version:      now.UTC().Format("20060102150405"),
		Kind:         k,
		Content:      content,
		Checksum:     ComputeChecksum(content),
		Status:       StatusPending,
		TeamID:       teamID,
		ConnectionID: connectionID,
		CreatedByID:  createdByID,
		CreatedAt:    now,
	}, nil
}

// ComputeChecksum returns the hex SHA-256 digest of migration content
func ComputeChecksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum compares a caller-supplied checksum against the current
// content. Used to detect content drift between creation and execution.
func (m *Migration) VerifyChecksum(supplied string) bool {
	return supplied == ComputeChecksum(m.Content)
}

// MarkExecuted stamps the migration after a successful execution
func (m *Migration) MarkExecuted(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	m.Status = StatusExecuted
	m.ExecutedAt = &now
}

// MarkFailed records a failed execution attempt
func (m *Migration) MarkFailed() {
	m.Status = StatusFailed
}

// MarkRolledBack stamps the migration after a successful rollback
func (m *Migration) MarkRolledBack(timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	m.Status = StatusRolledBack
	m.RolledBackAt = &now
}

// OwnedBy reports whether the migration belongs to the given team
func (m *Migration) OwnedBy(teamID string) bool {
	return m.TeamID == teamID
}
