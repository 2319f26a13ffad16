package dto

import (
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// CreateMigrationRequest represents the API request for registering a migration
type CreateMigrationRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Kind         string `json:"kind" binding:"required,oneof=PRISMA DRIZZLE RAW_SQL"`
	Content      string `json:"content" binding:"required"`
	ConnectionID string `json:"connectionId" binding:"required,uuid"`
}

// MigrationResponse represents a migration record
type MigrationResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Version      string     `json:"version"`
	Kind         string     `json:"kind"`
	Checksum     string     `json:"checksum"`
	Status       string     `json:"status"`
	ConnectionID string     `json:"connectionId"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExecutedAt   *time.Time `json:"executedAt,omitempty"`
	RolledBackAt *time.Time `json:"rolledBackAt,omitempty"`
}

// NewMigrationResponse maps a migration entity to its API representation.
// Content is deliberately not echoed back on list responses.
func NewMigrationResponse(m *entity.Migration) MigrationResponse {
	return MigrationResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Version:      m.Version,
		Kind:         string(m.Kind),
		Checksum:     m.Checksum,
		Status:       string(m.Status),
		ConnectionID: m.ConnectionID,
		CreatedAt:    m.CreatedAt,
		ExecutedAt:   m.ExecutedAt,
		RolledBackAt: m.RolledBackAt,
	}
}

// ExecuteMigrationRequest represents the API request for executing a migration
type ExecuteMigrationRequest struct {
	Checksum string `json:"checksum" binding:"required"`
	DryRun   bool   `json:"dryRun"`
}

// StatementResultResponse summarizes one executed statement
type StatementResultResponse struct {
	Statement    string `json:"statement"`
	RowsAffected int64  `json:"rowsAffected"`
}

// ExecutionResponse represents the outcome of one dispatch
type ExecutionResponse struct {
	Success      bool                      `json:"success"`
	DryRun       bool                      `json:"dryRun"`
	DurationMs   int64                     `json:"durationMs"`
	RowsAffected int64                     `json:"rowsAffected"`
	Statements   []StatementResultResponse `json:"statements,omitempty"`
	Preview      []string                  `json:"preview,omitempty"`
	ErrorMessage string                    `json:"errorMessage,omitempty"`
}

// NewExecutionResponse maps an execution result to its API representation
func NewExecutionResponse(r *entity.ExecutionResult) ExecutionResponse {
	resp := ExecutionResponse{
		Success:      r.Success,
		DryRun:       r.DryRun,
		DurationMs:   r.Duration.Milliseconds(),
		RowsAffected: r.RowsAffected,
		Preview:      r.Preview,
		ErrorMessage: r.Error,
	}
	for _, s := range r.Statements {
		resp.Statements = append(resp.Statements, StatementResultResponse{
			Statement:    s.Statement,
			RowsAffected: s.RowsAffected,
		})
	}
	return resp
}

// RollbackMigrationRequest represents the API request for reversing a migration
type RollbackMigrationRequest struct {
	Force        bool   `json:"force"`
	Reason       string `json:"reason"`
	CreateBackup bool   `json:"createBackup"`
}

// RollbackResponse represents the outcome of a reversal attempt
type RollbackResponse struct {
	Success        bool   `json:"success"`
	DurationMs     int64  `json:"durationMs"`
	RollbackSQL    string `json:"rollbackSql,omitempty"`
	BackupLocation string `json:"backupLocation,omitempty"`
	ErrorMessage   string `json:"errorMessage,omitempty"`
}

// NewRollbackResponse maps a rollback result to its API representation
func NewRollbackResponse(r *entity.RollbackResult) RollbackResponse {
	return RollbackResponse{
		Success:        r.Success,
		DurationMs:     r.Duration.Milliseconds(),
		RollbackSQL:    r.RollbackSQL,
		BackupLocation: r.BackupLocation,
		ErrorMessage:   r.Error,
	}
}

// CanRollbackResponse reports reversal eligibility without performing anything
type CanRollbackResponse struct {
	Eligible bool `json:"eligible"`
}

// ExecutionLogEntryResponse represents one execution history entry
type ExecutionLogEntryResponse struct {
	ID           string    `json:"id"`
	Outcome      string    `json:"outcome"`
	DurationMs   int64     `json:"durationMs"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	ExecutedByID string    `json:"executedById,omitempty"`
	ExecutedAt   time.Time `json:"executedAt"`
}

// NewExecutionLogResponse maps execution history entries
func NewExecutionLogResponse(executions []*entity.MigrationExecution) []ExecutionLogEntryResponse {
	entries := make([]ExecutionLogEntryResponse, len(executions))
	for i, e := range executions {
		entries[i] = ExecutionLogEntryResponse{
			ID:           e.ID,
			Outcome:      string(e.Outcome),
			DurationMs:   e.Duration.Milliseconds(),
			ErrorMessage: e.ErrorMessage,
			ExecutedByID: e.ExecutedByID,
			ExecutedAt:   e.ExecutedAt,
		}
	}
	return entries
}
