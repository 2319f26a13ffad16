package dto

import (
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// CreateSnapshotRequest represents the API request for persisting a snapshot
type CreateSnapshotRequest struct {
	CapturePreState bool `json:"capturePreState"`
}

// ColumnStateResponse is one column as observed before the migration ran
type ColumnStateResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
	Default  string `json:"default,omitempty"`
}

// TableStateResponse is the pre-change shape of one table
type TableStateResponse struct {
	Table   string                `json:"table"`
	Columns []ColumnStateResponse `json:"columns"`
}

// SnapshotResponse represents a recoverability record
type SnapshotResponse struct {
	ID             string               `json:"id"`
	MigrationID    string               `json:"migrationId"`
	SchemaVersion  string               `json:"schemaVersion"`
	AffectedTables []string             `json:"affectedTables,omitempty"`
	RollbackSQL    string               `json:"rollbackSql,omitempty"`
	PreState       []TableStateResponse `json:"preState,omitempty"`
	Metadata       map[string]string    `json:"metadata,omitempty"`
	Persisted      bool                 `json:"persisted"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// NewSnapshotResponse maps a snapshot entity to its API representation
func NewSnapshotResponse(s *entity.MigrationSnapshot) SnapshotResponse {
	resp := SnapshotResponse{
		ID:             s.ID,
		MigrationID:    s.MigrationID,
		SchemaVersion:  s.SchemaVersion,
		AffectedTables: s.AffectedTables,
		RollbackSQL:    s.RollbackSQL,
		Metadata:       s.Metadata,
		Persisted:      s.IsPersisted,
		CreatedAt:      s.CreatedAt,
	}
	for _, t := range s.PreState {
		table := TableStateResponse{Table: t.Table}
		for _, c := range t.Columns {
			table.Columns = append(table.Columns, ColumnStateResponse{
				Name:     c.Name,
				Type:     c.Type,
				Nullable: c.Nullable,
				Default:  c.Default,
			})
		}
		resp.PreState = append(resp.PreState, table)
	}
	return resp
}

// PITRCapabilityResponse reports provider point-in-time recovery support
type PITRCapabilityResponse struct {
	Provider     string `json:"provider"`
	Supported    bool   `json:"supported"`
	Instructions string `json:"instructions,omitempty"`
}

// NewPITRCapabilityResponse maps a capability report
func NewPITRCapabilityResponse(c *entity.PITRCapability) PITRCapabilityResponse {
	return PITRCapabilityResponse{
		Provider:     c.Provider,
		Supported:    c.Supported,
		Instructions: c.Instructions,
	}
}
