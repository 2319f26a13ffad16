package dto

import (
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// ScheduleMigrationRequest represents the API request for deferring a migration
type ScheduleMigrationRequest struct {
	MigrationID  string    `json:"migrationId" binding:"required,uuid"`
	ConnectionID string    `json:"connectionId" binding:"required,uuid"`
	ScheduledFor time.Time `json:"scheduledFor" binding:"required"`
}

// ScheduleResponse represents a scheduled execution intent
type ScheduleResponse struct {
	ID           string     `json:"id"`
	MigrationID  string     `json:"migrationId"`
	ConnectionID string     `json:"connectionId"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
}

// NewScheduleResponse maps a scheduled execution to its API representation
func NewScheduleResponse(s *entity.ScheduledExecution) ScheduleResponse {
	return ScheduleResponse{
		ID:           s.ID,
		MigrationID:  s.MigrationID,
		ConnectionID: s.ConnectionID,
		ScheduledFor: s.ScheduledFor,
		Status:       string(s.Status),
		ErrorMessage: s.ErrorMessage,
		CreatedAt:    s.CreatedAt,
		ProcessedAt:  s.ProcessedAt,
	}
}
