package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// ScheduleStatus tracks a deferred execution intent
type ScheduleStatus string

// Schedule states. PROCESSING marks an entry claimed by a tick so concurrent
// sweeps cannot double-dispatch it. SUCCESS and FAILURE are terminal; a
// scheduled execution is never re-armed once terminal.
const (
	SchedulePending    ScheduleStatus = "PENDING"
	ScheduleProcessing ScheduleStatus = "PROCESSING"
	ScheduleSuccess    ScheduleStatus = "SUCCESS"
	ScheduleFailure    ScheduleStatus = "FAILURE"
)

// IsTerminal reports whether the schedule has reached a final state
func (s ScheduleStatus) IsTerminal() bool {
	return s == ScheduleSuccess || s == ScheduleFailure
}

// ScheduledExecution is a deferred intent to run a specific migration at a
// future time, tracked independently of the migration's own status.
type ScheduledExecution struct {
	ID            string
	MigrationID   string
	ConnectionID  string
	TeamID        string
	ScheduledFor  time.Time
	Status        ScheduleStatus
	ErrorMessage  string
	ScheduledByID string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// NewScheduledExecution validates that the target time is strictly in the
// future and builds a PENDING intent.
func NewScheduledExecution(
	migrationID, connectionID, teamID string,
	scheduledFor time.Time,
	scheduledByID string,
	timeProvider tport.TimeProvider,
) (*ScheduledExecution, error) {
	now := timeProvider.Now()
	if !scheduledFor.After(now) {
		return nil, fmt.Errorf("%w: scheduled time %s is not in the future",
			errs.ErrValidation, scheduledFor.Format(time.RFC3339))
	}

	return &ScheduledExecution{
		ID:            uuid.NewString(),
		MigrationID:   migrationID,
		ConnectionID:  connectionID,
		TeamID:        teamID,
		ScheduledFor:  scheduledFor,
		Status:        SchedulePending,
		ScheduledByID: scheduledByID,
		CreatedAt:     now,
	}, nil
}

// MarkProcessed terminalizes the intent with the dispatcher's outcome
func (s *ScheduledExecution) MarkProcessed(succeeded bool, errorMessage string, timeProvider tport.TimeProvider) {
	now := timeProvider.Now()
	s.ProcessedAt = &now
	s.ErrorMessage = errorMessage
	if succeeded {
		s.Status = ScheduleSuccess
	} else {
		s.Status = ScheduleFailure
	}
}

// IsDue reports whether the intent's scheduled time has passed
func (s *ScheduledExecution) IsDue(timeProvider tport.TimeProvider) bool {
	return s.Status == SchedulePending && !s.ScheduledFor.After(timeProvider.Now())
}
