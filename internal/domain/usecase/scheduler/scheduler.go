package scheduler

import (
	"context"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/persistence"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
)

// Scheduler persists future-dated execution intents and, on each tick,
// promotes due ones into the execution dispatcher exactly once.
type Scheduler struct {
	schedules    persistence.ScheduleRepository
	migrations   persistence.MigrationRepository
	dispatcher   usecase.ExecutionDispatcher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	emitter      coreport.EventEmitter
	notifier     coreport.Notifier
}

// NewScheduler creates a scheduler
func NewScheduler(
	schedules persistence.ScheduleRepository,
	migrations persistence.MigrationRepository,
	dispatcher usecase.ExecutionDispatcher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	emitter coreport.EventEmitter,
	notifier coreport.Notifier,
) *Scheduler {
	return &Scheduler{
		schedules:    schedules,
		migrations:   migrations,
		dispatcher:   dispatcher,
		timeProvider: timeProvider,
		logger:       logger,
		emitter:      emitter,
		notifier:     notifier,
	}
}

// Schedule validates the intent and persists it. Every validation failure
// happens before any write: the migration must exist, belong to the team,
// be bound to the given connection, and the time must be strictly future.
func (s *Scheduler) Schedule(ctx context.Context, req usecase.ScheduleRequest) (*entity.ScheduledExecution, error) {
	migration, err := s.migrations.GetByID(ctx, req.MigrationID)
	if err != nil {
		return nil, err
	}
	if !migration.OwnedBy(req.TeamID) {
		return nil, fmt.Errorf("%w: migration %s", errs.ErrMigrationNotFound, req.MigrationID)
	}
	if migration.ConnectionID != req.ConnectionID {
		return nil, fmt.Errorf("%w: migration is bound to connection %s, not %s",
			errs.ErrValidation, migration.ConnectionID, req.ConnectionID)
	}

	schedule, err := entity.NewScheduledExecution(
		req.MigrationID, req.ConnectionID, req.TeamID,
		req.ScheduledFor, req.ScheduledByID, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.schedules.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventScheduleCreated,
		MigrationID: req.MigrationID,
		TeamID:      req.TeamID,
		ActorID:     req.ScheduledByID,
		Metadata: map[string]any{
			"schedule_id":   schedule.ID,
			"scheduled_for": schedule.ScheduledFor,
		},
	})

	s.logger.Info("Execution scheduled", map[string]any{
		"schedule_id":   schedule.ID,
		"migration_id":  req.MigrationID,
		"scheduled_for": schedule.ScheduledFor,
	})
	return schedule, nil
}

// Cancel deletes a PENDING scheduled execution. Anything already claimed or
// terminal fails with a conflict naming its status.
func (s *Scheduler) Cancel(ctx context.Context, scheduleID, teamID, requesterID string) error {
	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule.TeamID != teamID {
		return fmt.Errorf("%w: scheduled execution %s", errs.ErrScheduleNotFound, scheduleID)
	}
	if schedule.Status != entity.SchedulePending {
		return &errs.ScheduleConflictError{
			ScheduleID: scheduleID,
			Status:     string(schedule.Status),
		}
	}

	if err := s.schedules.Delete(ctx, scheduleID); err != nil {
		return err
	}

	s.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventScheduleCancelled,
		MigrationID: schedule.MigrationID,
		TeamID:      teamID,
		ActorID:     requesterID,
		Metadata:    map[string]any{"schedule_id": scheduleID},
	})

	s.logger.Info("Scheduled execution cancelled", map[string]any{
		"schedule_id":  scheduleID,
		"migration_id": schedule.MigrationID,
	})
	return nil
}

// List returns a team's scheduled executions
func (s *Scheduler) List(ctx context.Context, teamID string) ([]*entity.ScheduledExecution, error) {
	return s.schedules.ListByTeam(ctx, teamID)
}

// ProcessDue promotes every due PENDING entry into the dispatcher. Each item
// is processed independently: a failing dispatch marks its own entry FAILURE
// and never aborts the remaining queue. One audit event and one notification
// go out per processed item regardless of outcome.
func (s *Scheduler) ProcessDue(ctx context.Context) error {
	due, err := s.schedules.ListDue(ctx, s.timeProvider.Now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	s.logger.Info("Processing due scheduled executions", map[string]any{
		"count": len(due),
	})

	for _, schedule := range due {
		s.processOne(ctx, schedule)
	}
	return nil
}

// processOne claims a due entry, dispatches it and terminalizes it. Losing
// the claim means another tick owns the entry; it is skipped untouched.
func (s *Scheduler) processOne(ctx context.Context, schedule *entity.ScheduledExecution) {
	claimed, err := s.schedules.Claim(ctx, schedule.ID)
	if err != nil {
		s.logger.Error("Failed to claim scheduled execution", map[string]any{
			"schedule_id": schedule.ID,
			"error":       err.Error(),
		})
		return
	}
	if !claimed {
		s.logger.Info("Scheduled execution already claimed, skipping", map[string]any{
			"schedule_id": schedule.ID,
		})
		return
	}

	result, err := s.dispatcher.Execute(ctx, schedule.MigrationID, usecase.ExecuteOptions{
		TeamID:       schedule.TeamID,
		ExecutedByID: schedule.ScheduledByID,
	})

	var succeeded bool
	var errorMessage string
	switch {
	case err != nil:
		errorMessage = err.Error()
	case !result.Success:
		errorMessage = result.Error
	default:
		succeeded = true
	}

	schedule.MarkProcessed(succeeded, errorMessage, s.timeProvider)
	if err := s.schedules.MarkProcessed(ctx, schedule); err != nil {
		s.logger.Error("Failed to terminalize scheduled execution", map[string]any{
			"schedule_id": schedule.ID,
			"error":       err.Error(),
		})
	}

	s.emitter.Emit(ctx, coreport.Event{
		Type:        coreport.EventScheduleProcessed,
		MigrationID: schedule.MigrationID,
		TeamID:      schedule.TeamID,
		ActorID:     schedule.ScheduledByID,
		Metadata: map[string]any{
			"schedule_id": schedule.ID,
			"status":      string(schedule.Status),
			"error":       errorMessage,
		},
	})

	subject := "Scheduled migration executed"
	message := fmt.Sprintf("Migration %s ran as scheduled.", schedule.MigrationID)
	if !succeeded {
		subject = "Scheduled migration failed"
		message = fmt.Sprintf("Migration %s failed: %s", schedule.MigrationID, errorMessage)
	}
	s.notifier.Notify(ctx, schedule.TeamID, subject, message)

	s.logger.Info("Scheduled execution processed", map[string]any{
		"schedule_id":  schedule.ID,
		"migration_id": schedule.MigrationID,
		"status":       string(schedule.Status),
	})
}
