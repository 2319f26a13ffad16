package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/dto"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/middleware"
)

// ScheduleHandler handles scheduled execution HTTP requests
type ScheduleHandler struct {
	scheduler usecase.Scheduler
	logger    coreport.Logger
}

// NewScheduleHandler creates a new schedule handler instance
func NewScheduleHandler(scheduler usecase.Scheduler, logger coreport.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduler: scheduler,
		logger:    logger,
	}
}

// Create handles POST /api/v1/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.ScheduleMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	schedule, err := h.scheduler.Schedule(c.Request.Context(), usecase.ScheduleRequest{
		MigrationID:   req.MigrationID,
		ConnectionID:  req.ConnectionID,
		TeamID:        middleware.TeamID(c),
		ScheduledFor:  req.ScheduledFor,
		ScheduledByID: middleware.ActorID(c),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewScheduleResponse(schedule))
}

// List handles GET /api/v1/schedules
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.scheduler.List(c.Request.Context(), middleware.TeamID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.ScheduleResponse, len(schedules))
	for i, s := range schedules {
		responses[i] = dto.NewScheduleResponse(s)
	}
	c.JSON(http.StatusOK, responses)
}

// Cancel handles DELETE /api/v1/schedules/:scheduleId
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	err := h.scheduler.Cancel(c.Request.Context(), c.Param("scheduleId"), middleware.TeamID(c), middleware.ActorID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
