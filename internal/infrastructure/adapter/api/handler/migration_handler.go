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

// MigrationHandler handles migration lifecycle HTTP requests
type MigrationHandler struct {
	migrations usecase.MigrationUseCase
	dispatcher usecase.ExecutionDispatcher
	rollbacks  usecase.RollbackEngine
	logger     coreport.Logger
}

// NewMigrationHandler creates a new migration handler instance
func NewMigrationHandler(
	migrations usecase.MigrationUseCase,
	dispatcher usecase.ExecutionDispatcher,
	rollbacks usecase.RollbackEngine,
	logger coreport.Logger,
) *MigrationHandler {
	return &MigrationHandler{
		migrations: migrations,
		dispatcher: dispatcher,
		rollbacks:  rollbacks,
		logger:     logger,
	}
}

// Create handles POST /api/v1/migrations
func (h *MigrationHandler) Create(c *gin.Context) {
	var req dto.CreateMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	migration, err := h.migrations.Create(c.Request.Context(), usecase.CreateMigrationRequest{
		TeamID:       middleware.TeamID(c),
		ConnectionID: req.ConnectionID,
		CreatedByID:  middleware.ActorID(c),
		Name:         req.Name,
		Kind:         req.Kind,
		Content:      req.Content,
		Description:  req.Description,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMigrationResponse(migration))
}

// List handles GET /api/v1/migrations
func (h *MigrationHandler) List(c *gin.Context) {
	migrations, err := h.migrations.List(c.Request.Context(), middleware.TeamID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.MigrationResponse, len(migrations))
	for i, m := range migrations {
		responses[i] = dto.NewMigrationResponse(m)
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles GET /api/v1/migrations/:migrationId
func (h *MigrationHandler) Get(c *gin.Context) {
	migration, err := h.migrations.Get(c.Request.Context(), middleware.TeamID(c), c.Param("migrationId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMigrationResponse(migration))
}

// History handles GET /api/v1/migrations/:migrationId/history
func (h *MigrationHandler) History(c *gin.Context) {
	executions, err := h.migrations.History(c.Request.Context(), middleware.TeamID(c), c.Param("migrationId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExecutionLogResponse(executions))
}

// Execute handles POST /api/v1/migrations/:migrationId/execute
func (h *MigrationHandler) Execute(c *gin.Context) {
	var req dto.ExecuteMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.dispatcher.Execute(c.Request.Context(), c.Param("migrationId"), usecase.ExecuteOptions{
		TeamID:       middleware.TeamID(c),
		Checksum:     req.Checksum,
		DryRun:       req.DryRun,
		ExecutedByID: middleware.ActorID(c),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExecutionResponse(result))
}

// Rollback handles POST /api/v1/migrations/:migrationId/rollback
func (h *MigrationHandler) Rollback(c *gin.Context) {
	var req dto.RollbackMigrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.rollbacks.Rollback(c.Request.Context(), c.Param("migrationId"), usecase.RollbackOptions{
		TeamID:         middleware.TeamID(c),
		Force:          req.Force,
		Reason:         req.Reason,
		CreateBackup:   req.CreateBackup,
		RolledBackByID: middleware.ActorID(c),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRollbackResponse(result))
}

// CanRollback handles GET /api/v1/migrations/:migrationId/can-rollback
func (h *MigrationHandler) CanRollback(c *gin.Context) {
	force := c.Query("force") == "true"

	eligible, err := h.rollbacks.CanRollback(c.Request.Context(), middleware.TeamID(c), c.Param("migrationId"), force)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CanRollbackResponse{Eligible: eligible})
}
