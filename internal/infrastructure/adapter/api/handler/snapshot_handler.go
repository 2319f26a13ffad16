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

// SnapshotHandler handles recoverability snapshot HTTP requests
type SnapshotHandler struct {
	snapshots usecase.SnapshotService
	logger    coreport.Logger
}

// NewSnapshotHandler creates a new snapshot handler instance
func NewSnapshotHandler(snapshots usecase.SnapshotService, logger coreport.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Create handles POST /api/v1/migrations/:migrationId/snapshot
func (h *SnapshotHandler) Create(c *gin.Context) {
	var req dto.CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	snapshot, err := h.snapshots.CreateAndPersist(
		c.Request.Context(),
		middleware.TeamID(c),
		c.Param("migrationId"),
		middleware.ActorID(c),
		req.CapturePreState,
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSnapshotResponse(snapshot))
}

// Preview handles GET /api/v1/migrations/:migrationId/snapshot/preview.
// It derives the snapshot descriptor without persisting anything.
func (h *SnapshotHandler) Preview(c *gin.Context) {
	snapshot, err := h.snapshots.Derive(c.Request.Context(), middleware.TeamID(c), c.Param("migrationId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSnapshotResponse(snapshot))
}

// Get handles GET /api/v1/migrations/:migrationId/snapshot
func (h *SnapshotHandler) Get(c *gin.Context) {
	snapshot, err := h.snapshots.Get(c.Request.Context(), middleware.TeamID(c), c.Param("migrationId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSnapshotResponse(snapshot))
}

// ProviderCapability handles GET /api/v1/connections/:connectionId/pitr
func (h *SnapshotHandler) ProviderCapability(c *gin.Context) {
	capability, err := h.snapshots.ProviderCapability(c.Request.Context(), middleware.TeamID(c), c.Param("connectionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPITRCapabilityResponse(capability))
}
