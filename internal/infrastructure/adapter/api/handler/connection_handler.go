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

// ConnectionHandler handles target database HTTP requests
type ConnectionHandler struct {
	connections usecase.ConnectionUseCase
	logger      coreport.Logger
}

// NewConnectionHandler creates a new connection handler instance
func NewConnectionHandler(connections usecase.ConnectionUseCase, logger coreport.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		connections: connections,
		logger:      logger,
	}
}

// Create handles POST /api/v1/connections
func (h *ConnectionHandler) Create(c *gin.Context) {
	var req dto.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrValidation),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	connection, err := h.connections.Create(c.Request.Context(), usecase.CreateConnectionRequest{
		TeamID:        middleware.TeamID(c),
		Name:          req.Name,
		Backend:       req.Backend,
		Host:          req.Host,
		Port:          req.Port,
		Database:      req.Database,
		Username:      req.Username,
		Password:      req.Password,
		ConnectionURL: req.ConnectionURL,
		SSL:           req.SSL,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewConnectionResponse(connection))
}

// List handles GET /api/v1/connections
func (h *ConnectionHandler) List(c *gin.Context) {
	connections, err := h.connections.List(c.Request.Context(), middleware.TeamID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.ConnectionResponse, len(connections))
	for i, conn := range connections {
		responses[i] = dto.NewConnectionResponse(conn)
	}
	c.JSON(http.StatusOK, responses)
}

// Get handles GET /api/v1/connections/:connectionId
func (h *ConnectionHandler) Get(c *gin.Context) {
	connection, err := h.connections.Get(c.Request.Context(), middleware.TeamID(c), c.Param("connectionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewConnectionResponse(connection))
}

// Test handles POST /api/v1/connections/:connectionId/test
func (h *ConnectionHandler) Test(c *gin.Context) {
	result, err := h.connections.Test(c.Request.Context(), middleware.TeamID(c), c.Param("connectionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestConnectionResponse(result))
}

// DetectORM handles POST /api/v1/connections/:connectionId/detect-orm
func (h *ConnectionHandler) DetectORM(c *gin.Context) {
	detection, err := h.connections.DetectORMTool(c.Request.Context(), middleware.TeamID(c), c.Param("connectionId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDetectORMResponse(detection))
}
