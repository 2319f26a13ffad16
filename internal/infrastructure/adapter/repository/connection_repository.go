package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ConnectionRepository implements persistence.ConnectionRepository using GORM
type ConnectionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewConnectionRepository creates a new ConnectionRepository instance
func NewConnectionRepository(db *gorm.DB, logger coreport.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func connectionToModel(c *entity.DatabaseConnection) *model.DatabaseConnection {
	return &model.DatabaseConnection{
		ID:                c.ID,
		Name:              c.Name,
		Backend:           string(c.Backend),
		Host:              c.Host,
		Port:              c.Port,
		Database:          c.Database,
		Username:          c.Username,
		EncryptedPassword: c.EncryptedPassword,
		ConnectionURL:     c.ConnectionURL,
		SSL:               c.SSL,
		TeamID:            c.TeamID,
		CreatedAt:         c.CreatedAt,
	}
}

func connectionToEntity(c *model.DatabaseConnection) *entity.DatabaseConnection {
	return &entity.DatabaseConnection{
		ID:                c.ID,
		Name:              c.Name,
		Backend:           entity.BackendKind(c.Backend),
		Host:              c.Host,
		Port:              c.Port,
		Database:          c.Database,
		Username:          c.Username,
		EncryptedPassword: c.EncryptedPassword,
		ConnectionURL:     c.ConnectionURL,
		SSL:               c.SSL,
		TeamID:            c.TeamID,
		CreatedAt:         c.CreatedAt,
	}
}

func (r *ConnectionRepository) handleDatabaseError(operation string, err error, connectionID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", errs.ErrConnectionNotFound, connectionID)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"connection_id": connectionID,
		"error":         err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: connection %s already exists", errs.ErrValidation, connectionID)
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new connection descriptor
func (r *ConnectionRepository) Create(ctx context.Context, conn *entity.DatabaseConnection) error {
	if err := r.db.WithContext(ctx).Create(connectionToModel(conn)).Error; err != nil {
		return r.handleDatabaseError("creating connection", err, conn.ID)
	}
	return nil
}

// GetByID retrieves a connection by ID
func (r *ConnectionRepository) GetByID(ctx context.Context, id string) (*entity.DatabaseConnection, error) {
	var c model.DatabaseConnection
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, r.handleDatabaseError("getting connection", err, id)
	}
	return connectionToEntity(&c), nil
}

// ListByTeam returns a team's connections
func (r *ConnectionRepository) ListByTeam(ctx context.Context, teamID string) ([]*entity.DatabaseConnection, error) {
	var cs []model.DatabaseConnection
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&cs).Error; err != nil {
		return nil, r.handleDatabaseError("listing connections", err, "")
	}

	conns := make([]*entity.DatabaseConnection, len(cs))
	for i := range cs {
		conns[i] = connectionToEntity(&cs[i])
	}
	return conns, nil
}
