package connection

import (
	"context"
	"fmt"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	coreport "github.com/schemaflow/migration-engine/internal/domain/port/core"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
	"github.com/schemaflow/migration-engine/internal/domain/port/persistence"
	"github.com/schemaflow/migration-engine/internal/domain/port/usecase"
)

// Service manages target database descriptors: registration with password
// encryption, connectivity probes and the advisory ORM detection.
type Service struct {
	connections  persistence.ConnectionRepository
	executors    dbexec.Factory
	cipher       coreport.SecretCipher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a connection service
func NewService(
	connections persistence.ConnectionRepository,
	executors dbexec.Factory,
	cipher coreport.SecretCipher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		connections:  connections,
		executors:    executors,
		cipher:       cipher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create encrypts the password and persists the descriptor. The plaintext
// never reaches the store.
func (s *Service) Create(ctx context.Context, req usecase.CreateConnectionRequest) (*entity.DatabaseConnection, error) {
	encrypted := ""
	if req.Password != "" {
		var err error
		encrypted, err = s.cipher.Encrypt(req.Password)
		if err != nil {
			return nil, fmt.Errorf("encrypting connection secret: %w", err)
		}
	}

	conn, err := entity.NewDatabaseConnection(
		req.TeamID, req.Name, req.Backend,
		req.Host, req.Port,
		req.Database, req.Username, encrypted,
		req.ConnectionURL, req.SSL,
		s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.connections.Create(ctx, conn); err != nil {
		return nil, err
	}

	s.logger.Info("Connection registered", map[string]any{
		"connection_id": conn.ID,
		"name":          conn.Name,
		"backend":       conn.Backend,
	})
	return conn, nil
}

// Get returns a connection owned by the team
func (s *Service) Get(ctx context.Context, teamID, connectionID string) (*entity.DatabaseConnection, error) {
	conn, err := s.connections.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.OwnedBy(teamID) {
		return nil, fmt.Errorf("%w: connection %s", errs.ErrConnectionNotFound, connectionID)
	}
	return conn, nil
}

// List returns a team's connections
func (s *Service) List(ctx context.Context, teamID string) ([]*entity.DatabaseConnection, error) {
	return s.connections.ListByTeam(ctx, teamID)
}

// Test probes connectivity with a short-lived connection and reports latency
func (s *Service) Test(ctx context.Context, teamID, connectionID string) (*dbexec.TestResult, error) {
	cfg, executor, err := s.resolve(ctx, teamID, connectionID)
	if err != nil {
		return nil, err
	}
	return executor.Test(ctx, *cfg)
}

// DetectORMTool runs the advisory catalog probe against the target
func (s *Service) DetectORMTool(ctx context.Context, teamID, connectionID string) (*dbexec.ORMDetection, error) {
	cfg, executor, err := s.resolve(ctx, teamID, connectionID)
	if err != nil {
		return nil, err
	}
	return executor.DetectORMTool(ctx, *cfg)
}

// resolve loads the descriptor, decrypts its secret and picks the executor
func (s *Service) resolve(ctx context.Context, teamID, connectionID string) (*dbexec.ConnectionConfig, dbexec.Executor, error) {
	conn, err := s.Get(ctx, teamID, connectionID)
	if err != nil {
		return nil, nil, err
	}

	password := ""
	if conn.EncryptedPassword != "" {
		password, err = s.cipher.Decrypt(conn.EncryptedPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("decrypting connection secret: %w", err)
		}
	}

	executor, err := s.executors.ExecutorFor(conn.Backend)
	if err != nil {
		return nil, nil, err
	}

	return &dbexec.ConnectionConfig{
		Backend:  conn.Backend,
		Host:     conn.Host,
		Port:     conn.Port,
		Database: conn.Database,
		Username: conn.Username,
		Password: password,
		URL:      conn.ConnectionURL,
		SSL:      conn.SSL,
	}, executor, nil
}
