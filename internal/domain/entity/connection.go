package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/schemaflow/migration-engine/internal/domain/error"
	tport "github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// BackendKind identifies the database engine a connection points at
type BackendKind string

// Supported target backends
const (
	BackendPostgres BackendKind = "POSTGRES"
	BackendMySQL    BackendKind = "MYSQL"
	BackendSQLite   BackendKind = "SQLITE"
)

// IsValid reports whether the backend kind is supported
func (b BackendKind) IsValid() bool {
	return b == BackendPostgres || b == BackendMySQL || b == BackendSQLite
}

// DatabaseConnection is a reusable, named credential and endpoint descriptor
// shared by many migrations. Password is stored encrypted and only decrypted
// at the execution boundary.
type DatabaseConnection struct {
	ID                string
	Name              string
	Backend           BackendKind
	Host              string
	Port              int
	Database          string
	Username          string
	EncryptedPassword string
	ConnectionURL     string // optional direct URL, takes precedence when set
	SSL               bool
	TeamID            string
	CreatedAt         time.Time
}

// NewDatabaseConnection validates and builds a connection descriptor.
// The password must already be encrypted by the caller.
func NewDatabaseConnection(
	teamID, name string,
	backend string,
	host string, port int,
	database, username, encryptedPassword string,
	connectionURL string,
	ssl bool,
	timeProvider tport.TimeProvider,
) (*DatabaseConnection, error) {
	if teamID == "" {
		return nil, fmt.Errorf("%w: team is required", errs.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: connection name is required", errs.ErrValidation)
	}

	b := BackendKind(backend)
	if !b.IsValid() {
		return nil, fmt.Errorf("%w: unsupported backend %q", errs.ErrValidation, backend)
	}

	// SQLite needs only a database path; the others need an endpoint or a URL
	if b != BackendSQLite && connectionURL == "" && host == "" {
		return nil, fmt.Errorf("%w: host or connection URL is required", errs.ErrValidation)
	}
	if database == "" {
		return nil, fmt.Errorf("%w: database name is required", errs.ErrValidation)
	}

	return &DatabaseConnection{
		ID:                uuid.NewString(),
		Name:              name,
		Backend:           b,
		Host:              host,
		Port:              port,
		Database:          database,
		Username:          username,
		EncryptedPassword: encryptedPassword,
		ConnectionURL:     connectionURL,
		SSL:               ssl,
		TeamID:            teamID,
		CreatedAt:         timeProvider.Now(),
	}, nil
}

// OwnedBy reports whether the connection belongs to the given team
func (c *DatabaseConnection) OwnedBy(teamID string) bool {
	return c.TeamID == teamID
}
