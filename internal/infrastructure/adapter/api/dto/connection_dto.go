package dto

import (
	"time"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

// CreateConnectionRequest represents the API request for registering a
// target database. The password never appears in any response.
type CreateConnectionRequest struct {
	Name          string `json:"name" binding:"required"`
	Backend       string `json:"backend" binding:"required,oneof=POSTGRES MYSQL SQLITE"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	Database      string `json:"database"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	ConnectionURL string `json:"connectionUrl"`
	SSL           bool   `json:"ssl"`
}

// ConnectionResponse represents a target database descriptor
type ConnectionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Backend   string    `json:"backend"`
	Host      string    `json:"host,omitempty"`
	Port      int       `json:"port,omitempty"`
	Database  string    `json:"database,omitempty"`
	Username  string    `json:"username,omitempty"`
	SSL       bool      `json:"ssl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewConnectionResponse maps a connection entity to its API representation
func NewConnectionResponse(c *entity.DatabaseConnection) ConnectionResponse {
	return ConnectionResponse{
		ID:        c.ID,
		Name:      c.Name,
		Backend:   string(c.Backend),
		Host:      c.Host,
		Port:      c.Port,
		Database:  c.Database,
		Username:  c.Username,
		SSL:       c.SSL,
		CreatedAt: c.CreatedAt,
	}
}

// TestConnectionResponse reports a connectivity probe
type TestConnectionResponse struct {
	OK        bool  `json:"ok"`
	LatencyMs int64 `json:"latencyMs"`
}

// NewTestConnectionResponse maps a probe result
func NewTestConnectionResponse(r *dbexec.TestResult) TestConnectionResponse {
	return TestConnectionResponse{
		OK:        r.OK,
		LatencyMs: r.Latency.Milliseconds(),
	}
}

// DetectORMResponse reports the advisory migration tooling classification
type DetectORMResponse struct {
	Kind       string   `json:"kind"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence,omitempty"`
}

// NewDetectORMResponse maps a detection result
func NewDetectORMResponse(d *dbexec.ORMDetection) DetectORMResponse {
	return DetectORMResponse{
		Kind:       string(d.Kind),
		Confidence: d.Confidence,
		Evidence:   d.Evidence,
	}
}
