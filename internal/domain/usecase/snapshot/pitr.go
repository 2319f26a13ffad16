package snapshot

import (
	"strings"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// providerSignature recognizes a managed-database host pattern and its
// native point-in-time-recovery story. Informational only; the engine never
// invokes any of this.
type providerSignature struct {
	hostSuffix   string
	provider     string
	supported    bool
	instructions string
}

var providerSignatures = []providerSignature{
	{
		hostSuffix:   ".rds.amazonaws.com",
		provider:     "AWS RDS",
		supported:    true,
		instructions: "Enable automated backups on the instance; restore with `aws rds restore-db-instance-to-point-in-time` to any second within the retention window.",
	},
	{
		hostSuffix:   ".supabase.co",
		provider:     "Supabase",
		supported:    true,
		instructions: "PITR is available on Pro plans and above; enable it under Database > Backups, then restore from the dashboard or the management API.",
	},
	{
		hostSuffix:   ".neon.tech",
		provider:     "Neon",
		supported:    true,
		instructions: "Neon keeps a shared history window; create a branch from any timestamp inside it with `neon branches create --parent-timestamp`.",
	},
	{
		hostSuffix:   ".sql.goog",
		provider:     "Google Cloud SQL",
		supported:    true,
		instructions: "Enable automated backups and point-in-time recovery on the instance, then restore with `gcloud sql instances clone --point-in-time`.",
	},
	{
		hostSuffix:   ".db.ondigitalocean.com",
		provider:     "DigitalOcean Managed Databases",
		supported:    true,
		instructions: "Daily backups plus WAL allow restore-to-timestamp via the control panel or `doctl databases` within the 7-day window.",
	},
	{
		hostSuffix:   ".postgres.database.azure.com",
		provider:     "Azure Database for PostgreSQL",
		supported:    true,
		instructions: "Flexible Server keeps PITR backups for the configured retention period; restore to a new server from the Azure portal or CLI.",
	},
	{
		hostSuffix:   ".mysql.database.azure.com",
		provider:     "Azure Database for MySQL",
		supported:    true,
		instructions: "Flexible Server supports PITR within the backup retention period; restore creates a new server at the chosen timestamp.",
	},
}

// providerCapability classifies a connection by host signature. SQLite never
// supports PITR (file-level copies are the only recovery path), and unknown
// hosts are reported as self-managed.
func providerCapability(conn *entity.DatabaseConnection) *entity.PITRCapability {
	if conn.Backend == entity.BackendSQLite {
		return &entity.PITRCapability{
			Provider:     "SQLite",
			Supported:    false,
			Instructions: "SQLite has no native PITR; keep file-level copies or use the engine's snapshots before destructive migrations.",
		}
	}

	host := strings.ToLower(conn.Host)
	if conn.ConnectionURL != "" {
		host = strings.ToLower(hostFromURL(conn.ConnectionURL))
	}

	for _, sig := range providerSignatures {
		if strings.HasSuffix(host, sig.hostSuffix) {
			return &entity.PITRCapability{
				Provider:     sig.provider,
				Supported:    sig.supported,
				Instructions: sig.instructions,
			}
		}
	}

	return &entity.PITRCapability{
		Provider:     "self-managed",
		Supported:    false,
		Instructions: "No managed PITR signature recognized; configure WAL archiving (Postgres) or binlog retention (MySQL) yourself, or rely on the engine's snapshots.",
	}
}

// hostFromURL pulls the host out of a connection URL without a full parse
func hostFromURL(url string) string {
	rest := url
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.LastIndex(rest, "@"); idx >= 0 {
		rest = rest[idx+1:]
	}
	for _, sep := range []string{"/", "?"} {
		if idx := strings.Index(rest, sep); idx >= 0 {
			rest = rest[:idx]
		}
	}
	if idx := strings.LastIndex(rest, ":"); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
