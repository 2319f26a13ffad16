package execution

import (
	"strings"

	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

// ddlKeywords are the statement heads the dry-run preview reports on.
// The preview is a lightweight static scan, not a parser.
var ddlKeywords = []string{
	"CREATE TABLE",
	"CREATE INDEX",
	"CREATE UNIQUE INDEX",
	"ALTER TABLE",
	"DROP TABLE",
	"DROP INDEX",
	"TRUNCATE",
	"RENAME",
}

// previewStatements produces the dry-run summary: one line per statement,
// flagging recognized DDL. It never touches a database.
func previewStatements(content string) []string {
	var preview []string
	for _, stmt := range dbexec.SplitStatements(content) {
		upper := strings.ToUpper(stmt)
		matched := false
		for _, keyword := range ddlKeywords {
			if strings.HasPrefix(upper, keyword) {
				preview = append(preview, "DDL "+keyword+": "+firstLine(stmt))
				matched = true
				break
			}
		}
		if !matched {
			preview = append(preview, "SQL: "+firstLine(stmt))
		}
	}
	return preview
}

func firstLine(stmt string) string {
	if idx := strings.IndexByte(stmt, '\n'); idx >= 0 {
		return strings.TrimSpace(stmt[:idx]) + " ..."
	}
	return stmt
}
