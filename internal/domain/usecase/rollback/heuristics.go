package rollback

import (
	"regexp"
	"strings"

	"github.com/schemaflow/migration-engine/internal/domain/entity"
)

// Reversal synthesis is an explicitly best-effort, text-scanning heuristic.
// It refuses rather than guesses: a forward DROP TABLE makes the whole
// reversal undecidable, because recreating the dropped table's exact prior
// shape needs a snapshot, not text. Callers must never treat the output as
// guaranteed-correct.

var (
	createTableRe = regexp.MustCompile(`(?i)^\s*CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?([^\s(;]+)`)
	alterAddRe    = regexp.MustCompile(`(?i)^\s*ALTER\s+TABLE\s+([^\s;]+)\s+ADD\s+(?:COLUMN\s+)?(?:IF\s+NOT\s+EXISTS\s+)?([^\s;(]+)`)
	dropTableRe   = regexp.MustCompile(`(?i)\bDROP\s+TABLE\b`)
	alterTableRe  = regexp.MustCompile(`(?i)^\s*ALTER\s+TABLE\s+([^\s;]+)`)
	dropTableNmRe = regexp.MustCompile(`(?i)^\s*DROP\s+TABLE\s+(?:IF\s+EXISTS\s+)?([^\s;]+)`)
	dmlTableRe    = regexp.MustCompile(`(?i)^\s*(?:INSERT\s+INTO|UPDATE|DELETE\s+FROM)\s+([^\s;(]+)`)

	rollbackHints = []string{"rollback", "drop", "alter"}
)

// Derivation is the outcome of reversal synthesis
type Derivation struct {
	// Statements are the reverse statements in forward order: the reverse of
	// the first forward statement comes first. Documented choice, matching
	// the order the forward content names its objects.
	Statements []string
	// Undecidable is true when a forward DROP TABLE made reversal impossible
	// to derive; Statements is empty in that case
	Undecidable bool
	// Partial is true when some forward statements had no derivable reverse
	Partial bool
}

// SQL joins the derived statements, one per line. Empty when nothing could
// be derived.
func (d *Derivation) SQL() string {
	return strings.Join(d.Statements, "\n")
}

// DeriveRollbackSQL scans forward SQL and synthesizes best-effort reversal
// statements:
//
//	CREATE TABLE t ...             -> DROP TABLE IF EXISTS t;
//	ALTER TABLE t ADD COLUMN c ... -> ALTER TABLE t DROP COLUMN IF EXISTS c;
//	DROP TABLE ... anywhere        -> undecidable, no SQL
func DeriveRollbackSQL(content string) *Derivation {
	if dropTableRe.MatchString(stripLineComments(content)) {
		return &Derivation{Undecidable: true}
	}

	d := &Derivation{}
	for _, stmt := range splitStatements(content) {
		switch {
		case createTableRe.MatchString(stmt):
			table := cleanIdentifier(createTableRe.FindStringSubmatch(stmt)[1])
			d.Statements = append(d.Statements, "DROP TABLE IF EXISTS "+table+";")
		case alterAddRe.MatchString(stmt):
			m := alterAddRe.FindStringSubmatch(stmt)
			table, column := cleanIdentifier(m[1]), cleanIdentifier(m[2])
			d.Statements = append(d.Statements, "ALTER TABLE "+table+" DROP COLUMN IF EXISTS "+column+";")
		default:
			d.Partial = true
		}
	}
	return d
}

// EligibleWithoutForce applies the conservative auto-rollback gate: ORM-tool
// migrations never qualify (no reliable down-migration without re-running the
// originating tool), and raw SQL qualifies only when its content textually
// suggests reversibility.
func EligibleWithoutForce(kind entity.MigrationKind, content string) bool {
	if kind.IsORMTool() {
		return false
	}
	lower := strings.ToLower(content)
	for _, hint := range rollbackHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// AffectedTables lists the table names the content touches, in first-mention
// order without duplicates. Covers DDL plus common DML forms.
func AffectedTables(content string) []string {
	var tables []string
	seen := map[string]bool{}

	add := func(raw string) {
		name := cleanIdentifier(raw)
		if name != "" && !seen[name] {
			seen[name] = true
			tables = append(tables, name)
		}
	}

	for _, stmt := range splitStatements(content) {
		for _, re := range []*regexp.Regexp{createTableRe, alterTableRe, dropTableNmRe, dmlTableRe} {
			if m := re.FindStringSubmatch(stmt); m != nil {
				add(m[1])
				break
			}
		}
	}
	return tables
}

// splitStatements breaks content on statement boundaries. Good enough for
// the heuristic's purposes; the execution path uses the dbexec splitter.
func splitStatements(content string) []string {
	var statements []string
	for _, part := range strings.Split(stripLineComments(content), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// stripLineComments drops `-- ...` comment tails so commented-out SQL cannot
// trip the keyword scan
func stripLineComments(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// cleanIdentifier strips quoting and trailing punctuation from a parsed name
func cleanIdentifier(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.Trim(name, "`\"'")
	name = strings.TrimSuffix(name, "(")
	return strings.Trim(name, "`\"'")
}
