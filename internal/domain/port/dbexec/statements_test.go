package dbexec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schemaflow/migration-engine/internal/domain/port/dbexec"
)

func TestSplitStatements(t *testing.T) {
	t.Run("Splits on semicolons and trims whitespace", func(t *testing.T) {
		got := dbexec.SplitStatements("CREATE TABLE a (id INT);\n\nCREATE TABLE b (id INT);")
		assert.Equal(t, []string{
			"CREATE TABLE a (id INT)",
			"CREATE TABLE b (id INT)",
		}, got)
	})

	t.Run("Trailing statement without semicolon is kept", func(t *testing.T) {
		got := dbexec.SplitStatements("SELECT 1; SELECT 2")
		assert.Equal(t, []string{"SELECT 1", "SELECT 2"}, got)
	})

	t.Run("Semicolon inside a single-quoted literal does not split", func(t *testing.T) {
		got := dbexec.SplitStatements("INSERT INTO t (v) VALUES ('a;b');")
		assert.Equal(t, []string{"INSERT INTO t (v) VALUES ('a;b')"}, got)
	})

	t.Run("Semicolon inside a double-quoted identifier does not split", func(t *testing.T) {
		got := dbexec.SplitStatements(`ALTER TABLE "weird;name" ADD COLUMN c INT;`)
		assert.Equal(t, []string{`ALTER TABLE "weird;name" ADD COLUMN c INT`}, got)
	})

	t.Run("Line comments are dropped", func(t *testing.T) {
		got := dbexec.SplitStatements("-- DROP TABLE users;\nSELECT 1;")
		assert.Equal(t, []string{"SELECT 1"}, got)
	})

	t.Run("Block comments are dropped", func(t *testing.T) {
		got := dbexec.SplitStatements("/* setup; teardown */ SELECT 1;")
		assert.Equal(t, []string{"SELECT 1"}, got)
	})

	t.Run("Empty and comment-only content yields no statements", func(t *testing.T) {
		assert.Empty(t, dbexec.SplitStatements(""))
		assert.Empty(t, dbexec.SplitStatements("   \n  "))
		assert.Empty(t, dbexec.SplitStatements("-- nothing here\n/* or here */"))
	})
}
