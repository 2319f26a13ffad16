package dbexec

import "strings"

// SplitStatements breaks a SQL batch on statement boundaries. It respects
// single/double-quoted strings, line comments and block comments, so a
// semicolon inside a literal does not split. Dollar-quoted bodies are not
// handled; migrations carrying procedural blocks should ship one statement.
func SplitStatements(batch string) []string {
	var (
		statements []string
		current    strings.Builder
		inSingle   bool
		inDouble   bool
		inLineCmt  bool
		inBlockCmt bool
	)

	runes := []rune(batch)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case inLineCmt:
			if ch == '\n' {
				inLineCmt = false
				current.WriteRune(ch)
			}
			continue
		case inBlockCmt:
			if ch == '*' && next == '/' {
				inBlockCmt = false
				i++
			}
			continue
		case inSingle:
			current.WriteRune(ch)
			if ch == '\'' {
				inSingle = false
			}
			continue
		case inDouble:
			current.WriteRune(ch)
			if ch == '"' {
				inDouble = false
			}
			continue
		}

		switch {
		case ch == '-' && next == '-':
			inLineCmt = true
			i++
		case ch == '/' && next == '*':
			inBlockCmt = true
			i++
		case ch == '\'':
			inSingle = true
			current.WriteRune(ch)
		case ch == '"':
			inDouble = true
			current.WriteRune(ch)
		case ch == ';':
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
