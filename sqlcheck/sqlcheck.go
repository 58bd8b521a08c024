// Package sqlcheck gates model-generated SQL before execution.
//
// The check is syntactic only: it confirms the text is a single
// SELECT statement and contains no mutating keywords. Column or table
// existence is left to the database; execution errors surface there.
//
// This is a keyword denylist, not a SQL parser. It can over-reject
// (a string literal containing the word "update") and is not a defense
// against a hostile model, only against accidents.
package sqlcheck

import (
	"regexp"
	"strings"
)

// Denylist holds the mutating keywords rejected regardless of position.
var Denylist = []string{"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE", "TRUNCATE"}

// denyRe matches any denylisted keyword as a whole word, case-insensitive.
var denyRe = regexp.MustCompile(`(?i)\b(` + strings.Join(Denylist, "|") + `)\b`)

// Verdict is the validator's pass/fail result with a human-readable reason.
type Verdict struct {
	OK     bool
	Reason string
}

func pass() Verdict {
	return Verdict{OK: true, Reason: "query validation passed"}
}

func fail(reason string) Verdict {
	return Verdict{OK: false, Reason: reason}
}

// Validate checks that the candidate text is a single read-only SELECT
// statement. It never modifies the input; the caller executes the
// original string on a pass verdict.
func Validate(sql string) Verdict {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return fail("empty query")
	}

	if stmts := splitStatements(trimmed); len(stmts) > 1 {
		return fail("multiple statements are not allowed")
	}

	first := leadingKeyword(trimmed)
	if !strings.EqualFold(first, "SELECT") {
		return fail("only SELECT queries are allowed, got " + strings.ToUpper(first))
	}

	if m := denyRe.FindString(trimmed); m != "" {
		return fail("query contains forbidden keyword " + strings.ToUpper(m))
	}

	return pass()
}

// leadingKeyword returns the first whitespace-delimited token.
func leadingKeyword(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimLeft(fields[0], "(")
}

// splitStatements splits on semicolons, dropping empty fragments so a
// single trailing ";" still counts as one statement.
func splitStatements(sql string) []string {
	var stmts []string
	for _, part := range strings.Split(sql, ";") {
		if strings.TrimSpace(part) != "" {
			stmts = append(stmts, part)
		}
	}
	return stmts
}
