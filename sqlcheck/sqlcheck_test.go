package sqlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsSelect(t *testing.T) {
	cases := []string{
		"SELECT * FROM employees",
		"select name, salary from employees where department = 'IT'",
		"  SELECT department, COUNT(*) FROM employees GROUP BY department;  ",
		"SELECT * FROM projects ORDER BY budget DESC LIMIT 3;",
	}
	for _, sql := range cases {
		v := Validate(sql)
		assert.True(t, v.OK, "expected pass for %q, got %q", sql, v.Reason)
	}
}

func TestValidateRejectsNonSelect(t *testing.T) {
	cases := []string{
		"INSERT INTO employees (name) VALUES ('x')",
		"update employees set salary = 0",
		"DELETE FROM employees",
		"DROP TABLE employees",
		"EXPLAIN QUERY PLAN SELECT 1",
		"WITH x AS (SELECT 1) SELECT * FROM x", // leading keyword is not SELECT
	}
	for _, sql := range cases {
		v := Validate(sql)
		assert.False(t, v.OK, "expected rejection for %q", sql)
		assert.NotEmpty(t, v.Reason)
	}
}

func TestValidateRejectsDenylistedKeywordsInsideSelect(t *testing.T) {
	cases := []string{
		"SELECT 1; DROP TABLE employees;",
		"SELECT * FROM employees WHERE name = x; DELETE FROM employees",
		"SELECT truncate FROM t", // whole word, even as a column name
	}
	for _, sql := range cases {
		v := Validate(sql)
		assert.False(t, v.OK, "expected rejection for %q", sql)
	}
}

func TestValidateAllowsKeywordAsSubstring(t *testing.T) {
	// "updated_at" contains "update" but not as a whole word.
	v := Validate("SELECT updated_at FROM employees")
	assert.True(t, v.OK, v.Reason)
}

func TestValidateRejectsEmptyInput(t *testing.T) {
	for _, sql := range []string{"", "   ", "\n\t"} {
		v := Validate(sql)
		assert.False(t, v.OK)
		assert.NotEmpty(t, v.Reason)
	}
}

func TestValidateRejectsMultipleStatements(t *testing.T) {
	v := Validate("SELECT 1; SELECT 2")
	assert.False(t, v.OK)
	assert.Contains(t, v.Reason, "multiple statements")
}

func TestValidateAllowsTrailingSemicolon(t *testing.T) {
	v := Validate("SELECT * FROM employees;")
	assert.True(t, v.OK, v.Reason)
}
