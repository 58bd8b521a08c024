package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSQLFromSQLFence(t *testing.T) {
	response := "Here is the query:\n```sql\nSELECT * FROM employees;\n```\nLet me know if you need more."
	assert.Equal(t, "SELECT * FROM employees;", ExtractSQL(response))
}

func TestExtractSQLFromBareFence(t *testing.T) {
	response := "```\nSELECT name FROM departments\n```"
	assert.Equal(t, "SELECT name FROM departments", ExtractSQL(response))
}

func TestExtractSQLPassesThroughPlainText(t *testing.T) {
	assert.Equal(t, "SELECT 1;", ExtractSQL("  SELECT 1;\n"))
	assert.Equal(t, "", ExtractSQL("   "))
}

func TestExtractSQLUnclosedFence(t *testing.T) {
	// An unclosed fence falls back to the raw text; the validator
	// rejects it downstream.
	response := "```sql\nSELECT 1"
	assert.Equal(t, response, ExtractSQL(response))
}
