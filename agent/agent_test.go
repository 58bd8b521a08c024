package agent

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdb/askdb/db"
)

// scriptedProvider returns fixed responses so the pipeline can be
// exercised without a network.
type scriptedProvider struct {
	sql          string
	sqlErr       error
	answer       string
	answerErr    error
	formatCalled bool
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) GenerateSQL(ctx context.Context, schemaContext, question string) (string, error) {
	return p.sql, p.sqlErr
}

func (p *scriptedProvider) FormatAnswer(ctx context.Context, question, sql, results string) (string, error) {
	p.formatCalled = true
	return p.answer, p.answerErr
}

func newTestAgent(t *testing.T, p *scriptedProvider) *Agent {
	t.Helper()
	store, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return New(store, p)
}

func TestAskAnswersGroupByQuestion(t *testing.T) {
	p := &scriptedProvider{
		sql:    "```sql\nSELECT department, COUNT(*) FROM employees GROUP BY department\n```",
		answer: "There are four departments.",
	}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "How many employees work in each department?")

	assert.Equal(t, OutcomeAnswered, turn.Outcome)
	assert.True(t, turn.Valid)
	assert.Equal(t, "SELECT department, COUNT(*) FROM employees GROUP BY department", turn.GeneratedSQL)
	require.NotNil(t, turn.Result)
	assert.Equal(t, 4, turn.Result.RowCount, "one row per distinct seed department")
	assert.Equal(t, "There are four departments.", turn.Answer)
}

func TestAskRejectsMutatingSQLBeforeExecution(t *testing.T) {
	p := &scriptedProvider{sql: "SELECT 1; DROP TABLE employees;"}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "wipe everything")

	assert.Equal(t, OutcomeRejected, turn.Outcome)
	assert.False(t, turn.Valid)
	assert.NotEmpty(t, turn.Reason)
	assert.Nil(t, turn.Result, "rejected SQL must never reach the executor")
	assert.False(t, p.formatCalled)
	assert.Contains(t, turn.Answer, "I can't run that query")

	// The table must still be intact.
	count, err := a.store.QueryValue(context.Background(), "SELECT COUNT(*) FROM employees")
	require.NoError(t, err)
	assert.Equal(t, "8", count)
}

func TestAskRejectsEmptyGeneratedSQL(t *testing.T) {
	p := &scriptedProvider{sql: "   "}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "hello?")

	assert.Equal(t, OutcomeRejected, turn.Outcome)
	assert.NotEmpty(t, turn.Reason)
	assert.Nil(t, turn.Result)
	assert.False(t, p.formatCalled)
}

func TestAskFailsOnGeneratorError(t *testing.T) {
	p := &scriptedProvider{sqlErr: errors.New("model unavailable")}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "anything")

	assert.Equal(t, OutcomeFailed, turn.Outcome)
	assert.Contains(t, turn.Answer, "could not generate")
	assert.False(t, p.formatCalled)
}

func TestAskFailsOnExecutionError(t *testing.T) {
	// Passes validation but references a missing column.
	p := &scriptedProvider{sql: "SELECT bogus_column FROM employees"}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "show me the bogus data")

	assert.Equal(t, OutcomeFailed, turn.Outcome)
	assert.True(t, turn.Valid, "the denylist gate does not check columns")
	assert.Contains(t, turn.Answer, "query execution failed")
	assert.False(t, p.formatCalled)
}

func TestAskFailsOnFormatterError(t *testing.T) {
	p := &scriptedProvider{
		sql:       "SELECT name FROM employees LIMIT 1",
		answerErr: errors.New("model unavailable"),
	}
	a := newTestAgent(t, p)

	turn := a.Ask(context.Background(), "who is first?")

	assert.Equal(t, OutcomeFailed, turn.Outcome)
	assert.NotNil(t, turn.Result, "execution succeeded before formatting failed")
	assert.Contains(t, turn.Answer, "could not format")
}

func TestSchemaInfo(t *testing.T) {
	a := newTestAgent(t, &scriptedProvider{})

	info, err := a.SchemaInfo(context.Background())
	require.NoError(t, err)
	assert.Contains(t, info, "Table: employees")
}
