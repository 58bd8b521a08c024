// Package agent sequences the question pipeline: get schema, generate
// SQL, validate, execute, format the answer.
//
// Design decisions:
//   - Each question produces a fresh immutable Turn record that is
//     filled in step by step, so every step is testable with literal
//     inputs and no cross-turn state exists.
//   - The sequence is strictly linear with early termination: a
//     validation failure or execution error ends the turn and reports
//     its reason; neither is fatal to the process.
package agent

import (
	"context"
	"fmt"

	"github.com/askdb/askdb/ai"
	"github.com/askdb/askdb/applog"
	"github.com/askdb/askdb/db"
	"github.com/askdb/askdb/sqlcheck"
)

// Outcome names the terminal state of a turn.
type Outcome string

const (
	// OutcomeAnswered means the full pipeline ran and produced an answer.
	OutcomeAnswered Outcome = "answered"
	// OutcomeRejected means the validator refused the generated SQL.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFailed means SQL generation, execution, or answer
	// formatting returned an error.
	OutcomeFailed Outcome = "failed"
)

// Turn carries the accumulated state of one question-to-answer cycle.
type Turn struct {
	Question      string          `json:"question"`
	SchemaContext string          `json:"-"`
	GeneratedSQL  string          `json:"generated_sql"`
	Valid         bool            `json:"valid"`
	Reason        string          `json:"reason"`
	Result        *db.QueryResult `json:"result,omitempty"`
	Answer        string          `json:"answer"`
	Outcome       Outcome         `json:"outcome"`
}

// Agent wires the schema store and the AI provider into the pipeline.
type Agent struct {
	store    *db.Store
	provider ai.Provider
}

// New creates an agent over an open store and a configured provider.
func New(store *db.Store, provider ai.Provider) *Agent {
	return &Agent{store: store, provider: provider}
}

// Provider exposes the provider name for display.
func (a *Agent) Provider() string {
	return a.provider.Name()
}

// SchemaInfo returns the schema text shown at startup and in the web UI.
func (a *Agent) SchemaInfo(ctx context.Context) (string, error) {
	return a.store.SchemaInfo(ctx, "")
}

// Ask runs one question through the five-step pipeline. The returned
// Turn is always usable: on rejection or failure its Answer holds the
// user-facing message and Outcome says which terminal state was hit.
func (a *Agent) Ask(ctx context.Context, question string) *Turn {
	turn := &Turn{Question: question}

	// Step 1: schema context.
	schemaContext, err := a.store.SchemaInfo(ctx, "")
	if err != nil {
		return turn.fail(fmt.Sprintf("could not read database schema: %v", err))
	}
	turn.SchemaContext = schemaContext

	// Step 2: generate SQL.
	ai.LogRequest("GenerateSQL", a.provider.Name(), map[string]string{
		"Question": question,
		"Schema":   schemaContext,
	})
	raw, err := a.provider.GenerateSQL(ctx, schemaContext, question)
	ai.LogResponse("GenerateSQL", raw, err)
	if err != nil {
		return turn.fail(fmt.Sprintf("the language model could not generate a query: %v", err))
	}
	turn.GeneratedSQL = ai.ExtractSQL(raw)

	// Step 3: validate.
	verdict := sqlcheck.Validate(turn.GeneratedSQL)
	turn.Valid = verdict.OK
	turn.Reason = verdict.Reason
	if !verdict.OK {
		turn.Outcome = OutcomeRejected
		turn.Answer = "I can't run that query: " + verdict.Reason
		applog.Turn(string(turn.Outcome), question, turn.GeneratedSQL)
		return turn
	}

	// Step 4: execute.
	result, err := a.store.Query(ctx, turn.GeneratedSQL)
	if err != nil {
		return turn.fail(fmt.Sprintf("query execution failed: %v", err))
	}
	turn.Result = result

	// Step 5: format the answer.
	ai.LogRequest("FormatAnswer", a.provider.Name(), map[string]string{
		"Question": question,
		"SQL":      turn.GeneratedSQL,
		"Results":  result.Table(),
	})
	answer, err := a.provider.FormatAnswer(ctx, question, turn.GeneratedSQL, result.Table())
	ai.LogResponse("FormatAnswer", answer, err)
	if err != nil {
		return turn.fail(fmt.Sprintf("the language model could not format the answer: %v", err))
	}

	turn.Answer = answer
	turn.Outcome = OutcomeAnswered
	applog.Turn(string(turn.Outcome), question, turn.GeneratedSQL)
	return turn
}

func (t *Turn) fail(msg string) *Turn {
	t.Outcome = OutcomeFailed
	t.Answer = msg
	applog.Turn(string(t.Outcome), t.Question, t.GeneratedSQL)
	return t
}
