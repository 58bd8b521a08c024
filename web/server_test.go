package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdb/askdb/agent"
	"github.com/askdb/askdb/db"
)

type scriptedProvider struct {
	sql    string
	answer string
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) GenerateSQL(ctx context.Context, schemaContext, question string) (string, error) {
	return p.sql, nil
}

func (p *scriptedProvider) FormatAnswer(ctx context.Context, question, sql, results string) (string, error) {
	return p.answer, nil
}

func newTestServer(t *testing.T, p *scriptedProvider) *Server {
	t.Helper()
	store, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)

	srv, err := NewServer(agent.New(store, p), store)
	require.NoError(t, err)
	return srv
}

func TestIndexPageRendersFormAndStats(t *testing.T) {
	srv := newTestServer(t, &scriptedProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="question"`)
	assert.Contains(t, body, "Table: employees")
	assert.Contains(t, body, "employees</span>") // stats line
	assert.Contains(t, body, ExampleQuestions[0])
}

func TestAskFormRendersTurn(t *testing.T) {
	srv := newTestServer(t, &scriptedProvider{
		sql:    "SELECT * FROM employees WHERE department = 'IT'",
		answer: "Four employees work in IT.",
	})

	form := url.Values{"question": {"Show me all employees in the IT department"}}
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Four employees work in IT.")
	assert.Contains(t, body, "SELECT * FROM employees")
	assert.Contains(t, body, "john.doe@company.com")
}

func TestAPIAskReturnsTurnJSON(t *testing.T) {
	srv := newTestServer(t, &scriptedProvider{
		sql:    "SELECT department, COUNT(*) FROM employees GROUP BY department",
		answer: "There are four departments.",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ask",
		strings.NewReader(`{"question": "How many employees work in each department?"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var turn agent.Turn
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &turn))
	assert.Equal(t, agent.OutcomeAnswered, turn.Outcome)
	assert.True(t, turn.Valid)
	require.NotNil(t, turn.Result)
	assert.Equal(t, 4, turn.Result.RowCount)
}

func TestAPIAskRejectsBadRequests(t *testing.T) {
	srv := newTestServer(t, &scriptedProvider{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ask", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question": ""}`))
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`not json`))
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIAskSurfacesRejection(t *testing.T) {
	srv := newTestServer(t, &scriptedProvider{sql: "DROP TABLE employees"})

	req := httptest.NewRequest(http.MethodPost, "/api/ask",
		strings.NewReader(`{"question": "delete it all"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "rejection is a turn outcome, not an HTTP error")

	var turn agent.Turn
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &turn))
	assert.Equal(t, agent.OutcomeRejected, turn.Outcome)
	assert.False(t, turn.Valid)
	assert.NotEmpty(t, turn.Reason)
}
