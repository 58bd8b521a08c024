// query.go executes read queries and returns structured results that
// the TUI, web, and AI layers can render. Errors are returned, never
// logged or printed here.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// QueryResult holds the output of a SELECT query.
type QueryResult struct {
	Columns  []string
	Rows     [][]string
	RowCount int
	Status   string // e.g. "(5 rows)"
}

// Query runs a SQL statement and collects all rows as strings.
// The caller is expected to have validated the statement; anything the
// validator missed surfaces here as an ordinary database error.
func (s *Store) Query(ctx context.Context, query string) (*QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// QueryValue runs a single-value query, e.g. SELECT COUNT(*).
func (s *Store) QueryValue(ctx context.Context, query string) (string, error) {
	var v any
	if err := s.db.QueryRowContext(ctx, query).Scan(&v); err != nil {
		return "", err
	}
	return formatValue(v), nil
}

func collectRows(rows *sql.Rows) (*QueryResult, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &QueryResult{Columns: cols}

	values := make([]any, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
		result.RowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result.Status = fmt.Sprintf("(%d row%s)", result.RowCount, plural(result.RowCount))
	return result, nil
}

// formatValue renders a scanned value for display. SQLite hands back
// []byte for TEXT columns, which would otherwise print as a byte list.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// Table renders a QueryResult as a plain text table for prompting the
// response formatter and for terminal display.
func (r *QueryResult) Table() string {
	if r.RowCount == 0 {
		return "query returned no rows"
	}

	widths := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		widths[i] = len(c)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
		}
		sb.WriteString("\n")
	}

	writeRow(r.Columns)
	total := 0
	for _, w := range widths {
		total += w + 3
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteString("\n")
	for _, row := range r.Rows {
		writeRow(row)
	}
	sb.WriteString(r.Status)
	return sb.String()
}
