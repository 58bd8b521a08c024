// schema.go provides the schema inspector: table and column metadata
// formatted as a text block suitable for injection into an AI prompt.
//
// SQLite keeps the catalog in sqlite_master; column details come from
// PRAGMA table_info. The inspector has no side effects and only fails
// if the database itself is unreadable.
package db

import (
	"context"
	"fmt"
	"strings"
)

// ColumnInfo describes a single column in a table.
type ColumnInfo struct {
	Name     string
	DataType string
	NotNull  bool
	IsPK     bool
}

// TableSchema holds schema information for one table.
type TableSchema struct {
	Name    string
	Columns []ColumnInfo
}

// ListTables returns the user table names in catalog order, skipping
// SQLite's internal bookkeeping tables.
func (s *Store) ListTables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// DescribeTable returns column metadata for one table.
func (s *Store) DescribeTable(ctx context.Context, table string) (*TableSchema, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ts := &TableSchema{Name: table}
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    any
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		ts.Columns = append(ts.Columns, ColumnInfo{
			Name:     name,
			DataType: ctype,
			NotNull:  notNull != 0,
			IsPK:     pk != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ts.Columns) == 0 {
		return nil, fmt.Errorf("table %q not found", table)
	}
	return ts, nil
}

// SchemaInfo returns a text description of every table, or of the one
// requested when table is non-empty.
func (s *Store) SchemaInfo(ctx context.Context, table string) (string, error) {
	var names []string
	if table != "" {
		names = []string{table}
	} else {
		var err error
		names, err = s.ListTables(ctx)
		if err != nil {
			return "", err
		}
	}

	schemas := make([]*TableSchema, 0, len(names))
	for _, name := range names {
		ts, err := s.DescribeTable(ctx, name)
		if err != nil {
			return "", err
		}
		schemas = append(schemas, ts)
	}

	return FormatSchemaContext(schemas), nil
}

// FormatSchemaContext builds the schema text block used both for AI
// prompts and for display in the CLI and web UI.
func FormatSchemaContext(schemas []*TableSchema) string {
	var sb strings.Builder
	sb.WriteString("Database Schema:\n")
	for _, ts := range schemas {
		sb.WriteString(fmt.Sprintf("\nTable: %s\n", ts.Name))
		for _, col := range ts.Columns {
			var attrs []string
			if col.IsPK {
				attrs = append(attrs, "PK")
			}
			if col.NotNull {
				attrs = append(attrs, "NOT NULL")
			}
			suffix := ""
			if len(attrs) > 0 {
				suffix = " (" + strings.Join(attrs, ", ") + ")"
			}
			sb.WriteString(fmt.Sprintf("  - %s: %s%s\n", col.Name, col.DataType, suffix))
		}
	}
	return sb.String()
}
