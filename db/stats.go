// stats.go computes the quick counts shown in the web interface.
package db

import "context"

// Stats holds headline counts over the seed data.
type Stats struct {
	Employees   string
	Departments string
	Projects    string
}

// QuickStats runs three COUNT queries for the web UI sidebar.
func (s *Store) QuickStats(ctx context.Context) (*Stats, error) {
	employees, err := s.QueryValue(ctx, "SELECT COUNT(*) FROM employees")
	if err != nil {
		return nil, err
	}
	departments, err := s.QueryValue(ctx, "SELECT COUNT(DISTINCT department) FROM employees")
	if err != nil {
		return nil, err
	}
	projects, err := s.QueryValue(ctx, "SELECT COUNT(*) FROM projects")
	if err != nil {
		return nil, err
	}
	return &Stats{Employees: employees, Departments: departments, Projects: projects}, nil
}
