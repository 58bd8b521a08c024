// seed.go creates the schema and inserts the fixed sample rows.
//
// Three tables: employees, departments, projects. The references
// (departments.manager_id → employees.id, projects.department_id →
// departments.dept_id) are declared but not enforced at runtime; the
// application treats all three tables as read-only.
package db

import (
	"context"
	"fmt"
)

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		department TEXT NOT NULL,
		role TEXT NOT NULL,
		salary INTEGER,
		hire_date DATE,
		email TEXT UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		dept_id INTEGER PRIMARY KEY AUTOINCREMENT,
		dept_name TEXT NOT NULL UNIQUE,
		location TEXT,
		manager_id INTEGER,
		FOREIGN KEY (manager_id) REFERENCES employees(id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_name TEXT NOT NULL,
		department_id INTEGER,
		start_date DATE,
		end_date DATE,
		budget REAL,
		FOREIGN KEY (department_id) REFERENCES departments(dept_id)
	)`,
}

type employeeSeed struct {
	name, department, role string
	salary                 int
	hireDate, email        string
}

var employeeSeeds = []employeeSeed{
	{"John Doe", "IT", "Software Engineer", 75000, "2022-01-15", "john.doe@company.com"},
	{"Jane Smith", "HR", "HR Manager", 65000, "2021-03-10", "jane.smith@company.com"},
	{"Bob Johnson", "IT", "DevOps Engineer", 80000, "2022-06-20", "bob.johnson@company.com"},
	{"Alice Brown", "Marketing", "Marketing Specialist", 55000, "2023-02-01", "alice.brown@company.com"},
	{"Charlie Wilson", "Finance", "Financial Analyst", 70000, "2021-11-05", "charlie.wilson@company.com"},
	{"Eva Davis", "IT", "Senior Developer", 90000, "2020-08-12", "eva.davis@company.com"},
	{"Frank Miller", "HR", "Recruiter", 50000, "2023-01-20", "frank.miller@company.com"},
	{"Grace Lee", "IT", "QA Engineer", 60000, "2022-09-15", "grace.lee@company.com"},
}

type departmentSeed struct {
	name, location string
	managerID      int
}

var departmentSeeds = []departmentSeed{
	{"IT", "Building A - Floor 3", 1},
	{"HR", "Building B - Floor 1", 2},
	{"Marketing", "Building A - Floor 2", 4},
	{"Finance", "Building B - Floor 2", 5},
}

type projectSeed struct {
	name               string
	departmentID       int
	startDate, endDate string
	budget             float64
}

var projectSeeds = []projectSeed{
	{"Website Redesign", 1, "2023-01-01", "2023-06-30", 50000.0},
	{"Employee Portal", 1, "2023-03-15", "2023-12-31", 75000.0},
	{"Recruitment Campaign", 2, "2023-02-01", "2023-04-30", 25000.0},
	{"Financial Audit System", 4, "2023-01-15", "2023-09-30", 100000.0},
}

// setup creates the tables and loads seed rows when the employees
// table is empty, so reopening an existing file is a no-op.
func (s *Store) setup(ctx context.Context) error {
	for _, stmt := range createStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	for _, e := range employeeSeeds {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO employees (name, department, role, salary, hire_date, email)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.name, e.department, e.role, e.salary, e.hireDate, e.email)
		if err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	for _, d := range departmentSeeds {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO departments (dept_name, location, manager_id) VALUES (?, ?, ?)`,
			d.name, d.location, d.managerID)
		if err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
	}

	for _, p := range projectSeeds {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (project_name, department_id, start_date, end_date, budget)
			 VALUES (?, ?, ?, ?, ?)`,
			p.name, p.departmentID, p.startDate, p.endDate, p.budget)
		if err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
	}

	return tx.Commit()
}
