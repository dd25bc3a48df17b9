// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/metrics"
	"github.com/tomtom215/attrition/internal/models"
)

const driverDuckDB = "duckdb"

// DuckDBStore runs queries on an embedded DuckDB database. An empty path
// opens an in-memory database.
type DuckDBStore struct {
	conn         *sql.DB
	queryTimeout time.Duration
}

// NewDuckDBStore opens the database at cfg.DuckDBPath and, when cfg.SeedCSV
// is set, loads the employee CSV into hr_employees_v.
func NewDuckDBStore(ctx context.Context, cfg *config.DatabaseConfig) (*DuckDBStore, error) {
	conn, err := sql.Open("duckdb", cfg.DuckDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	if cfg.MaxConns > 0 {
		conn.SetMaxOpenConns(int(cfg.MaxConns))
	}

	s := &DuckDBStore{conn: conn, queryTimeout: cfg.QueryTimeout}

	if cfg.SeedCSV != "" {
		if err := s.LoadEmployeesCSV(ctx, cfg.SeedCSV); err != nil {
			closeQuietly(conn, "duckdb")
			return nil, err
		}
	}
	return s, nil
}

// Exec runs a statement that returns no rows.
func (s *DuckDBStore) Exec(ctx context.Context, stmt string) error {
	if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
		return classifyDuckDB(stmt, err)
	}
	return nil
}

// LoadEmployeesCSV imports the HR attrition CSV and exposes it through the
// snake_case view the analytics queries read from.
func (s *DuckDBStore) LoadEmployeesCSV(ctx context.Context, path string) error {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	stmts := []string{
		"CREATE OR REPLACE TABLE hr_employees_raw AS SELECT * FROM read_csv_auto(" + quoted + ", header = true)",
		employeesViewDDL,
	}
	for _, stmt := range stmts {
		if err := s.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to load employee csv %s: %w", path, err)
		}
	}
	logging.Info().Str("path", path).Msg("Loaded employee dataset into duckdb")
	return nil
}

// Query binds params, runs the statement and materializes every row.
func (s *DuckDBStore) Query(ctx context.Context, query string, params Params) (models.Rows, error) {
	start := time.Now()
	rows, err := s.query(ctx, query, params)
	metrics.RecordDBQuery(driverDuckDB, time.Since(start), errorType(err))
	return rows, err
}

func (s *DuckDBStore) query(ctx context.Context, query string, params Params) (models.Rows, error) {
	sqlText, args, err := Bind(query, params, QuestionPlaceholders)
	if err != nil {
		return models.Rows{}, err
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	sqlRows, err := s.conn.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return models.Rows{}, classifyDuckDB(query, err)
	}
	defer closeQuietly(sqlRows, "rows")

	columns, err := sqlRows.Columns()
	if err != nil {
		return models.Rows{}, classifyDuckDB(query, err)
	}
	result := models.NewRows(columns...)

	for sqlRows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := sqlRows.Scan(ptrs...); err != nil {
			return models.Rows{}, classifyDuckDB(query, err)
		}
		result.Append(normalizeRow(values)...)
	}
	if err := sqlRows.Err(); err != nil {
		return models.Rows{}, classifyDuckDB(query, err)
	}

	return result, nil
}

// Ping checks that the database handle is usable.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	if err := s.conn.PingContext(ctx); err != nil {
		return classifyDuckDB("ping", err)
	}
	return nil
}

// Close closes the database handle.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}

// employeesViewDDL maps the IBM HR dataset's CamelCase columns to the
// snake_case names used by the analytics queries.
const employeesViewDDL = `CREATE OR REPLACE VIEW hr_employees_v AS
SELECT
    "Age"                      AS age,
    "Attrition"                AS attrition,
    "BusinessTravel"           AS business_travel,
    "Department"               AS department,
    "DistanceFromHome"         AS distance_from_home,
    "EducationField"           AS education_field,
    "EnvironmentSatisfaction"  AS environment_satisfaction,
    "Gender"                   AS gender,
    "JobRole"                  AS job_role,
    "JobSatisfaction"          AS job_satisfaction,
    "MaritalStatus"            AS marital_status,
    "MonthlyIncome"            AS monthly_income,
    "OverTime"                 AS over_time,
    "RelationshipSatisfaction" AS relationship_satisfaction,
    "TotalWorkingYears"        AS total_working_years,
    "WorkLifeBalance"          AS work_life_balance,
    "YearsAtCompany"           AS years_at_company
FROM hr_employees_raw`
