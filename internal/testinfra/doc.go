// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package testinfra provides shared test fixtures and container helpers.
//
// The employee fixture (Employees, EmployeeFixtureStatements, EmployeesCSV)
// is plain data and available to every test. Container helpers live behind
// the integration build tag and use testcontainers-go:
//
//	func TestPostgresStore(t *testing.T) {
//	    url := testinfra.StartPostgres(t)
//	    store, err := database.NewPostgresStore(ctx, &config.DatabaseConfig{URL: url})
//	    // ...
//	}
//
// Run integration tests with:
//
//	go test -tags integration ./internal/...
package testinfra
