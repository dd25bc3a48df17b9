// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package database provides read-only access to the HR employee dataset.
//
// # Overview
//
// Every backend implements Store. Query returns the full ordered result set
// as models.Rows, or an error of exactly one of two kinds:
//
//   - ErrStoreUnavailable (wrapped): the store could not be reached. The
//     connection was refused, the query timed out, the context was canceled,
//     or the circuit breaker is open. Callers may fall back to cached data.
//   - *QueryError: the store answered and rejected the query. These are
//     never masked by cached data.
//
// # Backends
//
//   - postgres.go: PostgreSQL through a pgx connection pool
//   - duckdb.go: embedded DuckDB, optionally seeded from the IBM HR CSV
//   - breaker.go: gobreaker wrapper that short-circuits a failing store
//
// Values are normalized before they leave the package: NUMERIC becomes
// float64, NaN and infinities become nil, timestamps become UTC.
//
// # Queries
//
// queries.go holds the analytical SQL. Dimension names are checked against
// the Dimensions whitelist before they are spliced into SQL; all other
// inputs are bound as named parameters (:name) and rewritten for the target
// driver by Bind.
//
// # Usage
//
//	store, err := database.Open(ctx, &cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	rows, err := store.Query(ctx, database.TenureCurveQuery, database.Params{"max_years": 40})
//	switch {
//	case database.IsUnavailable(err):
//	    // serve a snapshot
//	case err != nil:
//	    return err
//	}
package database
