// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes that mean the server could not serve the request
// rather than rejecting it.
var pgUnavailableCodes = map[string]struct{}{
	"57P01": {}, // admin_shutdown
	"57P02": {}, // crash_shutdown
	"57P03": {}, // cannot_connect_now
	"53300": {}, // too_many_connections
	"57014": {}, // query_canceled (statement_timeout)
}

// classifyPostgres maps a pgx error to ErrStoreUnavailable or *QueryError.
func classifyPostgres(query string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "08") {
			return unavailable(err)
		}
		if _, ok := pgUnavailableCodes[pgErr.Code]; ok {
			return unavailable(err)
		}
		return &QueryError{Query: query, SQLState: pgErr.Code, Err: err}
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || pgconn.Timeout(err) || isTransportError(err) {
		return unavailable(err)
	}

	var qe *QueryError
	if errors.As(err, &qe) || IsUnavailable(err) {
		return err
	}
	return &QueryError{Query: query, Err: err}
}

// classifyDuckDB maps a DuckDB driver error to ErrStoreUnavailable or *QueryError.
func classifyDuckDB(query string, err error) error {
	if err == nil {
		return nil
	}

	var duckErr *duckdb.Error
	if errors.As(err, &duckErr) {
		switch duckErr.Type {
		case duckdb.ErrorTypeConnection, duckdb.ErrorTypeNetwork, duckdb.ErrorTypeIO, duckdb.ErrorTypeInterrupt:
			return unavailable(err)
		}
		return &QueryError{Query: query, Err: err}
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) || isTransportError(err) {
		return unavailable(err)
	}

	var qe *QueryError
	if errors.As(err, &qe) || IsUnavailable(err) {
		return err
	}
	return &QueryError{Query: query, Err: err}
}
