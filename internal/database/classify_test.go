// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPostgres(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
		wantSQLState    string
	}{
		{"connection failure class", &pgconn.PgError{Code: "08006", Message: "connection failure"}, true, ""},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, true, ""},
		{"too many connections", &pgconn.PgError{Code: "53300"}, true, ""},
		{"statement timeout", &pgconn.PgError{Code: "57014"}, true, ""},
		{"undefined table", &pgconn.PgError{Code: "42P01", Message: `relation "x" does not exist`}, false, "42P01"},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false, "42601"},
		{"deadline exceeded", fmt.Errorf("query: %w", context.DeadlineExceeded), true, ""},
		{"canceled", context.Canceled, true, ""},
		{"unexpected eof", io.ErrUnexpectedEOF, true, ""},
		{"refused by text", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true, ""},
		{"closed pool", errors.New("closed pool"), true, ""},
		{"scan failure", errors.New("can't scan into dest[0]"), false, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyPostgres("SELECT 1", tt.err)
			if IsUnavailable(got) != tt.wantUnavailable {
				t.Fatalf("Expected unavailable=%v, got %v (%v)", tt.wantUnavailable, IsUnavailable(got), got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("Expected classified error to wrap the driver error")
			}
			if tt.wantUnavailable {
				return
			}

			var qe *QueryError
			if !errors.As(got, &qe) {
				t.Fatalf("Expected *QueryError, got %T", got)
			}
			if qe.SQLState != tt.wantSQLState {
				t.Errorf("Expected SQLSTATE %q, got %q", tt.wantSQLState, qe.SQLState)
			}
		})
	}
}

func TestClassifyDuckDB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{"io error", &duckdb.Error{Type: duckdb.ErrorTypeIO, Msg: "could not read file"}, true},
		{"interrupted", &duckdb.Error{Type: duckdb.ErrorTypeInterrupt, Msg: "interrupted"}, true},
		{"connection error", &duckdb.Error{Type: duckdb.ErrorTypeConnection, Msg: "connection lost"}, true},
		{"parser error", &duckdb.Error{Type: duckdb.ErrorTypeParser, Msg: "syntax error"}, false},
		{"catalog error", &duckdb.Error{Type: duckdb.ErrorTypeCatalog, Msg: "table does not exist"}, false},
		{"bad conn", driver.ErrBadConn, true},
		{"database closed", errors.New("sql: database is closed"), true},
		{"unknown", errors.New("boom"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyDuckDB("SELECT 1", tt.err)
			if IsUnavailable(got) != tt.wantUnavailable {
				t.Fatalf("Expected unavailable=%v, got %v (%v)", tt.wantUnavailable, IsUnavailable(got), got)
			}
			if !tt.wantUnavailable && !IsQueryError(got) {
				t.Errorf("Expected *QueryError, got %T", got)
			}
		})
	}
}

func TestClassifyKeepsExistingKinds(t *testing.T) {
	t.Parallel()

	qe := &QueryError{Query: "q", Err: errors.New("missing value")}
	if got := classifyPostgres("q", qe); got != error(qe) {
		t.Errorf("Expected QueryError to pass through unchanged, got %v", got)
	}

	unavail := unavailable(errors.New("down"))
	if got := classifyDuckDB("q", unavail); got != unavail {
		t.Errorf("Expected unavailable error to pass through unchanged, got %v", got)
	}
	if classifyPostgres("q", nil) != nil || classifyDuckDB("q", nil) != nil {
		t.Error("Expected nil for nil error")
	}
}

func TestUnavailableWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial failed")
	err := unavailable(cause)

	if !errors.Is(err, ErrStoreUnavailable) {
		t.Error("Expected error to match ErrStoreUnavailable")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to match the cause")
	}
	if again := unavailable(err); again != err {
		t.Error("Expected wrapping an unavailable error to be a no-op")
	}
}
