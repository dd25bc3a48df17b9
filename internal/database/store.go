// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/models"
)

// Params maps named query parameters (":name" in query text) to values.
type Params = map[string]any

// Store runs read-only analytical queries against the backing database.
//
// Query returns the complete ordered result set, or an error of exactly one
// of two kinds: an error matching ErrStoreUnavailable (connection, timeout,
// cancellation, open circuit) or a *QueryError (everything else).
type Store interface {
	Query(ctx context.Context, query string, params Params) (models.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// Open creates the store selected by cfg.Driver. It does not fail when the
// database is unreachable at startup; the first queries report
// ErrStoreUnavailable instead.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		store, err = NewPostgresStore(ctx, cfg)
	case config.DriverDuckDB:
		store, err = NewDuckDBStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Ping(ctx); err != nil {
		logging.Warn().Err(err).Str("driver", cfg.Driver).Msg("Database not reachable at startup, continuing")
	}
	return store, nil
}
