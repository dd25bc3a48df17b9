// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/metrics"
	"github.com/tomtom215/attrition/internal/models"
)

const driverPostgres = "postgres"

// PostgresStore runs queries on a pgx connection pool.
type PostgresStore struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// NewPostgresStore builds the pool from cfg. Connections are established
// lazily, so an unreachable server is not an error here.
func NewPostgresStore(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	configurePool(poolCfg, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &PostgresStore{
		pool:         pool,
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

// configurePool applies sizing and lifetime settings to the pool config.
func configurePool(poolCfg *pgxpool.Config, cfg *config.DatabaseConfig) {
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
}

// Query binds params, runs the statement and materializes every row.
func (s *PostgresStore) Query(ctx context.Context, query string, params Params) (models.Rows, error) {
	start := time.Now()
	rows, err := s.query(ctx, query, params)
	metrics.RecordDBQuery(driverPostgres, time.Since(start), errorType(err))
	return rows, err
}

func (s *PostgresStore) query(ctx context.Context, query string, params Params) (models.Rows, error) {
	sqlText, args, err := Bind(query, params, DollarPlaceholders)
	if err != nil {
		return models.Rows{}, err
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	pgRows, err := s.pool.Query(ctx, sqlText, args...)
	if err != nil {
		return models.Rows{}, classifyPostgres(query, err)
	}
	defer pgRows.Close()

	fields := pgRows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}
	result := models.NewRows(columns...)

	for pgRows.Next() {
		values, err := pgRows.Values()
		if err != nil {
			return models.Rows{}, classifyPostgres(query, err)
		}
		result.Append(normalizeRow(values)...)
	}
	if err := pgRows.Err(); err != nil {
		return models.Rows{}, classifyPostgres(query, err)
	}

	return result, nil
}

// Ping checks that a connection can be acquired and used.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return classifyPostgres("ping", err)
	}
	return nil
}

// Close releases every pooled connection.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// errorType labels an error for the query error metric.
func errorType(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUnavailable(err):
		return "unavailable"
	default:
		return "query"
	}
}
