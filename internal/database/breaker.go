// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/metrics"
	"github.com/tomtom215/attrition/internal/models"
)

// BreakerStore wraps a Store with a circuit breaker. Only unavailability
// counts as a failure; while the circuit is open queries fail fast with
// ErrStoreUnavailable so callers fall back to snapshots without waiting on
// connection timeouts.
type BreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker[models.Rows]
	name  string
}

// NewBreakerStore wraps store using the thresholds in cfg.
func NewBreakerStore(store Store, cfg *config.BreakerConfig) *BreakerStore {
	name := "backing-store"

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	maxFailures := cfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker[models.Rows](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= maxFailures
			if shouldTrip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// Rejected queries and client cancellations say nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil || !IsUnavailable(err) || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerStore{store: store, cb: cb, name: name}
}

// Query runs the wrapped query through the breaker.
func (b *BreakerStore) Query(ctx context.Context, query string, params Params) (models.Rows, error) {
	rows, err := b.cb.Execute(func() (models.Rows, error) {
		return b.store.Query(ctx, query, params)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Debug().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return models.Rows{}, unavailable(err)
		}
		if IsUnavailable(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		}
		return models.Rows{}, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return rows, nil
}

// Ping bypasses the breaker so readiness probes observe the real store.
func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.store.Ping(ctx)
}

// Close closes the wrapped store.
func (b *BreakerStore) Close() error {
	return b.store.Close()
}

// State returns the current breaker state as a string.
func (b *BreakerStore) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
