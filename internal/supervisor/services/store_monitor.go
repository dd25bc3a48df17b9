// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/metrics"
)

// Pinger is satisfied by database.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the backing store on an interval, publishes the
// result as the db_up gauge, and logs when the store goes down or comes back.
// It never returns an error for a failed ping.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger

	mu   sync.Mutex
	up   bool
	seen bool
}

// NewStoreMonitorService creates a monitor. Each ping is bounded by timeout,
// or by interval when timeout is zero or larger than interval.
func NewStoreMonitorService(store Pinger, interval, timeout time.Duration) *StoreMonitorService {
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		timeout:  timeout,
		logger:   logging.WithComponent("store-monitor"),
	}
}

// Serve implements suture.Service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := s.store.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	metrics.SetDBUp(up)

	s.mu.Lock()
	changed := !s.seen || s.up != up
	s.up, s.seen = up, true
	s.mu.Unlock()

	if !changed {
		return
	}
	if up {
		s.logger.Info().Msg("Backing store reachable")
	} else {
		s.logger.Warn().Err(err).Msg("Backing store unreachable, serving snapshots where available")
	}
}

// Up reports the result of the most recent ping. It is false before the
// first ping completes.
func (s *StoreMonitorService) Up() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.up
}

func (s *StoreMonitorService) String() string {
	return "store-monitor"
}
