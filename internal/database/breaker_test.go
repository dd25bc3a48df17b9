// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/models"
)

// scriptedStore returns err for every query and counts calls.
type scriptedStore struct {
	mu    sync.Mutex
	err   error
	rows  models.Rows
	calls int
	pings int
}

func (s *scriptedStore) Query(_ context.Context, _ string, _ Params) (models.Rows, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return models.Rows{}, s.err
	}
	return s.rows, nil
}

func (s *scriptedStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pings++
	return s.err
}

func (s *scriptedStore) Close() error { return nil }

func (s *scriptedStore) set(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *scriptedStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testBreakerConfig() *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:          true,
		MaxFailures:      3,
		OpenTimeout:      50 * time.Millisecond,
		HalfOpenRequests: 1,
	}
}

func TestBreakerStoreTripsOnUnavailable(t *testing.T) {
	t.Parallel()

	inner := &scriptedStore{err: unavailable(errors.New("connection refused"))}
	b := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := b.Query(ctx, "SELECT 1", nil); !IsUnavailable(err) {
			t.Fatalf("Call %d: expected unavailable error, got %v", i, err)
		}
	}
	if b.State() != "open" {
		t.Fatalf("Expected breaker to be open, got %s", b.State())
	}

	_, err := b.Query(ctx, "SELECT 1", nil)
	if !IsUnavailable(err) {
		t.Errorf("Expected open breaker to report unavailable, got %v", err)
	}
	if got := inner.callCount(); got != 3 {
		t.Errorf("Expected open breaker to skip the store, got %d store calls", got)
	}
}

func TestBreakerStoreIgnoresQueryErrors(t *testing.T) {
	t.Parallel()

	inner := &scriptedStore{err: &QueryError{Query: "SELECT nope", Err: errors.New("column does not exist")}}
	b := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := b.Query(ctx, "SELECT nope", nil)
		if !IsQueryError(err) {
			t.Fatalf("Expected query error to pass through, got %v", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("Expected breaker to stay closed on query errors, got %s", b.State())
	}
}

func TestBreakerStoreIgnoresCancellation(t *testing.T) {
	t.Parallel()

	inner := &scriptedStore{err: unavailable(context.Canceled)}
	b := NewBreakerStore(inner, testBreakerConfig())

	for i := 0; i < 5; i++ {
		_, _ = b.Query(context.Background(), "SELECT 1", nil)
	}
	if b.State() != "closed" {
		t.Errorf("Expected client cancellations not to trip the breaker, got %s", b.State())
	}
}

func TestBreakerStoreRecovers(t *testing.T) {
	t.Parallel()

	inner := &scriptedStore{err: unavailable(errors.New("connection reset"))}
	b := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = b.Query(ctx, "SELECT 1", nil)
	}
	if b.State() != "open" {
		t.Fatalf("Expected breaker to be open, got %s", b.State())
	}

	inner.set(nil)
	inner.rows = models.NewRows("ok")
	time.Sleep(80 * time.Millisecond)

	if _, err := b.Query(ctx, "SELECT 1", nil); err != nil {
		t.Fatalf("Expected half-open probe to succeed, got %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("Expected breaker to close after a successful probe, got %s", b.State())
	}
}

func TestBreakerStorePingBypassesBreaker(t *testing.T) {
	t.Parallel()

	inner := &scriptedStore{err: unavailable(errors.New("down"))}
	b := NewBreakerStore(inner, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = b.Query(ctx, "SELECT 1", nil)
	}
	_ = b.Ping(ctx)
	_ = b.Ping(ctx)

	inner.mu.Lock()
	pings := inner.pings
	inner.mu.Unlock()
	if pings != 2 {
		t.Errorf("Expected 2 pings to reach the store, got %d", pings)
	}
}
