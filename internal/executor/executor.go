// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package executor

import (
	"context"
	"time"

	"github.com/tomtom215/attrition/internal/cache"
	"github.com/tomtom215/attrition/internal/database"
	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/metrics"
	"github.com/tomtom215/attrition/internal/models"
)

// Result sources.
const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

// Result is a query answer together with the snapshot it corresponds to.
type Result struct {
	// Key is the cache key the result is stored under.
	Key string

	// Data is the ordered result set. It is shared with the snapshot store
	// and must not be modified.
	Data models.Rows

	// CachedAt is the UTC time, truncated to the second, of the successful
	// execution that produced Data.
	CachedAt time.Time

	// Source is SourceLive for a fresh result, SourceSnapshot for a fallback.
	Source string
}

// Stale reports whether the result was served from a snapshot.
func (r Result) Stale() bool {
	return r.Source == SourceSnapshot
}

// Executor runs queries against a Store and maintains the snapshot fallback.
// It is safe for concurrent use.
type Executor struct {
	store     database.Store
	snapshots *cache.SnapshotStore
	now       func() time.Time
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock replaces time.Now as the source of snapshot timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		e.now = now
	}
}

// New creates an executor over store, writing snapshots to snapshots.
func New(store database.Store, snapshots *cache.SnapshotStore, opts ...Option) *Executor {
	e := &Executor{
		store:     store,
		snapshots: snapshots,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshots returns the snapshot store backing the executor.
func (e *Executor) Snapshots() *cache.SnapshotStore {
	return e.snapshots
}

// Execute runs query with params and returns its rows. key names the cache
// slot; an empty key derives one from query and params.
//
// A store-unavailable failure is answered from the snapshot for key when one
// exists, with no indication that the rows are stale. Use ExecuteWithMeta to
// learn the source and snapshot time.
func (e *Executor) Execute(ctx context.Context, query string, params database.Params, key string) (models.Rows, error) {
	res, err := e.ExecuteWithMeta(ctx, query, params, key)
	if err != nil {
		return models.Rows{}, err
	}
	return res.Data, nil
}

// ExecuteWithMeta is Execute that also reports the snapshot time and whether
// the rows came from the live store or the fallback.
func (e *Executor) ExecuteWithMeta(ctx context.Context, query string, params database.Params, key string) (Result, error) {
	if key == "" {
		key = cache.DeriveKey(query, params)
	}

	rows, err := e.store.Query(ctx, query, params)
	if err == nil {
		return e.refresh(key, rows), nil
	}

	if !database.IsUnavailable(err) {
		metrics.RecordOutcome(metrics.OutcomeQueryError, 0)
		logging.Ctx(ctx).Error().Err(err).Str("key", key).Msg("Query failed")
		return Result{}, err
	}

	snap, ok := e.snapshots.Get(key)
	if !ok {
		metrics.RecordOutcome(metrics.OutcomeUnavailable, 0)
		logging.Ctx(ctx).Error().Err(err).Str("key", key).Msg("Database unreachable and no snapshot cached")
		return Result{}, &UnavailableError{Key: key, Cause: err}
	}

	age := e.now().Sub(snap.CachedAt)
	metrics.RecordOutcome(metrics.OutcomeSnapshot, age)
	logging.Ctx(ctx).Warn().Err(err).
		Str("key", key).
		Time("cached_at", snap.CachedAt).
		Dur("age", age).
		Msg("Database unreachable, serving snapshot")

	return Result{
		Key:      key,
		Data:     snap.Data,
		CachedAt: snap.CachedAt,
		Source:   SourceSnapshot,
	}, nil
}

// refresh stores rows as the new snapshot for key. The timestamp never moves
// backwards for a key, even if the wall clock does.
func (e *Executor) refresh(key string, rows models.Rows) Result {
	at := e.now().UTC().Truncate(time.Second)
	if prev, ok := e.snapshots.Peek(key); ok && at.Before(prev.CachedAt) {
		at = prev.CachedAt
	}

	snap := e.snapshots.Put(key, rows, at)
	metrics.RecordOutcome(metrics.OutcomeLive, 0)

	return Result{
		Key:      key,
		Data:     snap.Data,
		CachedAt: snap.CachedAt,
		Source:   SourceLive,
	}
}
