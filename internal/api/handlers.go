// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"time"

	"github.com/tomtom215/attrition/internal/database"
	"github.com/tomtom215/attrition/internal/executor"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared response and parameter helpers
//   - handlers_health.go: Health and probe endpoints
//   - handlers_attrition.go: Attrition rate endpoints
//   - handlers_charts.go: Distribution and chart endpoints
//   - handlers_cache.go: Snapshot store inspection
type Handler struct {
	exec      *executor.Executor
	store     database.Store
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// exec answers every analytics endpoint and owns the snapshot fallback.
// store is pinged directly by the readiness probe so that it reports the
// backing store itself rather than what the fallback can still serve.
//
// Example:
//
//	exec := executor.New(store, cache.NewSnapshotStore(cfg.Cache.Capacity))
//	handler := api.NewHandler(exec, store)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(exec *executor.Executor, store database.Store) *Handler {
	return &Handler{
		exec:      exec,
		store:     store,
		startTime: time.Now(),
	}
}
