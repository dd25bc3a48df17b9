// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/attrition/internal/database"
	"github.com/tomtom215/attrition/internal/logging"
	"github.com/tomtom215/attrition/internal/models"
)

// Health status values.
const (
	healthOK       = "ok"
	healthDegraded = "degraded"
)

// healthKey is the snapshot key of the health probe query.
const healthKey = "health"

// Health handles GET /api/health.
//
// The probe goes through the executor like any other query, so a store
// outage with a cached probe reports "degraded" with the snapshot time, and
// an outage without one reports "degraded" with the error. The status code
// is always 200; use /api/health/ready for a probe that fails.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	res, err := h.exec.ExecuteWithMeta(r.Context(), database.HealthQuery, nil, healthKey)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health probe failed")
		respondJSON(w, http.StatusOK, models.HealthResponse{
			Status: healthDegraded,
			Error:  err.Error(),
		})
		return
	}

	var db any
	if res.Data.Len() > 0 {
		db, _ = res.Data.Row(0).Get("ok")
	}

	if res.Stale() {
		cachedAt := res.CachedAt
		respondJSON(w, http.StatusOK, models.HealthResponse{
			Status:   healthDegraded,
			DB:       db,
			CachedAt: &cachedAt,
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status: healthOK,
		DB:     db,
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the backing store answers a ping. Snapshots do not
// count: a replica serving only cached data is alive but not ready.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	err := h.store.Ping(r.Context())
	dbConnected := err == nil

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness probe failed")
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"snapshots_cached":   h.exec.Snapshots().Len(),
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
