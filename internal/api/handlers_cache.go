// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/attrition/internal/models"
)

// CacheSnapshots handles GET /api/cache/snapshots.
// It reports the fallback store's size, hit counters and keys (most recently
// used first). Reading the stats does not touch recency.
func (h *Handler) CacheSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots := h.exec.Snapshots()
	stats := snapshots.Stats()

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.SnapshotStats{
			Capacity:  stats.Capacity,
			Size:      stats.Size,
			Hits:      stats.Hits,
			Misses:    stats.Misses,
			Evictions: stats.Evictions,
			HitRate:   stats.HitRate(),
			Keys:      snapshots.Keys(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
