// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package models

import (
	"time"
)

// APIResponse is the envelope used for error responses and for the cache
// inspection endpoint. Analytics endpoints return bare row arrays on success.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"},
//	  "error": {
//	    "code": "SERVICE_UNAVAILABLE",
//	    "message": "database unavailable and no cached data exists for this query"
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SnapshotResponse is returned instead of the bare rows when a client asks
// for metadata (meta=true). Source is "live" or "snapshot".
type SnapshotResponse struct {
	CachedAt time.Time   `json:"cached_at"`
	Source   string      `json:"source"`
	Data     interface{} `json:"data"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status   string     `json:"status"`
	DB       any        `json:"db,omitempty"`
	CachedAt *time.Time `json:"cached_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// SnapshotStats describes the fallback snapshot store.
type SnapshotStats struct {
	Capacity  int      `json:"capacity"`
	Size      int      `json:"size"`
	Hits      int64    `json:"hits"`
	Misses    int64    `json:"misses"`
	Evictions int64    `json:"evictions"`
	HitRate   float64  `json:"hit_rate"`
	Keys      []string `json:"keys"`
}
