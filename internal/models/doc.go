// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package models defines the data structures shared by the store, the snapshot
cache, the executor and the HTTP layer.

Key Components:

  - Rows / Row: ordered query results that keep the SELECT column order when
    encoded to JSON
  - APIResponse, APIError, Metadata: the error envelope
  - SnapshotResponse: rows plus freshness metadata (meta=true)
  - HealthResponse, SnapshotStats: health and cache inspection bodies
*/
package models
