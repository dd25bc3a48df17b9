// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/attrition/internal/database"
	"github.com/tomtom215/attrition/internal/executor"
	"github.com/tomtom215/attrition/internal/models"
)

// analyticsQuery describes one analytics endpoint: the SQL it runs, the
// bound parameters and the snapshot key it reads and refreshes.
type analyticsQuery struct {
	// Key is the explicit snapshot key. Keys are stable per endpoint and
	// parameter set, so an outage serves the last answer to the same question.
	Key string

	// SQL is the query template with :name parameters.
	SQL string

	// Params are bound by the store, never interpolated.
	Params database.Params

	// Single responds with the first row as an object instead of an array.
	Single bool
}

// AnalyticsQueryExecutor encapsulates the common flow of analytics handlers:
//
//  1. Run the query through the executor (live store, snapshot on outage)
//  2. Map executor errors to 503 or 500
//  3. Set X-Data-Source, X-Cached-At and X-Query-Time-Ms
//  4. Respond with the bare rows, or the freshness envelope for meta=true
//
// Example usage:
//
//	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
//	    Key: "attrition_summary",
//	    SQL: database.SummaryQuery,
//	    Single: true,
//	})
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates a new analytics query executor instance.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// Execute runs q and writes the response.
func (e *AnalyticsQueryExecutor) Execute(w http.ResponseWriter, r *http.Request, q analyticsQuery) {
	start := time.Now()

	res, err := e.handler.exec.ExecuteWithMeta(r.Context(), q.SQL, q.Params, q.Key)
	if err != nil {
		status, code, message := statusForError(err)
		respondError(w, status, code, message, err)
		return
	}

	var body interface{} = res.Data
	if q.Single {
		if res.Data.Len() == 0 {
			respondError(w, http.StatusInternalServerError, CodeDatabase, "Failed to execute query", errSummaryEmpty)
			return
		}
		body = res.Data.Row(0)
	}

	setFreshnessHeaders(w, res, time.Since(start))

	if wantMeta(r) {
		body = models.SnapshotResponse{
			CachedAt: res.CachedAt,
			Source:   res.Source,
			Data:     body,
		}
	}

	respondJSON(w, http.StatusOK, body)
}

// setFreshnessHeaders tells the client whether res is live or a snapshot.
func setFreshnessHeaders(w http.ResponseWriter, res executor.Result, elapsed time.Duration) {
	w.Header().Set(HeaderDataSource, res.Source)
	w.Header().Set(HeaderCachedAt, res.CachedAt.UTC().Format(time.RFC3339))
	w.Header().Set(HeaderQueryTime, strconv.FormatInt(elapsed.Milliseconds(), 10))
	if res.Stale() {
		w.Header().Set("Cache-Control", "no-cache")
	}
}
