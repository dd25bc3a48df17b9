// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package executor runs analytics queries with a last-known-good fallback.

Every successful query result is written to a cache.SnapshotStore under the
request's cache key. When the backing store later reports
database.ErrStoreUnavailable for the same key, the executor answers with the
stored snapshot instead of failing. Without a snapshot the request fails with
ErrServiceUnavailable. Query errors (bad SQL, missing parameters) always
propagate and never touch the snapshot.

Cache keys are either supplied by the caller, giving a report a stable name
independent of its SQL text, or derived from the query text and a canonical
serialization of its parameters:

	exec := executor.New(store, cache.NewSnapshotStore(256))

	rows, err := exec.Execute(ctx, database.SummaryQuery, nil, "attrition_summary")
	if errors.Is(err, executor.ErrServiceUnavailable) {
	    // 503: store down and nothing cached
	}

	res, err := exec.ExecuteWithMeta(ctx, query, params, "")
	// res.Source is "live" or "snapshot"; res.CachedAt is the snapshot time.

Snapshots never expire. Entries leave the store only through LRU eviction or
process restart.
*/
package executor
