// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package cache holds the "last known good" snapshot store behind the query
// executor and the key derivation used to address it.
//
// SnapshotStore is a doubly linked list plus map LRU with O(1) Get, Put and
// eviction. It is a capacity bound only: snapshots never expire by age and
// are never persisted, so a restart starts empty.
//
//	store := cache.NewSnapshotStore(cache.DefaultCapacity)
//	store.Put("attrition_summary", rows, time.Now().UTC().Truncate(time.Second))
//	if snap, ok := store.Get("attrition_summary"); ok {
//	    // snap.Data, snap.CachedAt
//	}
package cache
