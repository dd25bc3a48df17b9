// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package cache

import (
	"sync"
	"time"

	"github.com/tomtom215/attrition/internal/metrics"
	"github.com/tomtom215/attrition/internal/models"
)

// DefaultCapacity is the snapshot store size used when none is configured.
const DefaultCapacity = 256

// Snapshot is the last successful result captured for one cache key.
type Snapshot struct {
	Key      string
	Data     models.Rows
	CachedAt time.Time
}

type snapshotEntry struct {
	key  string
	snap *Snapshot
	prev *snapshotEntry
	next *snapshotEntry
}

// SnapshotStore is a bounded, thread-safe "last known good" store keyed by
// query signature. Entries never expire by age; when a write pushes the
// store past capacity the least recently used entry (read or written) is
// evicted.
//
// Each Put swaps in a new immutable *Snapshot under the lock, so a reader
// never observes data from one write paired with the timestamp of another.
type SnapshotStore struct {
	mu sync.Mutex

	capacity int
	name     string

	items map[string]*snapshotEntry

	// head.next is the most recently used, tail.prev the least
	head *snapshotEntry
	tail *snapshotEntry

	hits      int64
	misses    int64
	evictions int64
}

// NewSnapshotStore creates an empty store holding at most capacity entries.
// capacity <= 0 selects DefaultCapacity.
func NewSnapshotStore(capacity int) *SnapshotStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	s := &SnapshotStore{
		capacity: capacity,
		name:     "snapshot",
		items:    make(map[string]*snapshotEntry, capacity),
		head:     &snapshotEntry{},
		tail:     &snapshotEntry{},
	}
	s.head.next = s.tail
	s.tail.prev = s.head
	return s
}

// Get returns the snapshot stored for key and marks it most recently used.
func (s *SnapshotStore) Get(key string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[key]
	if !ok {
		s.misses++
		metrics.CacheMisses.WithLabelValues(s.name).Inc()
		return Snapshot{}, false
	}

	s.moveToFront(entry)
	s.hits++
	metrics.CacheHits.WithLabelValues(s.name).Inc()
	return *entry.snap, true
}

// Peek returns the snapshot for key without touching recency or stats.
func (s *SnapshotStore) Peek(key string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.items[key]; ok {
		return *entry.snap, true
	}
	return Snapshot{}, false
}

// Put replaces the snapshot for key with data captured at cachedAt and
// returns the stored snapshot. It evicts the least recently used entry when
// the store is full.
func (s *SnapshotStore) Put(key string, data models.Rows, cachedAt time.Time) Snapshot {
	snap := &Snapshot{Key: key, Data: data, CachedAt: cachedAt}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.items[key]; ok {
		entry.snap = snap
		s.moveToFront(entry)
		return *snap
	}

	entry := &snapshotEntry{key: key, snap: snap}
	s.addToFront(entry)
	s.items[key] = entry

	for len(s.items) > s.capacity {
		s.evictOldest()
	}
	metrics.CacheSize.WithLabelValues(s.name).Set(float64(len(s.items)))
	return *snap
}

// Remove deletes the snapshot for key. It reports whether one existed.
func (s *SnapshotStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.items[key]
	if !ok {
		return false
	}
	s.removeEntry(entry)
	metrics.CacheSize.WithLabelValues(s.name).Set(float64(len(s.items)))
	return true
}

// Len returns the number of stored snapshots.
func (s *SnapshotStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Capacity returns the maximum number of snapshots.
func (s *SnapshotStore) Capacity() int {
	return s.capacity
}

// Keys returns the stored keys from most to least recently used.
func (s *SnapshotStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.items))
	for e := s.head.next; e != s.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Clear drops every snapshot.
func (s *SnapshotStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*snapshotEntry, s.capacity)
	s.head.next = s.tail
	s.tail.prev = s.head
	metrics.CacheSize.WithLabelValues(s.name).Set(0)
}

// Stats returns a point-in-time view of the store counters.
func (s *SnapshotStore) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Capacity:  s.capacity,
		Size:      len(s.items),
		Hits:      s.hits,
		Misses:    s.misses,
		Evictions: s.evictions,
	}
}

// Internal methods (must be called with lock held)

func (s *SnapshotStore) addToFront(entry *snapshotEntry) {
	entry.prev = s.head
	entry.next = s.head.next
	s.head.next.prev = entry
	s.head.next = entry
}

func (s *SnapshotStore) moveToFront(entry *snapshotEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	s.addToFront(entry)
}

func (s *SnapshotStore) removeEntry(entry *snapshotEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(s.items, entry.key)
}

func (s *SnapshotStore) evictOldest() {
	oldest := s.tail.prev
	if oldest == s.head {
		return
	}
	s.removeEntry(oldest)
	s.evictions++
	metrics.CacheEvictions.WithLabelValues(s.name).Inc()
}
