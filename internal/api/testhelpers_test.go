// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/attrition/internal/cache"
	"github.com/tomtom215/attrition/internal/config"
	"github.com/tomtom215/attrition/internal/database"
	"github.com/tomtom215/attrition/internal/executor"
	"github.com/tomtom215/attrition/internal/models"
	"github.com/tomtom215/attrition/internal/testinfra"
)

// duckDBSemaphore limits concurrent DuckDB instances in tests.
var duckDBSemaphore = make(chan struct{}, 4)

// outageStore wraps a real store and can simulate an outage or a rejected query.
type outageStore struct {
	database.Store

	mu       sync.Mutex
	down     bool
	queryErr error
}

func (s *outageStore) setDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

func (s *outageStore) setQueryErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryErr = err
}

func (s *outageStore) Query(ctx context.Context, query string, params database.Params) (models.Rows, error) {
	s.mu.Lock()
	down, queryErr := s.down, s.queryErr
	s.mu.Unlock()

	if down {
		return models.Rows{}, fmt.Errorf("%w: connection refused", database.ErrStoreUnavailable)
	}
	if queryErr != nil {
		return models.Rows{}, &database.QueryError{Query: query, Err: queryErr}
	}
	return s.Store.Query(ctx, query, params)
}

func (s *outageStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	down := s.down
	s.mu.Unlock()

	if down {
		return fmt.Errorf("%w: connection refused", database.ErrStoreUnavailable)
	}
	return s.Store.Ping(ctx)
}

// testServer bundles the router under test with its store.
type testServer struct {
	store   *outageStore
	handler *Handler
	http    http.Handler
}

// newTestServer serves the API over an in-memory DuckDB seeded with
// testinfra.Employees. Rate limiting is disabled.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	duckDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-duckDBSemaphore
	})

	ctx := context.Background()
	duck, err := database.NewDuckDBStore(ctx, &config.DatabaseConfig{Driver: config.DriverDuckDB})
	if err != nil {
		t.Fatalf("Failed to open duckdb: %v", err)
	}
	t.Cleanup(func() {
		if err := duck.Close(); err != nil {
			t.Logf("Failed to close duckdb: %v", err)
		}
	})
	if err := testinfra.SeedEmployees(ctx, duck.Exec); err != nil {
		t.Fatalf("Failed to seed employees: %v", err)
	}

	store := &outageStore{Store: duck}
	h := NewHandler(executor.New(store, cache.NewSnapshotStore(16)), store)
	router := NewRouter(h, &config.SecurityConfig{RateLimitDisabled: true})

	return &testServer{
		store:   store,
		handler: h,
		http:    router.SetupChi(),
	}
}

// get performs a GET request against the server.
func (s *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.http.ServeHTTP(w, req)
	return w
}

// decodeRows decodes a bare row array response.
func decodeRows(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var rows []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
		t.Fatalf("Failed to decode rows: %v\nbody: %s", err, w.Body.String())
	}
	return rows
}

// decodeError decodes an error envelope.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) *models.APIError {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v\nbody: %s", err, w.Body.String())
	}
	if resp.Status != "error" {
		t.Errorf("Expected status 'error', got %q", resp.Status)
	}
	if resp.Error == nil {
		t.Fatalf("Expected error object in response, body: %s", w.Body.String())
	}
	return resp.Error
}
