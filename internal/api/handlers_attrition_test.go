// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tomtom215/attrition/internal/models"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAttritionSummary(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := srv.get(t, "/api/attrition/summary")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get(HeaderDataSource); got != "live" {
		t.Errorf("Expected %s 'live', got %q", HeaderDataSource, got)
	}
	if _, err := time.Parse(time.RFC3339, w.Header().Get(HeaderCachedAt)); err != nil {
		t.Errorf("Expected RFC3339 %s, got %q: %v", HeaderCachedAt, w.Header().Get(HeaderCachedAt), err)
	}
	if w.Header().Get(HeaderQueryTime) == "" {
		t.Errorf("Expected %s header", HeaderQueryTime)
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode summary: %v", err)
	}
	want := map[string]any{"n_total": 10.0, "n_left": 3.0, "attrition_rate": 0.3}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	// keys follow the SELECT list
	body := w.Body.String()
	if !(strings.Index(body, "n_total") < strings.Index(body, "n_left") &&
		strings.Index(body, "n_left") < strings.Index(body, "attrition_rate")) {
		t.Errorf("Expected keys in column order, got %s", body)
	}
}

func TestAttritionBy(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := srv.get(t, "/api/attrition/by?dim=department")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	want := []map[string]any{
		{"key": "Sales", "n": 4.0, "attrition_rate": 0.5},
		{"key": "Research & Development", "n": 5.0, "attrition_rate": 0.2},
		{"key": "Human Resources", "n": 1.0, "attrition_rate": 0.0},
	}
	if diff := cmp.Diff(want, decodeRows(t, w), approx); diff != "" {
		t.Errorf("attrition by department mismatch (-want +got):\n%s", diff)
	}
}

func TestAttritionBy_Validation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	tests := []struct {
		name    string
		target  string
		wantMsg string
	}{
		{"unknown dimension", "/api/attrition/by?dim=salary", "Invalid dimension 'salary'"},
		{"sql in dimension", "/api/attrition/by?dim=gender%3BDROP+TABLE+x", "Invalid dimension 'gender;DROP TABLE x'"},
		{"unescaped semicolon", "/api/attrition/by?dim=gender;DROP+TABLE+x", "dim is required"},
		{"missing dimension", "/api/attrition/by", "dim is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.get(t, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			apiErr := decodeError(t, w)
			if apiErr.Code != CodeValidation {
				t.Errorf("Expected code %s, got %s", CodeValidation, apiErr.Code)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, apiErr.Message)
			}
		})
	}

	if keys := srv.handler.exec.Snapshots().Keys(); len(keys) != 0 {
		t.Errorf("Expected rejected requests to leave no snapshots, got %v", keys)
	}
}

func TestAttritionByTwo(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := srv.get(t, "/api/attrition/by_two?dim1=department&dim2=gender")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	rows := decodeRows(t, w)
	if len(rows) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(rows))
	}
	if rows[0]["k1"] != "Human Resources" || rows[0]["k2"] != "Female" {
		t.Errorf("Expected first row Human Resources/Female, got %v", rows[0])
	}

	w = srv.get(t, "/api/attrition/by_two?dim1=gender&dim2=gender")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for equal dimensions, got %d", w.Code)
	}
	if msg := decodeError(t, w).Message; msg != "dim2 must differ from dim1" {
		t.Errorf("Expected message 'dim2 must differ from dim1', got %q", msg)
	}
}

func TestAttritionTenureCurve(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := srv.get(t, "/api/attrition/tenure_curve?max_years=5")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	want := []map[string]any{
		{"years_at_company": 0.0, "n": 1.0, "attrition_rate": 1.0},
		{"years_at_company": 1.0, "n": 1.0, "attrition_rate": 1.0},
		{"years_at_company": 2.0, "n": 1.0, "attrition_rate": 1.0},
		{"years_at_company": 5.0, "n": 2.0, "attrition_rate": 0.0},
	}
	if diff := cmp.Diff(want, decodeRows(t, w), approx); diff != "" {
		t.Errorf("tenure curve mismatch (-want +got):\n%s", diff)
	}

	for _, target := range []string{
		"/api/attrition/tenure_curve?max_years=61",
		"/api/attrition/tenure_curve?max_years=-1",
		"/api/attrition/tenure_curve?max_years=ten",
	} {
		if w := srv.get(t, target); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, w.Code)
		}
	}
}

func TestFallback_ServesSnapshotDuringOutage(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	live := srv.get(t, "/api/attrition/by?dim=department")
	if live.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", live.Code)
	}

	srv.store.setDown(true)

	stale := srv.get(t, "/api/attrition/by?dim=department")
	if stale.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from snapshot, got %d: %s", stale.Code, stale.Body.String())
	}
	if got := stale.Header().Get(HeaderDataSource); got != "snapshot" {
		t.Errorf("Expected %s 'snapshot', got %q", HeaderDataSource, got)
	}
	if live.Header().Get(HeaderCachedAt) != stale.Header().Get(HeaderCachedAt) {
		t.Errorf("Expected snapshot time %s, got %s",
			live.Header().Get(HeaderCachedAt), stale.Header().Get(HeaderCachedAt))
	}
	if live.Body.String() != stale.Body.String() {
		t.Errorf("Expected snapshot body to equal live body\nlive:  %s\nstale: %s", live.Body.String(), stale.Body.String())
	}

	// a different dimension was never cached
	w := srv.get(t, "/api/attrition/by?dim=gender")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503 for uncached query, got %d", w.Code)
	}
	if code := decodeError(t, w).Code; code != CodeServiceUnavailable {
		t.Errorf("Expected code %s, got %s", CodeServiceUnavailable, code)
	}
}

func TestFallback_MetaEnvelope(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	w := srv.get(t, "/api/attrition/summary?meta=true")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var live struct {
		CachedAt time.Time      `json:"cached_at"`
		Source   string         `json:"source"`
		Data     map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &live); err != nil {
		t.Fatalf("Failed to decode meta response: %v", err)
	}
	if live.Source != "live" {
		t.Errorf("Expected source 'live', got %q", live.Source)
	}
	if live.CachedAt.IsZero() || live.CachedAt.Nanosecond() != 0 {
		t.Errorf("Expected whole-second cached_at, got %v", live.CachedAt)
	}
	if live.Data["n_total"] != 10.0 {
		t.Errorf("Expected data.n_total 10, got %v", live.Data["n_total"])
	}

	srv.store.setDown(true)

	w = srv.get(t, "/api/attrition/summary?meta=1")
	var stale models.SnapshotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &stale); err != nil {
		t.Fatalf("Failed to decode meta response: %v", err)
	}
	if stale.Source != "snapshot" {
		t.Errorf("Expected source 'snapshot', got %q", stale.Source)
	}
	if !stale.CachedAt.Equal(live.CachedAt) {
		t.Errorf("Expected cached_at %v, got %v", live.CachedAt, stale.CachedAt)
	}
}

func TestFallback_QueryErrorNotMasked(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	if w := srv.get(t, "/api/pie/gender"); w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	srv.store.setQueryErr(errors.New(`column "gender" does not exist`))

	w := srv.get(t, "/api/pie/gender")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d: %s", w.Code, w.Body.String())
	}
	apiErr := decodeError(t, w)
	if apiErr.Code != CodeDatabase {
		t.Errorf("Expected code %s, got %s", CodeDatabase, apiErr.Code)
	}
	if strings.Contains(apiErr.Message, "does not exist") {
		t.Errorf("Expected driver error to stay out of the response, got %q", apiErr.Message)
	}
	if w.Header().Get(HeaderDataSource) != "" {
		t.Errorf("Expected no %s header on errors", HeaderDataSource)
	}
}
