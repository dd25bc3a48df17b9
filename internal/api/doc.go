// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package api provides the HTTP REST API layer for Attrition.

Every analytics endpoint runs a fixed query template through the executor,
which answers from the backing store when it is reachable and from the last
successful result (the snapshot) when it is not.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for the health, analytics and cache endpoints
  - AnalyticsQueryExecutor: shared run-and-respond flow for analytics handlers
  - Request structs: query parameters validated with go-playground/validator

Endpoints:

 1. Health (/api/health):
    - /api/health runs SELECT 1 through the executor and always returns 200
    - /api/health/live and /api/health/ready are Kubernetes-style probes

 2. Attrition (/api/attrition/):
    - summary, by?dim=, by_two?dim1=&dim2=, tenure_curve?max_years=

 3. Charts:
    - /api/distribution/age, /api/distribution/monthly_income
    - /api/correlation/numeric, /api/boxplot/income_by_role
    - /api/scatter/age_income, /api/radar/satisfaction, /api/pie/gender

 4. Operations:
    - /api/cache/snapshots reports the snapshot store
    - /metrics exposes Prometheus metrics

Responses:

Successful analytics responses are the bare JSON rows (an object for
/api/attrition/summary) with these headers:

	X-Data-Source: live | snapshot
	X-Cached-At: 2026-03-01T12:00:00Z
	X-Query-Time-Ms: 4

With meta=true the body becomes {"cached_at", "source", "data"}. Errors use
the envelope in models.APIResponse with codes VALIDATION_ERROR (400),
DATABASE_ERROR (500) and SERVICE_UNAVAILABLE (503).

Usage Example:

	exec := executor.New(store, cache.NewSnapshotStore(cfg.Cache.Capacity))
	handler := api.NewHandler(exec, store)
	router := api.NewRouter(handler, &cfg.Security)
	http.ListenAndServe(":8000", router.SetupChi())

Security:

  - Dimension names are checked against an allowlist before they reach SQL
  - Every other input is a bound parameter
  - Per-IP rate limiting via go-chi/httprate
  - Security headers on all API routes
*/
package api
