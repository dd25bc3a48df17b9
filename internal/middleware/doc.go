// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package middleware provides HTTP instrumentation middleware.
//
// PrometheusMetrics is mounted on the API route group:
//
//	r.Route("/api", func(r chi.Router) {
//	    r.Use(middleware.PrometheusMetrics)
//	    r.Get("/attrition/summary", h.AttritionSummary)
//	})
//
// Requests are labelled by chi route pattern, method and status code.
package middleware
