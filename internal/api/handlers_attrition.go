// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/attrition/internal/database"
)

// AttritionSummary handles GET /api/attrition/summary.
// It returns a single object {n_total, n_left, attrition_rate}.
func (h *Handler) AttritionSummary(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key:    "attrition_summary",
		SQL:    database.SummaryQuery,
		Single: true,
	})
}

// AttritionBy handles GET /api/attrition/by?dim=<dimension>.
// Rows are {key, n, attrition_rate}, highest rate first.
func (h *Handler) AttritionBy(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := AttritionByRequest{Dim: q.String("dim")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	sql, err := database.AttritionByQuery(req.Dim)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: "attrition_by:" + req.Dim,
		SQL: sql,
	})
}

// AttritionByTwo handles GET /api/attrition/by_two?dim1=&dim2=.
// Rows are {k1, k2, n, attrition_rate} ordered by k1, k2.
func (h *Handler) AttritionByTwo(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := AttritionByTwoRequest{
		Dim1: q.String("dim1"),
		Dim2: q.String("dim2"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	sql, err := database.AttritionByTwoQuery(req.Dim1, req.Dim2)
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: fmt.Sprintf("attrition_by_two:%s:%s", req.Dim1, req.Dim2),
		SQL: sql,
	})
}

// AttritionTenureCurve handles GET /api/attrition/tenure_curve?max_years=40.
func (h *Handler) AttritionTenureCurve(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := TenureCurveRequest{MaxYears: q.Int("max_years", defaultMaxYears)}
	if q.err != nil {
		respondAPIError(w, http.StatusBadRequest, q.err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key:    fmt.Sprintf("tenure_curve:%d", req.MaxYears),
		SQL:    database.TenureCurveQuery,
		Params: database.Params{"max_years": req.MaxYears},
	})
}
