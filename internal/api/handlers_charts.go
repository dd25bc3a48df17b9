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

// DistributionAge handles GET /api/distribution/age?buckets=9&min_age=18&max_age=60.
//
// Rows are {bucket, min_age, max_age, n, attrition_rate}. Bucket 0 holds ages
// below min_age and bucket buckets+1 ages at or above max_age.
func (h *Handler) DistributionAge(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := AgeDistributionRequest{
		Buckets: q.Int("buckets", defaultAgeBuckets),
		MinAge:  q.Int("min_age", defaultMinAge),
		MaxAge:  q.Int("max_age", defaultMaxAge),
	}
	if q.err != nil {
		respondAPIError(w, http.StatusBadRequest, q.err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: fmt.Sprintf("age_hist:%d:%d:%d", req.Buckets, req.MinAge, req.MaxAge),
		SQL: database.AgeDistributionQuery,
		Params: database.Params{
			"buckets": req.Buckets,
			"min_age": req.MinAge,
			"max_age": req.MaxAge,
		},
	})
}

// DistributionIncome handles GET /api/distribution/monthly_income?buckets=20.
func (h *Handler) DistributionIncome(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := IncomeDistributionRequest{Buckets: q.Int("buckets", defaultIncomeBuckets)}
	if q.err != nil {
		respondAPIError(w, http.StatusBadRequest, q.err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key:    fmt.Sprintf("income_hist:%d", req.Buckets),
		SQL:    database.IncomeDistributionQuery,
		Params: database.Params{"buckets": req.Buckets},
	})
}

// CorrelationNumeric handles GET /api/correlation/numeric.
func (h *Handler) CorrelationNumeric(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: "correlation_numeric",
		SQL: database.CorrelationQuery,
	})
}

// BoxplotIncomeByRole handles GET /api/boxplot/income_by_role.
func (h *Handler) BoxplotIncomeByRole(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: "boxplot_income_by_role",
		SQL: database.IncomeByRoleQuery,
	})
}

// ScatterAgeIncome handles GET /api/scatter/age_income?limit=1000.
func (h *Handler) ScatterAgeIncome(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	req := ScatterRequest{Limit: q.Int("limit", defaultScatterLimit)}
	if q.err != nil {
		respondAPIError(w, http.StatusBadRequest, q.err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key:    fmt.Sprintf("scatter_age_income:%d", req.Limit),
		SQL:    database.AgeIncomeScatterQuery,
		Params: database.Params{"row_limit": req.Limit},
	})
}

// RadarSatisfaction handles GET /api/radar/satisfaction.
func (h *Handler) RadarSatisfaction(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: "radar_satisfaction",
		SQL: database.SatisfactionRadarQuery,
	})
}

// PieGender handles GET /api/pie/gender.
func (h *Handler) PieGender(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r, analyticsQuery{
		Key: "pie_gender",
		SQL: database.GenderQuery,
	})
}
