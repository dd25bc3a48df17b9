// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

// Request structs for endpoints with query parameters. The `query` tag names
// the parameter as clients send it and is used in validation messages; the
// `validate` tag follows go-playground/validator v10 syntax, plus the custom
// "dimension" rule that accepts only groupable employee columns.
//
// Example usage:
//
//	q := newQueryParams(r)
//	req := TenureCurveRequest{MaxYears: q.Int("max_years", 40)}
//	if q.err != nil {
//	    respondAPIError(w, http.StatusBadRequest, q.err)
//	    return
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, http.StatusBadRequest, apiErr)
//	    return
//	}

// Query parameter defaults.
const (
	defaultAgeBuckets    = 9
	defaultMinAge        = 18
	defaultMaxAge        = 60
	defaultIncomeBuckets = 20
	defaultMaxYears      = 40
	defaultScatterLimit  = 1000
)

// AttritionByRequest is the query of GET /api/attrition/by.
type AttritionByRequest struct {
	Dim string `query:"dim" validate:"required,dimension"`
}

// AttritionByTwoRequest is the query of GET /api/attrition/by_two.
type AttritionByTwoRequest struct {
	Dim1 string `query:"dim1" validate:"required,dimension"`
	Dim2 string `query:"dim2" validate:"required,dimension,nefield=Dim1"`
}

// AgeDistributionRequest is the query of GET /api/distribution/age.
// Ages outside [MinAge, MaxAge) fall into bucket 0 or Buckets+1.
type AgeDistributionRequest struct {
	Buckets int `query:"buckets" validate:"min=1,max=100"`
	MinAge  int `query:"min_age" validate:"min=0,max=120"`
	MaxAge  int `query:"max_age" validate:"min=1,max=150,gtfield=MinAge"`
}

// IncomeDistributionRequest is the query of GET /api/distribution/monthly_income.
type IncomeDistributionRequest struct {
	Buckets int `query:"buckets" validate:"min=1,max=200"`
}

// TenureCurveRequest is the query of GET /api/attrition/tenure_curve.
type TenureCurveRequest struct {
	MaxYears int `query:"max_years" validate:"min=0,max=60"`
}

// ScatterRequest is the query of GET /api/scatter/age_income.
type ScatterRequest struct {
	Limit int `query:"limit" validate:"min=1,max=5000"`
}
