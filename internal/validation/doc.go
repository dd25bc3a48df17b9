// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package validation provides struct validation using go-playground/validator v10.
//
// Request structs carry a `query` tag naming the URL parameter and a
// `validate` tag with the rules. Errors are reported with the query
// parameter names:
//
//	type AgeDistributionRequest struct {
//	    Buckets int `query:"buckets" validate:"min=1,max=100"`
//	    MinAge  int `query:"min_age" validate:"min=0,max=120"`
//	    MaxAge  int `query:"max_age" validate:"min=1,max=120,gtfield=MinAge"`
//	}
//
// The custom "dimension" tag accepts only the groupable employee columns
// (department, job_role, ...).
package validation
