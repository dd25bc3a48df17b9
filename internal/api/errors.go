// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/attrition/internal/executor"
)

// Error codes returned in the error envelope.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeDatabase           = "DATABASE_ERROR"
)

// errSummaryEmpty is returned when a single-object endpoint gets no row back.
var errSummaryEmpty = errors.New("summary query returned no rows")

// statusForError maps an executor error to an HTTP status, error code and
// client-facing message. Unavailability is checked first: its cause also
// matches database.ErrStoreUnavailable.
func statusForError(err error) (int, string, string) {
	if errors.Is(err, executor.ErrServiceUnavailable) {
		return http.StatusServiceUnavailable, CodeServiceUnavailable,
			"Database unavailable and no cached data exists for this query"
	}
	return http.StatusInternalServerError, CodeDatabase, "Failed to execute query"
}
