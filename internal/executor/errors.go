// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package executor

import (
	"errors"
	"fmt"
)

// ErrServiceUnavailable is returned when the backing store is unreachable and
// no snapshot exists for the requested key.
var ErrServiceUnavailable = errors.New("service unavailable")

// UnavailableError carries the key that had no snapshot and the store
// failure that prevented a live answer.
type UnavailableError struct {
	Key   string
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("database unreachable and no cached data exists for this query (key %q): %v", e.Key, e.Cause)
}

// Is matches ErrServiceUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
