// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/tomtom215/attrition/internal/logging"
)

// ErrStoreUnavailable marks transient failures to reach or complete against
// the backing store. Callers may substitute cached data for these.
var ErrStoreUnavailable = errors.New("backing store unavailable")

// QueryError reports a query the store reached but rejected: bad SQL, unknown
// column, type mismatch, missing parameter. It is never a transient failure.
type QueryError struct {
	Query    string
	SQLState string
	Err      error
}

func (e *QueryError) Error() string {
	if e.SQLState != "" {
		return fmt.Sprintf("query failed (SQLSTATE %s): %v", e.SQLState, e.Err)
	}
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is a store-unavailable failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsQueryError reports whether err is a *QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// unavailable wraps cause so that it matches both ErrStoreUnavailable and cause.
func unavailable(cause error) error {
	if errors.Is(cause, ErrStoreUnavailable) {
		return cause
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, cause)
}

// isTransportError detects failures below the SQL layer: timeouts,
// cancellation, refused or dropped connections.
func isTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return isConnectionError(err)
}

// isConnectionError checks the error text for connection loss reported by
// drivers that do not expose typed errors.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"database is closed",
		"closed pool",
		"conn closed",
		"failed to connect",
		"no such host",
		"i/o timeout",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// closeQuietly closes a resource and logs any error
func closeQuietly(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}
