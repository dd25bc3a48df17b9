// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

// Package logging provides zerolog-based structured logging for the API.
//
// JSON output is the default; console output is for development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("key", key).Msg("Snapshot refreshed")
//
// Request handlers log through Ctx, which adds the request and correlation
// IDs placed in the context by the router middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Database unreachable, serving snapshot")
//
// NewSlogLogger bridges to log/slog for libraries that require it, such as
// the sutureslog event hook used by the supervisor tree.
package logging
