// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package services provides suture.Service wrappers for the API process.

Each wrapper implements suture's Serve(ctx) contract and fmt.Stringer so
supervisor events name the service.

# Available Services

HTTPServerService wraps *http.Server. ListenAndServe runs until the
supervisor cancels the context, then Shutdown drains in-flight requests.

StoreMonitorService pings the backing store on an interval and publishes
the db_up gauge. Failed pings are logged on transition only and never
restart the service.
*/
package services
