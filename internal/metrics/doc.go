// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package metrics provides Prometheus instrumentation for the attrition API.

Metric families:

  - db_query_*: latency and failures of backing-store queries, by driver
  - api_*: request count, latency and in-flight requests, by endpoint
  - cache_*: snapshot store hits, misses, size and capacity evictions
  - executor_*: how each request was answered (live, snapshot, unavailable,
    query_error) and the age of snapshots served during outages
  - circuit_breaker_*: state and transitions of the store circuit breaker

All collectors are registered on the default registry through promauto and
exposed by the /metrics route.
*/
package metrics
