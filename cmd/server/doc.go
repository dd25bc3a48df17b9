// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package main is the entry point for the attrition analytics API.

The server answers read-only HR attrition queries. When the backing store
is unreachable it serves the last successful result for the same query from
an in-memory snapshot cache and marks the response as stale.

# Application Architecture

	RootSupervisor ("attrition")
	├── DataSupervisor ("data-layer")
	│   └── StoreMonitorService (DATABASE_PING_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: PostgreSQL (pgx pool) or embedded DuckDB
 4. Circuit breaker around the store (BREAKER_ENABLED)
 5. Snapshot cache and fallback executor
 6. Supervisor Tree: Suture v4 process supervision

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	DATABASE_DRIVER=postgres     # postgres or duckdb
	DATABASE_URL=postgres://analytics:secret@db:5432/hr
	DUCKDB_SEED_CSV=<path>       # duckdb only; loads the employees table
	CACHE_CAPACITY=256           # snapshots kept for fallback
	HTTP_PORT=8000
	CORS_ORIGINS=*
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, then the store is closed.

# Usage Examples

Embedded DuckDB with the sample dataset:

	export DATABASE_DRIVER=duckdb
	export DUCKDB_SEED_CSV=./data/WA_Fn-UseC_-HR-Employee-Attrition.csv
	go run ./cmd/server

Build with a version string:

	go build -ldflags "-X main.version=1.0.0" ./cmd/server
*/
package main
