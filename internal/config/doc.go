// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

/*
Package config loads and validates the attrition API configuration.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file, then environment variables. Environment names are mapped explicitly in
envTransformFunc; anything unmapped is ignored.

Minimal production setup. Wildcard CORS origins are rejected when
ENVIRONMENT=production:

	ENVIRONMENT=production
	DATABASE_URL=postgres://analytics:secret@db:5432/hr
	CORS_ORIGINS=https://dashboard.example.com

Embedded setup without a Postgres server:

	DATABASE_DRIVER=duckdb
	DUCKDB_SEED_CSV=/data/WA_Fn-UseC_-HR-Employee-Attrition.csv

Example config.yaml:

	database:
	  driver: postgres
	  url: postgres://analytics:secret@db:5432/hr
	  query_timeout: 10s
	  ping_interval: 30s
	cache:
	  capacity: 512
	security:
	  cors_origins:
	    - https://dashboard.example.com
*/
package config
