// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		params   Params
		style    PlaceholderStyle
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "dollar placeholders in order",
			query:    "SELECT :a, :b",
			params:   Params{"a": 1, "b": "x"},
			style:    DollarPlaceholders,
			wantSQL:  "SELECT $1, $2",
			wantArgs: []any{1, "x"},
		},
		{
			name:     "dollar placeholders reuse repeated names",
			query:    "WHERE x > :min AND y < :max AND z > :min",
			params:   Params{"min": 1, "max": 9},
			style:    DollarPlaceholders,
			wantSQL:  "WHERE x > $1 AND y < $2 AND z > $1",
			wantArgs: []any{1, 9},
		},
		{
			name:     "question placeholders repeat arguments",
			query:    "WHERE x > :min AND z > :min",
			params:   Params{"min": 1},
			style:    QuestionPlaceholders,
			wantSQL:  "WHERE x > ? AND z > ?",
			wantArgs: []any{1, 1},
		},
		{
			name:     "casts are untouched",
			query:    "SELECT age::text, :n::int",
			params:   Params{"n": 3},
			style:    DollarPlaceholders,
			wantSQL:  "SELECT age::text, $1::int",
			wantArgs: []any{3},
		},
		{
			name:     "string literals are untouched",
			query:    "SELECT ':a', 'it'':b', :c",
			params:   Params{"c": true},
			style:    QuestionPlaceholders,
			wantSQL:  "SELECT ':a', 'it'':b', ?",
			wantArgs: []any{true},
		},
		{
			name:     "quoted identifiers are untouched",
			query:    `SELECT ":a" FROM t WHERE x = :a`,
			params:   Params{"a": 2},
			style:    DollarPlaceholders,
			wantSQL:  `SELECT ":a" FROM t WHERE x = $1`,
			wantArgs: []any{2},
		},
		{
			name:     "comments are untouched",
			query:    "SELECT 1 -- :a\n/* :b */ WHERE x = :c",
			params:   Params{"c": 4},
			style:    DollarPlaceholders,
			wantSQL:  "SELECT 1 -- :a\n/* :b */ WHERE x = $1",
			wantArgs: []any{4},
		},
		{
			name:    "colon followed by digit is not a parameter",
			query:   "SELECT '10:30', x[1:2]",
			params:  nil,
			style:   DollarPlaceholders,
			wantSQL: "SELECT '10:30', x[1:2]",
		},
		{
			name:     "identifier with digits and underscores",
			query:    "LIMIT :row_limit2",
			params:   Params{"row_limit2": 5},
			style:    QuestionPlaceholders,
			wantSQL:  "LIMIT ?",
			wantArgs: []any{5},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotSQL, gotArgs, err := Bind(tt.query, tt.params, tt.style)
			if err != nil {
				t.Fatalf("Bind() error = %v", err)
			}
			if gotSQL != tt.wantSQL {
				t.Errorf("Expected SQL %q, got %q", tt.wantSQL, gotSQL)
			}
			if diff := cmp.Diff(tt.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindMissingParameter(t *testing.T) {
	t.Parallel()

	_, _, err := Bind("SELECT :present, :absent", Params{"present": 1}, DollarPlaceholders)
	if err == nil {
		t.Fatal("Expected error for missing parameter")
	}

	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("Expected *QueryError, got %T", err)
	}
	if IsUnavailable(err) {
		t.Error("Missing parameter must not be classified as unavailable")
	}
	if qe.Query != "SELECT :present, :absent" {
		t.Errorf("Expected original query on error, got %q", qe.Query)
	}
}
