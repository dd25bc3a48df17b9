// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Rows is an ordered result set. Column order and row order are those
// returned by the database; JSON encoding preserves both, so each row is
// rendered as an object whose keys follow the SELECT list.
//
// Rows held by the snapshot store are shared between requests and must be
// treated as read-only.
type Rows struct {
	Columns []string
	Values  [][]any
}

// NewRows creates an empty result set with the given columns.
func NewRows(columns ...string) Rows {
	return Rows{Columns: columns, Values: [][]any{}}
}

// Append adds one row. values must have one entry per column.
func (r *Rows) Append(values ...any) {
	r.Values = append(r.Values, values)
}

// Len returns the number of rows.
func (r Rows) Len() int {
	return len(r.Values)
}

// Row returns row i.
func (r Rows) Row(i int) Row {
	return Row{Columns: r.Columns, Values: r.Values[i]}
}

// Records returns the rows as column-keyed maps. Column order is lost.
func (r Rows) Records() []map[string]any {
	out := make([]map[string]any, 0, len(r.Values))
	for i := range r.Values {
		out = append(out, r.Row(i).Map())
	}
	return out
}

// MarshalJSON renders the rows as an array of ordered objects.
func (r Rows) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := range r.Values {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := r.Row(i).writeJSON(&buf); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Row is a single ordered row.
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of column col.
func (r Row) Get(col string) (any, bool) {
	for i, c := range r.Columns {
		if c == col {
			return r.Values[i], true
		}
	}
	return nil, false
}

// Map returns the row as a column-keyed map.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.Columns))
	for i, c := range r.Columns {
		m[c] = r.Values[i]
	}
	return m
}

// MarshalJSON renders the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r Row) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var v any
		if i < len(r.Values) {
			v = r.Values[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}
