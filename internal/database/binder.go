// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderStyle selects how named parameters are rewritten.
type PlaceholderStyle int

const (
	// DollarPlaceholders rewrites to $1, $2, ... and reuses the index of a
	// repeated name (Postgres).
	DollarPlaceholders PlaceholderStyle = iota

	// QuestionPlaceholders rewrites every occurrence to ? and repeats the
	// argument (DuckDB).
	QuestionPlaceholders
)

// Bind rewrites ":name" parameters in query into positional placeholders and
// returns the matching argument list. Quoted literals, quoted identifiers,
// comments and "::" casts are left untouched. A referenced name missing from
// params is a *QueryError.
func Bind(query string, params Params, style PlaceholderStyle) (string, []any, error) {
	var (
		out     strings.Builder
		args    []any
		indexes map[string]int
	)
	out.Grow(len(query) + 8)

	n := len(query)
	for i := 0; i < n; {
		c := query[i]

		switch {
		case c == '\'' || c == '"':
			end := skipQuoted(query, i, c)
			out.WriteString(query[i:end])
			i = end

		case c == '-' && i+1 < n && query[i+1] == '-':
			end := strings.IndexByte(query[i:], '\n')
			if end < 0 {
				end = n
			} else {
				end += i
			}
			out.WriteString(query[i:end])
			i = end

		case c == '/' && i+1 < n && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				end = n
			} else {
				end += i + 4
			}
			out.WriteString(query[i:end])
			i = end

		case c == ':' && i+1 < n && query[i+1] == ':':
			out.WriteString("::")
			i += 2

		case c == ':' && i+1 < n && isIdentStart(query[i+1]):
			j := i + 1
			for j < n && isIdentPart(query[j]) {
				j++
			}
			name := query[i+1 : j]
			value, ok := params[name]
			if !ok {
				return "", nil, &QueryError{Query: query, Err: fmt.Errorf("missing value for parameter %q", name)}
			}

			switch style {
			case DollarPlaceholders:
				if indexes == nil {
					indexes = make(map[string]int)
				}
				idx, seen := indexes[name]
				if !seen {
					args = append(args, value)
					idx = len(args)
					indexes[name] = idx
				}
				out.WriteByte('$')
				out.WriteString(strconv.Itoa(idx))
			default:
				args = append(args, value)
				out.WriteByte('?')
			}
			i = j

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), args, nil
}

// skipQuoted returns the index just past the quoted section starting at i.
// A doubled quote inside the section is an escaped quote.
func skipQuoted(s string, i int, quote byte) int {
	for j := i + 1; j < len(s); j++ {
		if s[j] != quote {
			continue
		}
		if j+1 < len(s) && s[j+1] == quote {
			j++
			continue
		}
		return j + 1
	}
	return len(s)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
