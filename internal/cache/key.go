// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package cache

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// DeriveKey builds a deterministic cache key from query text and parameters.
// Parameters are serialized in name order, so {a:1,b:2} and {b:2,a:1} produce
// the same key. The key contains no process-local input and is stable across
// restarts.
//
// Format: "q:<first 16 bytes of sha256(query NUL canonical-params)>".
func DeriveKey(query string, params map[string]any) string {
	h := sha256.New()
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write(CanonicalParams(params))
	return fmt.Sprintf("q:%x", h.Sum(nil)[:16])
}

// CanonicalParams serializes params as a JSON object with keys in sorted
// order. Values that cannot be encoded as JSON (NaN, infinities, channels)
// are written as {"$v":"<%v form>"} so they never collide with a string
// parameter holding the same text.
func CanonicalParams(params map[string]any) []byte {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(name)
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(params[name])
		if err != nil {
			v, _ = json.Marshal(map[string]string{"$v": fmt.Sprintf("%v", params[name])})
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
