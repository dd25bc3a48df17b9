// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"math"
	"math/big"
	"time"

	"github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// normalizeValue converts driver-specific scalar types into the JSON-friendly
// set used by models.Rows: nil, bool, int64, float64, string, time.Time.
// NaN and infinite floats become nil.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case int64, bool, string:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case int8:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return float64(x)
		}
		return int64(x)
	case float32:
		return finiteOrNil(float64(x))
	case float64:
		return finiteOrNil(x)
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC()
	case *big.Int:
		if x == nil {
			return nil
		}
		if x.IsInt64() {
			return x.Int64()
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return finiteOrNil(f)
	case pgtype.Numeric:
		return numericToFloat(x)
	case duckdb.Decimal:
		if x.Value == nil {
			return nil
		}
		return finiteOrNil(decimal.NewFromBigInt(x.Value, -int32(x.Scale)).InexactFloat64())
	default:
		return x
	}
}

func numericToFloat(n pgtype.Numeric) any {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil
	}
	return finiteOrNil(decimal.NewFromBigInt(n.Int, n.Exp).InexactFloat64())
}

func finiteOrNil(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

func normalizeRow(values []any) []any {
	for i, v := range values {
		values[i] = normalizeValue(v)
	}
	return values
}
