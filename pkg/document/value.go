package document

import (
	"encoding/json"
	"math/big"
)

// Number returns the numeric value of v if it is a JSON number.
// It accepts json.Number as produced by Decode as well as the native numeric
// types other decoders produce. Strings are never numbers.
func Number(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		return new(big.Rat).SetString(string(n))
	case float64:
		if r := new(big.Rat); r.SetFloat64(n) != nil {
			return r, true
		}
		return nil, false
	case float32:
		if r := new(big.Rat); r.SetFloat64(float64(n)) != nil {
			return r, true
		}
		return nil, false
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int32:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Rat).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	}
	return nil, false
}

// Equal reports whether a and b are the same JSON value.
// Numbers compare by value (1 equals 1.0), objects by key set and members,
// arrays element-wise.
func Equal(a, b any) bool {
	if ra, ok := Number(a); ok {
		rb, ok := Number(b)
		return ok && ra.Cmp(rb) == 0
	}

	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, xv := range x {
			yv, ok := y[k]
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}
