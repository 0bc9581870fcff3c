package tabular

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissing is returned by strict accessors when a key is absent or null.
var ErrMissing = errors.New("tabular: value missing")

// ErrNotNumeric is returned by strict accessors when a value cannot be coerced to a number.
var ErrNotNumeric = errors.New("tabular: value not numeric")

// Record is one flattened row keyed by composite column name.
type Record map[string]any

// Has reports whether key is present with a non-null value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Value returns the raw value stored under key.
func (r Record) Value(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Number returns the value under key coerced to float64, failing on absent or
// non-numeric values.
func (r Record) Number(key string) (float64, error) {
	v, ok := r.Value(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissing, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s=%v", ErrNotNumeric, key, v)
	}
	return f, nil
}

// Float returns the numeric value under key or def when absent or non-numeric.
func (r Record) Float(key string, def float64) float64 {
	f, err := r.Number(key)
	if err != nil {
		return def
	}
	return f
}

// Int returns the value under key as an int or def when absent, non-numeric or fractional.
func (r Record) Int(key string, def int) int {
	f, err := r.Number(key)
	if err != nil || f != math.Trunc(f) {
		return def
	}
	return int(f)
}

// String returns the value under key formatted as a string or def when absent.
func (r Record) String(key string, def string) string {
	v, ok := r.Value(key)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// HasColumn reports whether any record carries a non-null value for key.
func HasColumn(records []Record, key string) bool {
	for _, r := range records {
		if r.Has(key) {
			return true
		}
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
