// =============================================================================
// Compute Sales - Validation Helpers
// =============================================================================
//
// Input documents are decoded into untyped values (any). Before a value is
// trusted, it is inspected here:
//   - Shape checks: is it a list? an object? does it carry a field?
//   - Numeric coercion: turn a number or number-like text into a float64 or
//     an int64 under fixed, documented acceptance rules
//
// ACCEPTANCE RULES:
//   ToNumber  - numeric values (not booleans), or text that is a complete
//               decimal literal such as "2.5", " 10 ", "1e3". Non-finite
//               results are rejected.
//   ToInteger - integer values, numeric values with no fractional part
//               (JSON 4 or 4.0), or text that is a base-10 integer literal
//               such as "4" or "-2". Text like "4.0" or ".5" is rejected.
//
// Neither function relies on implicit conversion; every accepted type is
// listed in its type switch.
//
// =============================================================================

package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNotNumeric is returned by ToNumber for values that are not numbers.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrNotInteger is returned by ToInteger for values that are not integers.
	ErrNotInteger = errors.New("value is not an integer")
)

// decimalPattern matches a plain decimal float literal with optional exponent.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// integerPattern matches a base-10 integer literal with optional sign.
var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

// =============================================================================
// SHAPE CHECKS
// =============================================================================

// AsList returns v as a list when it is one.
func AsList(v any) ([]any, bool) {
	list, ok := v.([]any)
	return list, ok
}

// AsObject returns v as a key/value record when it is one.
func AsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Field returns the value stored under key.
// An explicit null is treated the same as an absent key.
func Field(obj map[string]any, key string) (any, bool) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Text renders a value as text, the way it is shown in diagnostics and used
// as a lookup key. Lists and objects are rendered as JSON.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case map[string]any, []any:
		// Render structured values as they appear in the input document.
		if b, err := json.Marshal(val); err == nil {
			return string(b)
		}
		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}

// =============================================================================
// NUMERIC COERCION
// =============================================================================

// ToNumber converts a number or number-like text into a float64.
func ToNumber(v any) (float64, error) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8:
		f = float64(val)
	case int16:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint8:
		f = float64(val)
	case uint16:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case json.Number:
		parsed, err := parseDecimal(val.String())
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		parsed, err := parseDecimal(val)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotNumeric, v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: non-finite value", ErrNotNumeric)
	}
	return f, nil
}

// ToInteger converts an integer, an integral number, or integer text into an int64.
func ToInteger(v any) (int64, error) {
	switch val := v.(type) {
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case int64:
		return val, nil
	case uint:
		return fromUnsigned(uint64(val))
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return fromUnsigned(val)
	case float64:
		return fromIntegralFloat(val)
	case float32:
		return fromIntegralFloat(float64(val))
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, nil
		}
		f, err := ToNumber(val)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, val.String())
		}
		return fromIntegralFloat(f)
	case string:
		s := strings.TrimSpace(val)
		if !integerPattern.MatchString(s) {
			return 0, fmt.Errorf("%w: %q", ErrNotInteger, val)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNotInteger, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, v)
	}
}

// parseDecimal parses trimmed text as a decimal float literal.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	return f, nil
}

func fromIntegralFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	// 2^63 is exactly representable; anything at or beyond it overflows int64.
	if f >= math.Exp2(63) || f < -math.Exp2(63) {
		return 0, fmt.Errorf("%w: %v out of range", ErrNotInteger, f)
	}
	return int64(f), nil
}

func fromUnsigned(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d out of range", ErrNotInteger, u)
	}
	return int64(u), nil
}
