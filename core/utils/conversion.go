package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToPosition converts a host metadata value to a sort position.
// It handles JSON numbers (float64, json.Number), integer types and numeric
// strings. Non-integral, negative or unparsable values report ok=false.
func ToPosition(val any) (int, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case int:
		return v, v >= 0
	case int64:
		return int(v), v >= 0
	case int32:
		return int(v), v >= 0
	case uint:
		return int(v), true
	case uint64:
		return int(v), true
	case uint32:
		return int(v), true
	case float64:
		if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case float32:
		return ToPosition(float64(v))
	case json.Number:
		return ToPosition(string(v))
	case string:
		s := strings.TrimSpace(v)
		if i, err := strconv.Atoi(s); err == nil {
			return i, i >= 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ToPosition(f)
		}
		return 0, false
	default:
		return 0, false
	}
}

// ToString renders a metadata value for console output.
// Integral floats lose their fraction, nil becomes "", and composite values
// are rendered as compact JSON.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}
