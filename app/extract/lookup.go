package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lookup walks a decoded payload along an ordered key path, indexing
// map-like nodes. The walk stops and reports absent the instant a node is
// not a map or lacks the key. No wildcards, no positional list indexing.
// An empty path always resolves to absent.
func Lookup(node any, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	current := node
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// String renders a scalar payload value as text. Absent and nil values
// render as the empty string.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int extracts an integer from a scalar payload value.
func Int(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
