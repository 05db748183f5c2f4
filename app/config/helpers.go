package config

import (
	"fmt"
	"strings"
)

// NormalizePath converts a field path spec into an ordered key sequence.
// Dot is the primary separator; "+" is an alternate separator translated to
// dot so that literal tokens containing a dot stay delimitable after
// substitution. List inputs are flattened, each element may itself contain
// separators, and blank segments are trimmed out.
func NormalizePath(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return splitSegments(v)
	case []any:
		var out []string
		for _, item := range v {
			switch elem := item.(type) {
			case string:
				out = append(out, splitSegments(elem)...)
			case []any:
				out = append(out, NormalizePath(elem)...)
			default:
				out = append(out, fmt.Sprint(item))
			}
		}
		return trimBlank(out)
	case []string:
		var out []string
		for _, item := range v {
			out = append(out, splitSegments(item)...)
		}
		return trimBlank(out)
	default:
		return nil
	}
}

func splitSegments(s string) []string {
	parts := strings.Split(strings.ReplaceAll(s, "+", "."), ".")
	return trimBlank(parts)
}

func trimBlank(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeList converts a comma-separated string or a list into a trimmed
// string slice. Used for the target-channel allow-list.
func normalizeList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return trimBlank(strings.Split(v, ","))
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return trimBlank(out)
	case []string:
		return trimBlank(v)
	default:
		return nil
	}
}
