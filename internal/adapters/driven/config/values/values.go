// Package values converts loosely typed configuration values, as decoded
// from TOML or set in memory, into the types the ConfigStore port returns.
// Values of the wrong type convert to the zero value.
package values

import (
	"math"
	"strings"
)

// String returns v if it is a string.
func String(v any) string {
	s, _ := v.(string)
	return s
}

// Int returns v as an int. TOML decodes integers as int64; whole floats
// are accepted too.
func Int(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		if n == math.Trunc(n) {
			return int(n)
		}
	}
	return 0
}

// Float returns v as a float64. TOML writes 2.0 back as 2, so integers
// are accepted.
func Float(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// Bool returns v if it is a bool.
func Bool(v any) bool {
	b, _ := v.(bool)
	return b
}

// StringSlice returns the string elements of v. TOML arrays decode as []any.
func StringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Flatten turns nested tables into dot keys: {"a": {"b": 1}} becomes {"a.b": 1}.
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten(out, m, "")
	return out
}

func flatten(out, m map[string]any, prefix string) {
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(out, nested, k)
			continue
		}
		out[k] = v
	}
}

// Nest is the inverse of Flatten, so saved files use [table] sections.
// A key that is both a value and a table prefix keeps the table.
func Nest(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for key, v := range flat {
		parts := strings.Split(key, ".")
		table := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := table[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				table[p] = next
			}
			table = next
		}
		leaf := parts[len(parts)-1]
		if _, isTable := table[leaf].(map[string]any); !isTable {
			table[leaf] = v
		}
	}
	return out
}
