// Package shared provides common utility functions used across multiple
// packages in the xsysroot codebase.
package shared

import (
	"fmt"
	"strings"
)

// LookupPath walks nested tables by key segments. It reports false when any
// segment is missing or an intermediate value is not a table.
func LookupPath(table map[string]any, segments ...string) (any, bool) {
	if table == nil || len(segments) == 0 {
		return nil, false
	}
	var current any = table
	for _, segment := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// LookupDotted splits key on dots and delegates to LookupPath.
func LookupDotted(table map[string]any, key string) (any, bool) {
	if strings.TrimSpace(key) == "" {
		return nil, false
	}
	return LookupPath(table, strings.Split(key, ".")...)
}

// StringList accepts either a whitespace separated string or a list of
// strings, the two shapes cargo accepts for flag settings.
func StringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return strings.Fields(v), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case []string:
		return append([]string(nil), v...), true
	default:
		return nil, false
	}
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
