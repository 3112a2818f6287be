package analyses

// Get returns v[key] when v is a mapping that contains key, else def.
// Non-mapping values (strings, slices, numbers, nil) have no fields, so
// every lookup on them yields the default. This is the single chokepoint
// the extractor uses to survive malformed upstream documents.
func Get(v any, key string, def any) any {
	m, ok := asMap(v)
	if !ok {
		return def
	}
	val, ok := m[key]
	if !ok {
		return def
	}
	return val
}

// GetMap returns v[key] as a mapping, or an empty mapping.
func GetMap(v any, key string) map[string]any {
	m, ok := asMap(Get(v, key, nil))
	if !ok {
		return map[string]any{}
	}
	return m
}

// StringSlice coerces v into a slice of strings on a best-effort basis.
// Scalars, mappings, and nil yield nil; non-string elements are skipped.
func StringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			return typed
		}
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Truthy reports whether v would trigger a milestone guard: nil, false,
// empty strings, zero numbers, and empty slices/mappings all count as false.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case Document:
		return len(t) > 0
	default:
		return true
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Document:
		return map[string]any(t), true
	default:
		return nil, false
	}
}
