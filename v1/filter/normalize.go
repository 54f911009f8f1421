package filter

import "time"

// NormalizeScalar maps a source literal to the default backend encoding:
// dates become RFC 3339 (ISO-8601) strings, nil passes through as the
// backend null sentinel, and numbers, strings and booleans pass through
// unchanged. Normalization is deterministic and total; translators with
// stricter literal encodings (e.g. booleans as 1/0 tokens) layer their own
// rules on top.
func NormalizeScalar(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// NormalizeSlice applies NormalizeScalar to every element, returning a fresh
// slice. The input is never mutated.
func NormalizeSlice(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = NormalizeScalar(v)
	}
	return out
}
