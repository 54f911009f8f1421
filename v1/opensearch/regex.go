package opensearch

import "strings"

// wildcardPattern decides how a $regex pattern compiles. Patterns with a
// leading ^ and/or trailing $ anchor become wildcard queries: anchors are
// stripped, literal wildcard metacharacters are escaped, and a * is added at
// each un-anchored end. Patterns without anchors stay regexp queries on the
// raw pattern.
func wildcardPattern(pattern string) (string, bool) {
	anchoredStart := strings.HasPrefix(pattern, "^")
	anchoredEnd := strings.HasSuffix(pattern, "$")
	if !anchoredStart && !anchoredEnd {
		return "", false
	}

	trimmed := pattern
	if anchoredStart {
		trimmed = trimmed[1:]
	}
	if anchoredEnd && len(trimmed) > 0 {
		trimmed = trimmed[:len(trimmed)-1]
	}

	out := escapeWildcard(trimmed)
	if !anchoredStart {
		out = "*" + out
	}
	if !anchoredEnd {
		out = out + "*"
	}
	return out, true
}

// escapeWildcard escapes the wildcard-query metacharacters in a literal
// string. Backslashes are escaped first, then * and ?; doing it in any other
// order would double-escape the backslashes just introduced.
func escapeWildcard(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `*`, `\*`)
	s = strings.ReplaceAll(s, `?`, `\?`)
	return s
}
