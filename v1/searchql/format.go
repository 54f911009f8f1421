package searchql

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// formatValue renders a literal as a query-language token. Booleans render
// as 1/0, null as NULL, dates as quoted RFC 3339 strings.
func formatValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "NULL", true
	case bool:
		if x {
			return "1", true
		}
		return "0", true
	case string:
		return quote(x), true
	case time.Time, *time.Time:
		s, ok := filter.NormalizeScalar(v).(string)
		if !ok {
			return "NULL", true
		}
		return quote(s), true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", x), true
	}
	return "", false
}

// quote single-quotes a string, switching to double quotes when the string
// contains an apostrophe so no escaping is needed.
func quote(s string) string {
	if strings.Contains(s, "'") {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

func formatList(values []any) (string, bool) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := formatValue(v)
		if !ok {
			return "", false
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), true
}
