package qdrant

import (
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// filterCondition embeds a sub-filter as a single condition.
func filterCondition(f *qdrant.Filter) *qdrant.Condition {
	return &qdrant.Condition{
		ConditionOneOf: &qdrant.Condition_Filter{Filter: f},
	}
}

// matchAll is the universal condition: an empty filter matches every point.
func matchAll() *qdrant.Condition {
	return filterCondition(&qdrant.Filter{})
}

// matchNone matches no point.
func matchNone() *qdrant.Condition {
	return filterCondition(&qdrant.Filter{
		MustNot: []*qdrant.Condition{matchAll()},
	})
}

// negated inverts a single condition.
func negated(c *qdrant.Condition) *qdrant.Condition {
	return filterCondition(&qdrant.Filter{
		MustNot: []*qdrant.Condition{c},
	})
}

// equalityCondition builds the type-specific match condition for a value.
// JSON numbers arrive as float64 and are matched as integers, like the
// payloads the store writes.
func equalityCondition(key string, v any) (*qdrant.Condition, bool) {
	switch x := v.(type) {
	case nil:
		return qdrant.NewIsNull(key), true
	case string:
		return qdrant.NewMatch(key, x), true
	case bool:
		return qdrant.NewMatchBool(key, x), true
	case int:
		return qdrant.NewMatchInt(key, int64(x)), true
	case int64:
		return qdrant.NewMatchInt(key, x), true
	case float64:
		return qdrant.NewMatchInt(key, int64(x)), true
	case time.Time:
		ts := timestamppb.New(x)
		return qdrant.NewDatetimeRange(key, &qdrant.DatetimeRange{
			Gte: ts,
			Lte: ts,
		}), true
	}
	return nil, false
}

// membershipCondition builds a match-any or match-except condition over a
// homogeneous value list. Empty lists keep the canonical semantics: IN over
// nothing matches no point, NOT IN over nothing matches all of them.
func membershipCondition(key string, values []any, except bool) (*qdrant.Condition, bool) {
	if len(values) == 0 {
		if except {
			return matchAll(), true
		}
		return matchNone(), true
	}

	switch values[0].(type) {
	case string:
		strs := make([]string, len(values))
		for i, v := range values {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			strs[i] = s
		}
		if except {
			return qdrant.NewMatchExceptKeywords(key, strs...), true
		}
		return qdrant.NewMatchKeywords(key, strs...), true

	case int, int64, float64:
		ints := make([]int64, len(values))
		for i, v := range values {
			n, ok := toInt64(v)
			if !ok {
				return nil, false
			}
			ints[i] = n
		}
		if except {
			return qdrant.NewMatchExceptInts(key, ints...), true
		}
		return qdrant.NewMatchInts(key, ints...), true
	}
	return nil, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// rangeBounds accumulates order-operator bounds applied to one field and
// renders them as a single range condition. Bounds must be either all
// numeric or all dates.
type rangeBounds struct {
	numeric *qdrant.Range
	date    *qdrant.DatetimeRange
}

func (r *rangeBounds) addNumeric(op filter.Operator, v float64) bool {
	if r.date != nil {
		return false
	}
	if r.numeric == nil {
		r.numeric = &qdrant.Range{}
	}
	switch op {
	case filter.OpGt:
		r.numeric.Gt = &v
	case filter.OpGte:
		r.numeric.Gte = &v
	case filter.OpLt:
		r.numeric.Lt = &v
	case filter.OpLte:
		r.numeric.Lte = &v
	}
	return true
}

func (r *rangeBounds) addDate(op filter.Operator, t time.Time) bool {
	if r.numeric != nil {
		return false
	}
	if r.date == nil {
		r.date = &qdrant.DatetimeRange{}
	}
	ts := timestamppb.New(t)
	switch op {
	case filter.OpGt:
		r.date.Gt = ts
	case filter.OpGte:
		r.date.Gte = ts
	case filter.OpLt:
		r.date.Lt = ts
	case filter.OpLte:
		r.date.Lte = ts
	}
	return true
}

func (r *rangeBounds) condition(key string) *qdrant.Condition {
	if r.date != nil {
		return qdrant.NewDatetimeRange(key, r.date)
	}
	if r.numeric != nil {
		return qdrant.NewRange(key, r.numeric)
	}
	return nil
}
