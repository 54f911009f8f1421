package couchbase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

func mustTranslate(t *testing.T, raw filter.Filter) Query {
	t.Helper()
	q, err := New(DefaultConfig()).Translate(raw)
	require.NoError(t, err)
	return q
}

func TestTranslate_MixedTypesOnOneField(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"age": map[string]any{"$gt": 5, "$lt": "10"},
	})
	require.ErrorIs(t, err, filter.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "age")
	assert.Contains(t, err.Error(), "number")
	assert.Contains(t, err.Error(), "string")
}

func TestTranslate_MixedTypesInsideIn(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"code": map[string]any{"$in": []any{1, "one"}},
	})
	require.ErrorIs(t, err, filter.ErrTypeMismatch)
}

func TestTranslate_TypedEquality(t *testing.T) {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  filter.Filter
		want Query
	}{
		{
			"string",
			filter.Filter{"status": "active"},
			Query{"field": "status", "term": "active"},
		},
		{
			"number",
			filter.Filter{"age": 42},
			Query{
				"field":         "age",
				"min":           42,
				"inclusive_min": true,
				"max":           42,
				"inclusive_max": true,
			},
		},
		{
			"boolean",
			filter.Filter{"active": true},
			Query{"field": "active", "bool": true},
		},
		{
			"date",
			filter.Filter{"created_at": date},
			Query{
				"field":           "created_at",
				"start":           "2024-05-01T12:00:00Z",
				"inclusive_start": true,
				"end":             "2024-05-01T12:00:00Z",
				"inclusive_end":   true,
			},
		},
		{
			"null",
			filter.Filter{"meta": nil},
			Query{"must_not": Query{"disjuncts": []Query{
				{"field": "meta", "wildcard": "*"},
			}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustTranslate(t, tt.raw))
		})
	}
}

func TestTranslate_NotEqual(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"status": map[string]any{"$ne": "archived"},
	})
	want := Query{"must_not": Query{"disjuncts": []Query{
		{"field": "status", "term": "archived"},
	}}}
	assert.Equal(t, want, got)
}

func TestTranslate_NotEqualNullMeansExists(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"meta": map[string]any{"$ne": nil},
	})
	assert.Equal(t, Query{"field": "meta", "wildcard": "*"}, got)
}

func TestTranslate_InAndNin(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"status": map[string]any{"$in": []any{"a", "b"}},
	})
	want := Query{"disjuncts": []Query{
		{"field": "status", "term": "a"},
		{"field": "status", "term": "b"},
	}}
	assert.Equal(t, want, got)

	got = mustTranslate(t, filter.Filter{
		"status": map[string]any{"$nin": []any{"a"}},
	})
	want = Query{"must_not": Query{"disjuncts": []Query{
		{"field": "status", "term": "a"},
	}}}
	assert.Equal(t, want, got)
}

func TestTranslate_Exists(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"meta": map[string]any{"$exists": true},
	})
	assert.Equal(t, Query{"field": "meta", "wildcard": "*"}, got)

	got = mustTranslate(t, filter.Filter{
		"meta": map[string]any{"$exists": false},
	})
	want := Query{"must_not": Query{"disjuncts": []Query{
		{"field": "meta", "wildcard": "*"},
	}}}
	assert.Equal(t, want, got)
}

func TestTranslate_RangeBoundsMerge(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"age": map[string]any{"$gte": 18, "$lt": 65},
	})
	want := Query{
		"field":         "age",
		"min":           18,
		"inclusive_min": true,
		"max":           65,
		"inclusive_max": false,
	}
	assert.Equal(t, want, got)
}

func TestTranslate_DateRangeUsesStartEnd(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got := mustTranslate(t, filter.Filter{
		"created_at": map[string]any{
			"$gt":  time.Date(2024, 1, 1, 1, 0, 0, 0, loc),
			"$lte": time.Date(2024, 6, 1, 1, 0, 0, 0, loc),
		},
	})
	want := Query{
		"field":           "created_at",
		"start":           "2024-01-01T00:00:00Z",
		"inclusive_start": false,
		"end":             "2024-06-01T00:00:00Z",
		"inclusive_end":   true,
	}
	assert.Equal(t, want, got)
}

func TestTranslate_StringRangeUsesMinMax(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"name": map[string]any{"$gte": "a", "$lt": "m"},
	})
	want := Query{
		"field":         "name",
		"min":           "a",
		"inclusive_min": true,
		"max":           "m",
		"inclusive_max": false,
	}
	assert.Equal(t, want, got)
}

func TestTranslate_LogicalComposition(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"age":    map[string]any{"$gte": 18},
		"status": "active",
	})
	want := Query{"conjuncts": []Query{
		{"field": "age", "min": 18, "inclusive_min": true},
		{"field": "status", "term": "active"},
	}}
	assert.Equal(t, want, got)

	got = mustTranslate(t, filter.Filter{
		"$or": []any{
			map[string]any{"status": "active"},
			map[string]any{"status": "pending"},
		},
	})
	want = Query{"disjuncts": []Query{
		{"field": "status", "term": "active"},
		{"field": "status", "term": "pending"},
	}}
	assert.Equal(t, want, got)

	got = mustTranslate(t, filter.Filter{
		"$nor": []any{
			map[string]any{"status": "archived"},
			map[string]any{"status": "deleted"},
		},
	})
	want = Query{"must_not": Query{"disjuncts": []Query{
		{"field": "status", "term": "archived"},
		{"field": "status", "term": "deleted"},
	}}}
	assert.Equal(t, want, got)

	got = mustTranslate(t, filter.Filter{
		"$not": map[string]any{"status": "archived"},
	})
	want = Query{"must_not": Query{"disjuncts": []Query{
		{"field": "status", "term": "archived"},
	}}}
	assert.Equal(t, want, got)
}

func TestTranslate_FieldLevelNot(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"status": map[string]any{"$not": map[string]any{"$eq": "archived"}},
	})
	want := Query{"must_not": Query{"disjuncts": []Query{
		{"field": "status", "term": "archived"},
	}}}
	assert.Equal(t, want, got)
}

func TestTranslate_EmptyGroups(t *testing.T) {
	assert.Equal(t, Query{}, mustTranslate(t, filter.Filter{}))
	assert.Equal(t, Query{}, mustTranslate(t, filter.Filter{"$and": []any{}}))
	assert.Equal(t, Query{}, mustTranslate(t, filter.Filter{"$or": []any{}}))
	assert.Equal(t, Query{}, mustTranslate(t, filter.Filter{"$nor": []any{}}))
}

func TestTranslate_NestedFieldsFlatten(t *testing.T) {
	got := mustTranslate(t, filter.Filter{
		"metadata": map[string]any{"author": map[string]any{"name": "kim"}},
	})
	assert.Equal(t, Query{"field": "metadata.author.name", "term": "kim"}, got)
}

func TestTranslate_UnsupportedOperators(t *testing.T) {
	for _, raw := range []filter.Filter{
		{"name": map[string]any{"$regex": "^foo"}},
		{"tags": map[string]any{"$all": []any{"a"}}},
		{"items": map[string]any{"$elemMatch": map[string]any{"qty": 1}}},
	} {
		_, err := New(DefaultConfig()).Translate(raw)
		assert.ErrorIs(t, err, filter.ErrUnsupportedOperator, "filter %v", raw)
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	raw := filter.Filter{
		"age":    map[string]any{"$gte": 18, "$lt": 65},
		"status": map[string]any{"$in": []any{"a", "b"}},
	}
	first := mustTranslate(t, raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, mustTranslate(t, raw))
	}
}
