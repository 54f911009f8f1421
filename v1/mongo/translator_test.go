package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

func TestTranslate_PassesThroughUnchanged(t *testing.T) {
	tr := New(DefaultConfig())

	raw := filter.Filter{"price": map[string]any{"$exists": true}}
	got, err := tr.Translate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.True(t, tr.IsSupportedFilter(raw))
}

func TestTranslate_RoundTripsVocabularyFilters(t *testing.T) {
	raw := filter.Filter{
		"$or": []any{
			map[string]any{"status": map[string]any{"$in": []any{"a", "b"}}},
			map[string]any{
				"items": map[string]any{"$elemMatch": map[string]any{
					"qty": map[string]any{"$gt": 5},
				}},
			},
		},
		"name": map[string]any{"$regex": "^foo", "$options": "i"},
		"tags": map[string]any{"$all": []any{"x", "y"}},
	}
	got, err := New(DefaultConfig()).Translate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestTranslate_ReturnsDeepCopy(t *testing.T) {
	raw := filter.Filter{
		"status": map[string]any{"$in": []any{"a", "b"}},
	}
	got, err := New(DefaultConfig()).Translate(raw)
	require.NoError(t, err)

	got["status"].(map[string]any)["$in"].([]any)[0] = "mutated"
	assert.Equal(t, "a", raw["status"].(map[string]any)["$in"].([]any)[0])
}

func TestTranslate_NormalizesDates(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	raw := filter.Filter{
		"created_at": map[string]any{"$gte": time.Date(2024, 5, 1, 13, 0, 0, 0, loc)},
	}
	got, err := New(DefaultConfig()).Translate(raw)
	require.NoError(t, err)
	want := filter.Filter{
		"created_at": map[string]any{"$gte": "2024-05-01T12:00:00Z"},
	}
	assert.Equal(t, want, got)
}

func TestTranslate_RejectsUnknownOperators(t *testing.T) {
	tr := New(DefaultConfig())
	raw := filter.Filter{"name": map[string]any{"$contains": "foo"}}

	_, err := tr.Translate(raw)
	require.ErrorIs(t, err, filter.ErrUnsupportedOperator)
	assert.Contains(t, err.Error(), "$contains")
	assert.Contains(t, err.Error(), "name")
	assert.False(t, tr.IsSupportedFilter(raw))
}

func TestTranslate_RejectsNestedViolations(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"items": map[string]any{"$elemMatch": map[string]any{
			"qty": map[string]any{"$bogus": 1},
		}},
	})
	require.ErrorIs(t, err, filter.ErrUnsupportedOperator)
}

func TestTranslate_RejectsMalformedFilters(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"$and": "not an array",
	})
	require.ErrorIs(t, err, filter.ErrMalformedFilter)
}

func TestTranslate_RejectsInvalidOperands(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"status": map[string]any{"$in": "not an array"},
	})
	require.ErrorIs(t, err, filter.ErrInvalidOperand)
}

func TestValidateFilterSupport_CollectsAllViolations(t *testing.T) {
	report := New(DefaultConfig()).ValidateFilterSupport(filter.Filter{
		"name":   map[string]any{"$contains": "foo"},
		"status": map[string]any{"$fuzzy": "bar"},
	})
	assert.False(t, report.Supported)
	assert.Len(t, report.Messages, 2)
	require.Error(t, report.Err())
}

func TestValidateFilterSupport_EmptyFilterIsSupported(t *testing.T) {
	report := New(DefaultConfig()).ValidateFilterSupport(filter.Filter{})
	assert.True(t, report.Supported)
	assert.Empty(t, report.Messages)
	assert.NoError(t, report.Err())
}
