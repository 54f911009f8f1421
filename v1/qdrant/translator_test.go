package qdrant

import (
	"errors"
	"testing"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

func mustTranslate(t *testing.T, cfg Config, raw filter.Filter) *qdrant.Filter {
	t.Helper()
	f, err := New(cfg).Translate(raw)
	if err != nil {
		t.Fatalf("Translate(%v) returned error: %v", raw, err)
	}
	return f
}

func singleMust(t *testing.T, f *qdrant.Filter) *qdrant.Condition {
	t.Helper()
	if f == nil {
		t.Fatal("expected filter, got nil")
	}
	if len(f.Must) != 1 {
		t.Fatalf("expected 1 Must condition, got %d", len(f.Must))
	}
	return f.Must[0]
}

func TestTranslate_EmptyFilterMeansNoConstraint(t *testing.T) {
	if f := mustTranslate(t, DefaultConfig(), filter.Filter{}); f != nil {
		t.Errorf("expected nil filter, got %v", f)
	}
	if f := mustTranslate(t, DefaultConfig(), filter.Filter{"$and": []any{}}); f != nil {
		t.Errorf("empty $and: expected nil filter, got %v", f)
	}
}

func TestTranslate_KeywordMatch(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{"city": "London"})
	cond := singleMust(t, f)
	if key := cond.GetField().GetKey(); key != "city" {
		t.Errorf("expected key %q, got %q", "city", key)
	}
	if v := cond.GetField().GetMatch().GetKeyword(); v != "London" {
		t.Errorf("expected keyword %q, got %q", "London", v)
	}
}

func TestTranslate_TypedMatches(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{"active": true})
	if v := singleMust(t, f).GetField().GetMatch().GetBoolean(); v != true {
		t.Errorf("expected boolean match true, got %v", v)
	}

	f = mustTranslate(t, DefaultConfig(), filter.Filter{"count": 7})
	if v := singleMust(t, f).GetField().GetMatch().GetInteger(); v != 7 {
		t.Errorf("expected integer match 7, got %d", v)
	}

	// JSON numbers decode as float64 and match as integers.
	f = mustTranslate(t, DefaultConfig(), filter.Filter{"count": float64(7)})
	if v := singleMust(t, f).GetField().GetMatch().GetInteger(); v != 7 {
		t.Errorf("expected integer match 7 for float64, got %d", v)
	}
}

func TestTranslate_NullEqualsIsNull(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{"meta": nil})
	if key := singleMust(t, f).GetIsNull().GetKey(); key != "meta" {
		t.Errorf("expected is-null on %q, got %q", "meta", key)
	}
}

func TestTranslate_NotEqualNegates(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"city": map[string]any{"$ne": "London"},
	})
	sub := singleMust(t, f).GetFilter()
	if sub == nil {
		t.Fatal("expected nested filter condition")
	}
	if len(sub.MustNot) != 1 {
		t.Fatalf("expected 1 MustNot condition, got %d", len(sub.MustNot))
	}
	if v := sub.MustNot[0].GetField().GetMatch().GetKeyword(); v != "London" {
		t.Errorf("expected negated keyword match, got %q", v)
	}
}

func TestTranslate_NumericBoundsShareOneRange(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"score": map[string]any{"$gte": 10, "$lt": 20},
	})
	r := singleMust(t, f).GetField().GetRange()
	if r == nil {
		t.Fatal("expected range condition")
	}
	if r.GetGte() != 10 || r.GetLt() != 20 {
		t.Errorf("expected gte 10 and lt 20, got %v", r)
	}
	if r.Gt != nil || r.Lte != nil {
		t.Errorf("expected unset gt/lte bounds, got %v", r)
	}
}

func TestTranslate_DatetimeRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"created_at": map[string]any{"$gte": from},
	})
	r := singleMust(t, f).GetField().GetDatetimeRange()
	if r == nil {
		t.Fatal("expected datetime range condition")
	}
	if !r.GetGte().AsTime().Equal(from) {
		t.Errorf("expected gte %v, got %v", from, r.GetGte().AsTime())
	}
}

func TestTranslate_MixedBoundTypes(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"created_at": map[string]any{
			"$gte": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			"$lt":  100,
		},
	})
	if !errors.Is(err, filter.ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestTranslate_Membership(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"city": map[string]any{"$in": []any{"London", "Berlin"}},
	})
	keywords := singleMust(t, f).GetField().GetMatch().GetKeywords().GetStrings()
	if len(keywords) != 2 || keywords[0] != "London" || keywords[1] != "Berlin" {
		t.Errorf("expected keyword list, got %v", keywords)
	}

	f = mustTranslate(t, DefaultConfig(), filter.Filter{
		"count": map[string]any{"$in": []any{1, 2}},
	})
	ints := singleMust(t, f).GetField().GetMatch().GetIntegers().GetIntegers()
	if len(ints) != 2 || ints[0] != 1 || ints[1] != 2 {
		t.Errorf("expected integer list, got %v", ints)
	}

	f = mustTranslate(t, DefaultConfig(), filter.Filter{
		"city": map[string]any{"$nin": []any{"London"}},
	})
	except := singleMust(t, f).GetField().GetMatch().GetExceptKeywords().GetStrings()
	if len(except) != 1 || except[0] != "London" {
		t.Errorf("expected except-keyword list, got %v", except)
	}
}

func TestTranslate_HeterogeneousListRejected(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"city": map[string]any{"$in": []any{"London", 1}},
	})
	if !errors.Is(err, filter.ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand, got %v", err)
	}
}

func TestTranslate_Exists(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"meta": map[string]any{"$exists": false},
	})
	if key := singleMust(t, f).GetIsEmpty().GetKey(); key != "meta" {
		t.Errorf("expected is-empty on %q, got %q", "meta", key)
	}

	f = mustTranslate(t, DefaultConfig(), filter.Filter{
		"meta": map[string]any{"$exists": true},
	})
	sub := singleMust(t, f).GetFilter()
	if sub == nil || len(sub.MustNot) != 1 {
		t.Fatalf("expected negated is-empty, got %v", f)
	}
	if key := sub.MustNot[0].GetIsEmpty().GetKey(); key != "meta" {
		t.Errorf("expected is-empty on %q, got %q", "meta", key)
	}
}

func TestTranslate_OrUsesShould(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"$or": []any{
			map[string]any{"city": "London"},
			map[string]any{"city": "Berlin"},
		},
	})
	if f == nil {
		t.Fatal("expected filter, got nil")
	}
	if len(f.Should) != 2 {
		t.Errorf("expected 2 Should conditions, got %d", len(f.Should))
	}
}

func TestTranslate_EmptyOrMatchesNothing(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{"$or": []any{}})
	if f == nil || len(f.MustNot) != 1 {
		t.Fatalf("expected must-not of the universal condition, got %v", f)
	}
	universal := f.MustNot[0].GetFilter()
	if universal == nil || len(universal.Must)+len(universal.Should)+len(universal.MustNot) != 0 {
		t.Errorf("expected empty nested filter, got %v", universal)
	}
}

func TestTranslate_MultiClauseFieldInsideOrWraps(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"$or": []any{
			map[string]any{"score": map[string]any{"$gte": 10}},
			map[string]any{"city": map[string]any{"$eq": "London", "$exists": true}},
		},
	})
	if len(f.Should) != 2 {
		t.Fatalf("expected 2 Should conditions, got %d", len(f.Should))
	}
	wrapped := f.Should[1].GetFilter()
	if wrapped == nil || len(wrapped.Must) != 2 {
		t.Errorf("expected multi-clause field wrapped in a Must sub-filter, got %v", f.Should[1])
	}
}

func TestTranslate_NorAndNot(t *testing.T) {
	f := mustTranslate(t, DefaultConfig(), filter.Filter{
		"$nor": []any{
			map[string]any{"city": "London"},
			map[string]any{"city": "Berlin"},
		},
	})
	if len(f.MustNot) != 2 {
		t.Errorf("$nor: expected 2 MustNot conditions, got %d", len(f.MustNot))
	}

	f = mustTranslate(t, DefaultConfig(), filter.Filter{
		"$not": map[string]any{"city": "London"},
	})
	if len(f.MustNot) != 1 {
		t.Errorf("$not: expected 1 MustNot condition, got %d", len(f.MustNot))
	}
}

func TestTranslate_FieldPrefix(t *testing.T) {
	cfg := DefaultConfig().WithFieldPrefix("custom")

	f := mustTranslate(t, cfg, filter.Filter{"document_id": "doc456"})
	if key := singleMust(t, f).GetField().GetKey(); key != "custom.document_id" {
		t.Errorf("expected prefixed key, got %q", key)
	}

	// Already-prefixed paths are left alone.
	f = mustTranslate(t, cfg, filter.Filter{"custom.document_id": "doc456"})
	if key := singleMust(t, f).GetField().GetKey(); key != "custom.document_id" {
		t.Errorf("expected key unchanged, got %q", key)
	}
}

func TestTranslate_RegexUnsupported(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"name": map[string]any{"$regex": "^foo"},
	})
	if !errors.Is(err, filter.ErrUnsupportedOperator) {
		t.Errorf("expected ErrUnsupportedOperator, got %v", err)
	}
}

func TestTranslate_StringBoundRejected(t *testing.T) {
	_, err := New(DefaultConfig()).Translate(filter.Filter{
		"name": map[string]any{"$gt": "a"},
	})
	if !errors.Is(err, filter.ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand, got %v", err)
	}
}
