package filter

import "testing"

func TestBaseMatrix_Baseline(t *testing.T) {
	m := BaseMatrix()

	for _, op := range []Operator{OpAnd, OpOr, OpNot, OpNor, OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpExists} {
		if !m.Supports(op) {
			t.Errorf("baseline should support %s", op)
		}
	}
	for _, op := range []Operator{OpIn, OpNin, OpAll, OpElemMatch, OpRegex, OpOptions} {
		if m.Supports(op) {
			t.Errorf("baseline should not support %s", op)
		}
	}
}

func TestMatrix_BuildersReturnCopies(t *testing.T) {
	base := BaseMatrix()
	extended := base.WithOperators(OpIn).WithRegex().WithCustom("$contains")

	if base.Supports(OpIn) || base.Supports(OpRegex) || base.Supports("$contains") {
		t.Error("builders mutated the base matrix")
	}
	if !extended.Supports(OpIn) || !extended.Supports(OpRegex) || !extended.Supports("$contains") {
		t.Error("extended matrix missing added operators")
	}
}

func TestMatrix_Without(t *testing.T) {
	m := BaseMatrix().WithCustom("$contains").Without(OpNor, "$contains")

	if m.Supports(OpNor) {
		t.Error("expected $nor removed")
	}
	if m.Supports("$contains") {
		t.Error("expected $contains removed")
	}
	if !m.Supports(OpAnd) {
		t.Error("unrelated operator removed")
	}
}

func TestMatrix_Classify(t *testing.T) {
	m := BaseMatrix().WithCustom("$contains")

	// Vocabulary operators classify even when unsupported by the matrix.
	cat, ok := m.Classify(OpRegex)
	if !ok || cat != CategoryRegex {
		t.Errorf("expected regex classification, got %q ok=%v", cat, ok)
	}

	cat, ok = m.Classify("$contains")
	if !ok || cat != CategoryCustom {
		t.Errorf("expected custom classification, got %q ok=%v", cat, ok)
	}

	if _, ok := m.Classify("$frobnicate"); ok {
		t.Error("undeclared operator should not classify")
	}
}

func TestMatrix_WithOperatorsIgnoresNonVocabulary(t *testing.T) {
	m := BaseMatrix().WithOperators("$contains")
	if m.Supports("$contains") {
		t.Error("WithOperators must not admit custom operators")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		op   Operator
		cat  Category
		ok   bool
	}{
		{OpAnd, CategoryLogical, true},
		{OpEq, CategoryComparison, true},
		{OpGte, CategoryNumeric, true},
		{OpElemMatch, CategoryArray, true},
		{OpExists, CategoryElement, true},
		{OpOptions, CategoryRegex, true},
		{"$contains", "", false},
	}

	for _, tt := range tests {
		cat, ok := CategoryOf(tt.op)
		if cat != tt.cat || ok != tt.ok {
			t.Errorf("CategoryOf(%s) = (%q, %v), want (%q, %v)", tt.op, cat, ok, tt.cat, tt.ok)
		}
	}
}
