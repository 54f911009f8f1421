package filter

import "sort"

// Matrix declares which operators a translator accepts. It is a value type:
// the With*/Without builders return copies, so a matrix embedded in a
// translator is effectively immutable and safe for concurrent reads.
//
// Every matrix starts from BaseMatrix (comparison, numeric, $exists and the
// logical operators) and grows per backend:
//
//	m := filter.BaseMatrix().
//	    WithOperators(filter.OpIn, filter.OpNin).
//	    WithRegex().
//	    WithCustom("$contains")
type Matrix struct {
	ops    map[Operator]struct{}
	custom map[Operator]struct{}
}

// BaseMatrix returns the baseline every translator shares: comparison,
// numeric, $exists and logical operators.
func BaseMatrix() Matrix {
	return Matrix{}.WithOperators(
		OpAnd, OpOr, OpNot, OpNor,
		OpEq, OpNe,
		OpGt, OpGte, OpLt, OpLte,
		OpExists,
	)
}

// WithOperators returns a copy accepting the given vocabulary operators.
// Operators outside the closed vocabulary are ignored; use WithCustom for
// backend-specific ones.
func (m Matrix) WithOperators(ops ...Operator) Matrix {
	out := m.clone()
	for _, op := range ops {
		if _, ok := vocabulary[op]; ok {
			out.ops[op] = struct{}{}
		}
	}
	return out
}

// WithRegex returns a copy accepting $regex and $options.
func (m Matrix) WithRegex() Matrix {
	return m.WithOperators(OpRegex, OpOptions)
}

// WithCustom returns a copy accepting backend-custom operators such as
// "$contains".
func (m Matrix) WithCustom(ops ...Operator) Matrix {
	out := m.clone()
	for _, op := range ops {
		out.custom[op] = struct{}{}
	}
	return out
}

// Without returns a copy with the given operators removed.
func (m Matrix) Without(ops ...Operator) Matrix {
	out := m.clone()
	for _, op := range ops {
		delete(out.ops, op)
		delete(out.custom, op)
	}
	return out
}

// Supports reports whether the matrix accepts op.
func (m Matrix) Supports(op Operator) bool {
	if _, ok := m.ops[op]; ok {
		return true
	}
	_, ok := m.custom[op]
	return ok
}

// Classify resolves the category of op for this matrix: vocabulary operators
// classify regardless of support, declared custom operators classify as
// CategoryCustom, anything else is unknown.
func (m Matrix) Classify(op Operator) (Category, bool) {
	if cat, ok := vocabulary[op]; ok {
		return cat, true
	}
	if _, ok := m.custom[op]; ok {
		return CategoryCustom, true
	}
	return "", false
}

// Operators returns all accepted operators in sorted order.
func (m Matrix) Operators() []Operator {
	ops := make([]Operator, 0, len(m.ops)+len(m.custom))
	for op := range m.ops {
		ops = append(ops, op)
	}
	for op := range m.custom {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

func (m Matrix) clone() Matrix {
	out := Matrix{
		ops:    make(map[Operator]struct{}, len(m.ops)),
		custom: make(map[Operator]struct{}, len(m.custom)),
	}
	for op := range m.ops {
		out.ops[op] = struct{}{}
	}
	for op := range m.custom {
		out.custom[op] = struct{}{}
	}
	return out
}
