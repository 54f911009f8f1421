package filter

import "sort"

// Operator is a key from the canonical filter vocabulary (e.g. "$eq", "$and").
// Backend-custom operators (e.g. "$contains") also use this type but are not
// part of the closed vocabulary; they are declared per translator via Matrix.
type Operator string

// Logical operators combine sub-filters.
const (
	OpAnd Operator = "$and"
	OpOr  Operator = "$or"
	OpNot Operator = "$not"
	OpNor Operator = "$nor"
)

// Comparison operators.
const (
	OpEq Operator = "$eq"
	OpNe Operator = "$ne"
)

// Numeric/order operators.
const (
	OpGt  Operator = "$gt"
	OpGte Operator = "$gte"
	OpLt  Operator = "$lt"
	OpLte Operator = "$lte"
)

// Array operators.
const (
	OpIn        Operator = "$in"
	OpNin       Operator = "$nin"
	OpAll       Operator = "$all"
	OpElemMatch Operator = "$elemMatch"
)

// Element operators.
const (
	OpExists Operator = "$exists"
)

// Regex operators. OpOptions carries flags for a sibling OpRegex and is never
// valid on its own.
const (
	OpRegex   Operator = "$regex"
	OpOptions Operator = "$options"
)

// Category groups operators by operand shape and compilation strategy.
type Category string

const (
	CategoryLogical    Category = "logical"
	CategoryComparison Category = "comparison"
	CategoryNumeric    Category = "numeric"
	CategoryArray      Category = "array"
	CategoryElement    Category = "element"
	CategoryRegex      Category = "regex"
	CategoryCustom     Category = "custom"
)

// vocabulary maps every operator of the closed canonical vocabulary to its
// category. Classification is backend-independent; whether a backend accepts
// an operator is decided by its Matrix, never here. Keeping the two apart lets
// a validator say "not supported by this backend" instead of "unknown".
var vocabulary = map[Operator]Category{
	OpAnd: CategoryLogical,
	OpOr:  CategoryLogical,
	OpNot: CategoryLogical,
	OpNor: CategoryLogical,

	OpEq: CategoryComparison,
	OpNe: CategoryComparison,

	OpGt:  CategoryNumeric,
	OpGte: CategoryNumeric,
	OpLt:  CategoryNumeric,
	OpLte: CategoryNumeric,

	OpIn:        CategoryArray,
	OpNin:       CategoryArray,
	OpAll:       CategoryArray,
	OpElemMatch: CategoryArray,

	OpExists: CategoryElement,

	OpRegex:   CategoryRegex,
	OpOptions: CategoryRegex,
}

// CategoryOf classifies an operator from the closed vocabulary.
// The second return value is false for unknown or backend-custom operators.
func CategoryOf(op Operator) (Category, bool) {
	cat, ok := vocabulary[op]
	return cat, ok
}

// IsVocabularyOperator reports whether key belongs to the closed vocabulary.
func IsVocabularyOperator(key string) bool {
	_, ok := vocabulary[Operator(key)]
	return ok
}

// isOperatorKey reports whether a map key should be treated as an operator.
// Any "$"-prefixed key counts, so unknown operators surface as unsupported
// rather than being silently read as field names.
func isOperatorKey(key string) bool {
	return len(key) > 0 && key[0] == '$'
}

// Vocabulary returns all operators of the closed vocabulary in sorted order.
func Vocabulary() []Operator {
	ops := make([]Operator, 0, len(vocabulary))
	for op := range vocabulary {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
