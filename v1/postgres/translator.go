package postgres

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Custom operators accepted by this backend on top of the canonical
// vocabulary.
const (
	OpContains    filter.Operator = "$contains"
	OpStartsWith  filter.Operator = "$startsWith"
	OpEndsWith    filter.Operator = "$endsWith"
	OpIRegex      filter.Operator = "$iregex"
	OpIContains   filter.Operator = "$icontains"
	OpIStartsWith filter.Operator = "$istartsWith"
	OpIEndsWith   filter.Operator = "$iendsWith"
)

// Translator compiles canonical filters into SQL predicate clause trees.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	matrix filter.Matrix
	logger *zap.Logger
}

// New creates a SQL predicate translator.
func New(cfg Config) *Translator {
	return &Translator{
		matrix: cfg.matrix(),
		logger: cfg.Logger,
	}
}

// Matrix returns the operator support matrix of this backend.
func (t *Translator) Matrix() filter.Matrix {
	return t.matrix
}

// Translate compiles a canonical filter into a Clause tree. The input is
// never mutated; translation fails fast on the first unsupported operator or
// malformed operand.
func (t *Translator) Translate(f filter.Filter) (Clause, error) {
	node, err := filter.Parse(f)
	if err != nil {
		return Clause{}, err
	}

	out, err := t.compile(node)
	if err != nil {
		return Clause{}, err
	}

	if t.logger != nil {
		t.logger.Debug("compiled filter to SQL predicates", zap.Any("clause", out))
	}
	return out, nil
}

func (t *Translator) compile(n filter.Node) (Clause, error) {
	switch v := n.(type) {
	case filter.And:
		subs, err := t.compileAll(v.Nodes)
		if err != nil {
			return Clause{}, err
		}
		return And(subs...), nil
	case filter.Or:
		subs, err := t.compileAll(v.Nodes)
		if err != nil {
			return Clause{}, err
		}
		return Or(subs...), nil
	case filter.Nor:
		subs, err := t.compileAll(v.Nodes)
		if err != nil {
			return Clause{}, err
		}
		return Not(Or(subs...)), nil
	case filter.Not:
		sub, err := t.compile(v.Node)
		if err != nil {
			return Clause{}, err
		}
		return Not(sub), nil
	case filter.Field:
		return t.compileField(v)
	default:
		return Clause{}, &filter.MalformedFilterError{Reason: fmt.Sprintf("unexpected node %T", n)}
	}
}

func (t *Translator) compileAll(nodes []filter.Node) ([]Clause, error) {
	subs := make([]Clause, 0, len(nodes))
	for _, n := range nodes {
		sub, err := t.compile(n)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func (t *Translator) compileField(f filter.Field) (Clause, error) {
	insensitive, err := regexFlags(f)
	if err != nil {
		return Clause{}, err
	}

	out := make([]Clause, 0, len(f.Clauses))
	for _, oc := range f.Clauses {
		if oc.Op == filter.OpOptions {
			// Consumed alongside $regex.
			continue
		}
		c, err := t.compileClause(f.Path, oc, insensitive)
		if err != nil {
			return Clause{}, err
		}
		out = append(out, c)
	}

	if len(out) == 1 {
		return out[0], nil
	}
	return And(out...), nil
}

func (t *Translator) compileClause(field string, oc filter.OpClause, insensitive bool) (Clause, error) {
	if !t.matrix.Supports(oc.Op) {
		return Clause{}, &filter.UnsupportedOperatorError{Op: oc.Op, Field: field}
	}
	if err := filter.CheckOperand(oc.Op, field, oc.Operand); err != nil {
		return Clause{}, err
	}

	switch oc.Op {
	case filter.OpEq:
		return Leaf(Predicate{Field: field, Op: OpEq, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpNe:
		return Leaf(Predicate{Field: field, Op: OpNeq, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpGt:
		return Leaf(Predicate{Field: field, Op: OpGt, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpGte:
		return Leaf(Predicate{Field: field, Op: OpGte, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpLt:
		return Leaf(Predicate{Field: field, Op: OpLt, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpLte:
		return Leaf(Predicate{Field: field, Op: OpLte, Value: filter.NormalizeScalar(oc.Operand)}), nil
	case filter.OpIn:
		return Leaf(Predicate{Field: field, Op: OpIn, Value: filter.NormalizeSlice(oc.Operand.([]any))}), nil
	case filter.OpNin:
		return Leaf(Predicate{Field: field, Op: OpNin, Value: filter.NormalizeSlice(oc.Operand.([]any))}), nil
	case filter.OpExists:
		if oc.Operand.(bool) {
			return Leaf(Predicate{Field: field, Op: OpNotNull}), nil
		}
		return Leaf(Predicate{Field: field, Op: OpIsNull}), nil
	case filter.OpRegex:
		return t.likeClause(field, oc, "%", "%", insensitive)
	case OpContains:
		return t.likeClause(field, oc, "%", "%", false)
	case OpStartsWith:
		return t.likeClause(field, oc, "", "%", false)
	case OpEndsWith:
		return t.likeClause(field, oc, "%", "", false)
	case OpIRegex, OpIContains:
		return t.likeClause(field, oc, "%", "%", true)
	case OpIStartsWith:
		return t.likeClause(field, oc, "", "%", true)
	case OpIEndsWith:
		return t.likeClause(field, oc, "%", "", true)
	case filter.OpNot:
		inner, ok := oc.Operand.([]filter.OpClause)
		if !ok {
			return Clause{}, &filter.OperandError{Op: oc.Op, Field: field, Reason: "expects an operator map"}
		}
		sub, err := t.compileField(filter.Field{Path: field, Clauses: inner})
		if err != nil {
			return Clause{}, err
		}
		return Not(sub), nil
	default:
		return Clause{}, &filter.UnsupportedOperatorError{Op: oc.Op, Field: field}
	}
}

func (t *Translator) likeClause(field string, oc filter.OpClause, prefix, suffix string, insensitive bool) (Clause, error) {
	pattern, ok := oc.Operand.(string)
	if !ok {
		return Clause{}, &filter.OperandError{Op: oc.Op, Field: field, Reason: fmt.Sprintf("expects a string, got %T", oc.Operand)}
	}

	op := OpLike
	if insensitive {
		op = OpILike
	}
	return Leaf(Predicate{Field: field, Op: op, Value: prefix + pattern + suffix}), nil
}

// regexFlags resolves a field's $options clause. Only the "i" flag has a SQL
// encoding (ILIKE); any other flag is rejected rather than silently dropped.
func regexFlags(f filter.Field) (insensitive bool, err error) {
	for _, oc := range f.Clauses {
		if oc.Op != filter.OpOptions {
			continue
		}
		flags, ok := oc.Operand.(string)
		if !ok {
			return false, &filter.OperandError{Op: filter.OpOptions, Field: f.Path, Reason: fmt.Sprintf("expects a string, got %T", oc.Operand)}
		}
		if !hasClauseOp(f.Clauses, filter.OpRegex) {
			return false, &filter.OperandError{Op: filter.OpOptions, Field: f.Path, Reason: "$options requires a sibling $regex"}
		}
		if rest := strings.ReplaceAll(flags, "i", ""); rest != "" {
			return false, &filter.OperandError{Op: filter.OpOptions, Field: f.Path, Reason: fmt.Sprintf("unsupported regex flags %q", rest)}
		}
		insensitive = strings.Contains(flags, "i")
	}
	return insensitive, nil
}

func hasClauseOp(clauses []filter.OpClause, op filter.Operator) bool {
	for _, c := range clauses {
		if c.Op == op {
			return true
		}
	}
	return false
}
