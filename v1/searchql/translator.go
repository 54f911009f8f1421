package searchql

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// OpContains matches fields containing the operand as a substring.
const OpContains = filter.Operator("$contains")

var comparison = map[filter.Operator]string{
	filter.OpEq:  "=",
	filter.OpNe:  "!=",
	filter.OpGt:  ">",
	filter.OpGte: ">=",
	filter.OpLt:  "<",
	filter.OpLte: "<=",
}

// Translator compiles canonical filters into query strings.
type Translator struct {
	matrix filter.Matrix
	logger *zap.Logger
}

// New creates a Translator from the given Config.
func New(cfg Config) *Translator {
	return &Translator{
		matrix: matrix(),
		logger: cfg.Logger,
	}
}

// Matrix returns the operator support matrix of this translator.
func (t *Translator) Matrix() filter.Matrix {
	return t.matrix
}

// Translate converts a canonical filter into a single query string.
func (t *Translator) Translate(raw filter.Filter) (string, error) {
	node, err := filter.Parse(raw)
	if err != nil {
		return "", err
	}

	query, err := t.compile(node)
	if err != nil {
		return "", err
	}

	if t.logger != nil {
		t.logger.Debug("translated filter to query string",
			zap.Any("filter", raw),
			zap.String("query", query),
		)
	}
	return query, nil
}

func (t *Translator) compile(node filter.Node) (string, error) {
	switch n := node.(type) {
	case filter.And:
		return t.compileGroup(n.Nodes, " AND ", "1 = 1")

	case filter.Or:
		return t.compileGroup(n.Nodes, " OR ", "0 = 1")

	case filter.Nor:
		sub, err := t.compileGroup(n.Nodes, " OR ", "0 = 1")
		if err != nil {
			return "", err
		}
		return negate(sub), nil

	case filter.Not:
		sub, err := t.compile(n.Node)
		if err != nil {
			return "", err
		}
		return negate(sub), nil

	case filter.Field:
		return t.compileField(n)

	default:
		return "", fmt.Errorf("unexpected filter node %T", node)
	}
}

// compileGroup joins sub-expressions with the given connective. Empty groups
// render the neutral tautology or contradiction, single clauses stay bare,
// and only true multi-clause groups get parentheses.
func (t *Translator) compileGroup(nodes []filter.Node, connective, empty string) (string, error) {
	switch len(nodes) {
	case 0:
		return empty, nil
	case 1:
		return t.compile(nodes[0])
	}

	parts := make([]string, 0, len(nodes))
	for _, sub := range nodes {
		s, err := t.compile(sub)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, connective) + ")", nil
}

func (t *Translator) compileField(f filter.Field) (string, error) {
	parts := make([]string, 0, len(f.Clauses))
	for _, c := range f.Clauses {
		s, err := t.compileClause(c, f.Path, false)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " AND ") + ")", nil
}

// compileClause renders one operator clause. When negated is set the clause
// is being compiled under a field-level $not: GLOB and CONTAINS have direct
// negated keyword forms, everything else wraps in NOT (...).
func (t *Translator) compileClause(c filter.OpClause, path string, negated bool) (string, error) {
	if !t.matrix.Supports(c.Op) {
		return "", &filter.UnsupportedOperatorError{Op: c.Op, Field: path}
	}
	if err := filter.CheckOperand(c.Op, path, c.Operand); err != nil {
		return "", err
	}

	switch c.Op {
	case filter.OpEq, filter.OpNe, filter.OpGt, filter.OpGte, filter.OpLt, filter.OpLte:
		value, err := t.formatOperand(c.Op, path, c.Operand)
		if err != nil {
			return "", err
		}
		expr := fmt.Sprintf("%s %s %s", path, comparison[c.Op], value)
		return maybeNegate(expr, negated), nil

	case filter.OpIn, filter.OpNin:
		list, ok := formatList(c.Operand.([]any))
		if !ok {
			return "", t.operandError(c.Op, path)
		}
		keyword := "IN"
		if c.Op == filter.OpNin {
			keyword = "NOT IN"
		}
		expr := fmt.Sprintf("%s %s (%s)", path, keyword, list)
		return maybeNegate(expr, negated), nil

	case filter.OpRegex:
		return keywordClause(path, "GLOB", c.Operand.(string), negated), nil

	case OpContains:
		pattern, ok := c.Operand.(string)
		if !ok {
			return "", t.operandError(c.Op, path)
		}
		return keywordClause(path, "CONTAINS", pattern, negated), nil

	case filter.OpAll:
		return t.compileAll(c.Operand.([]any), path, negated)

	case filter.OpExists:
		if c.Operand.(bool) != negated {
			return path + " IS NOT NULL", nil
		}
		return path + " IS NULL", nil

	case filter.OpNot:
		inner := c.Operand.([]filter.OpClause)
		parts := make([]string, 0, len(inner))
		for _, ic := range inner {
			s, err := t.compileClause(ic, path, !negated)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " AND ") + ")", nil

	default:
		return "", &filter.UnsupportedOperatorError{Op: c.Op, Field: path}
	}
}

// compileAll desugars $all into a conjunction of per-element CONTAINS
// clauses.
func (t *Translator) compileAll(values []any, path string, negated bool) (string, error) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return "", t.operandError(filter.OpAll, path)
		}
		parts = append(parts, keywordClause(path, "CONTAINS", s, negated))
	}
	switch len(parts) {
	case 0:
		return "1 = 1", nil
	case 1:
		return parts[0], nil
	}
	return "(" + strings.Join(parts, " AND ") + ")", nil
}

func (t *Translator) formatOperand(op filter.Operator, path string, v any) (string, error) {
	s, ok := formatValue(v)
	if !ok {
		return "", t.operandError(op, path)
	}
	return s, nil
}

func (t *Translator) operandError(op filter.Operator, path string) error {
	return &filter.OperandError{
		Op:     op,
		Field:  path,
		Reason: "operand cannot be rendered as a query literal",
	}
}

// keywordClause renders GLOB and CONTAINS expressions. Their negations use
// the direct NOT GLOB / NOT CONTAINS form instead of wrapping in NOT (...).
func keywordClause(path, keyword, pattern string, negated bool) string {
	if negated {
		keyword = "NOT " + keyword
	}
	return fmt.Sprintf("%s %s %s", path, keyword, quote(pattern))
}

func maybeNegate(expr string, negated bool) string {
	if negated {
		return negate(expr)
	}
	return expr
}

func negate(expr string) string {
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		return "NOT " + expr
	}
	return "NOT (" + expr + ")"
}
