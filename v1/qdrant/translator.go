package qdrant

import (
	"fmt"
	"strings"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Translator compiles canonical filters into point-store filters.
type Translator struct {
	matrix filter.Matrix
	prefix string
	logger *zap.Logger
}

// New creates a Translator from the given Config.
func New(cfg Config) *Translator {
	return &Translator{
		matrix: matrix(),
		prefix: cfg.FieldPrefix,
		logger: cfg.Logger,
	}
}

// Matrix returns the operator support matrix of this translator.
func (t *Translator) Matrix() filter.Matrix {
	return t.matrix
}

// Translate converts a canonical filter into a point-store filter. A nil
// result means no constraint; pass it to the client as-is.
func (t *Translator) Translate(raw filter.Filter) (*qdrant.Filter, error) {
	node, err := filter.Parse(raw)
	if err != nil {
		return nil, err
	}

	out, err := t.compile(node)
	if err != nil {
		return nil, err
	}

	if t.logger != nil {
		t.logger.Debug("translated filter to point-store filter",
			zap.Any("filter", raw),
			zap.Any("query", out),
		)
	}
	return out, nil
}

func (t *Translator) compile(node filter.Node) (*qdrant.Filter, error) {
	switch n := node.(type) {
	case filter.And:
		var conds []*qdrant.Condition
		for _, sub := range n.Nodes {
			cs, err := t.conditionsOf(sub)
			if err != nil {
				return nil, err
			}
			conds = append(conds, cs...)
		}
		if len(conds) == 0 {
			// No constraint.
			return nil, nil
		}
		return &qdrant.Filter{Must: conds}, nil

	case filter.Or:
		if len(n.Nodes) == 0 {
			return &qdrant.Filter{MustNot: []*qdrant.Condition{matchAll()}}, nil
		}
		conds, err := t.conditionPerNode(n.Nodes)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Should: conds}, nil

	case filter.Nor:
		if len(n.Nodes) == 0 {
			return nil, nil
		}
		conds, err := t.conditionPerNode(n.Nodes)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{MustNot: conds}, nil

	case filter.Not:
		cond, err := t.conditionOf(n.Node)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{MustNot: []*qdrant.Condition{cond}}, nil

	case filter.Field:
		conds, err := t.fieldConditions(n)
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Must: conds}, nil

	default:
		return nil, fmt.Errorf("unexpected filter node %T", node)
	}
}

// conditionsOf flattens a node into conditions for a conjunctive context.
func (t *Translator) conditionsOf(node filter.Node) ([]*qdrant.Condition, error) {
	if f, ok := node.(filter.Field); ok {
		return t.fieldConditions(f)
	}
	sub, err := t.compile(node)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return []*qdrant.Condition{filterCondition(sub)}, nil
}

// conditionPerNode compiles each node to exactly one condition, wrapping
// multi-condition fields in a sub-filter so disjunctive contexts keep their
// meaning.
func (t *Translator) conditionPerNode(nodes []filter.Node) ([]*qdrant.Condition, error) {
	out := make([]*qdrant.Condition, 0, len(nodes))
	for _, node := range nodes {
		cond, err := t.conditionOf(node)
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	return out, nil
}

func (t *Translator) conditionOf(node filter.Node) (*qdrant.Condition, error) {
	conds, err := t.conditionsOf(node)
	if err != nil {
		return nil, err
	}
	switch len(conds) {
	case 0:
		return matchAll(), nil
	case 1:
		return conds[0], nil
	}
	return filterCondition(&qdrant.Filter{Must: conds}), nil
}

func (t *Translator) fieldConditions(f filter.Field) ([]*qdrant.Condition, error) {
	key := t.resolveKey(f.Path)

	var (
		conds  []*qdrant.Condition
		bounds rangeBounds
	)
	for _, c := range f.Clauses {
		if !t.matrix.Supports(c.Op) {
			return nil, &filter.UnsupportedOperatorError{Op: c.Op, Field: f.Path}
		}
		if err := filter.CheckOperand(c.Op, f.Path, c.Operand); err != nil {
			return nil, err
		}

		switch c.Op {
		case filter.OpEq:
			cond, ok := equalityCondition(key, c.Operand)
			if !ok {
				return nil, t.operandError(c.Op, f.Path, "operand type has no match condition")
			}
			conds = append(conds, cond)

		case filter.OpNe:
			cond, ok := equalityCondition(key, c.Operand)
			if !ok {
				return nil, t.operandError(c.Op, f.Path, "operand type has no match condition")
			}
			conds = append(conds, negated(cond))

		case filter.OpGt, filter.OpGte, filter.OpLt, filter.OpLte:
			if err := t.addBound(&bounds, c, f.Path); err != nil {
				return nil, err
			}

		case filter.OpIn:
			cond, ok := membershipCondition(key, c.Operand.([]any), false)
			if !ok {
				return nil, t.operandError(c.Op, f.Path, "expects a homogeneous list of strings or integers")
			}
			conds = append(conds, cond)

		case filter.OpNin:
			cond, ok := membershipCondition(key, c.Operand.([]any), true)
			if !ok {
				return nil, t.operandError(c.Op, f.Path, "expects a homogeneous list of strings or integers")
			}
			conds = append(conds, cond)

		case filter.OpExists:
			if c.Operand.(bool) {
				conds = append(conds, negated(qdrant.NewIsEmpty(key)))
			} else {
				conds = append(conds, qdrant.NewIsEmpty(key))
			}

		case filter.OpNot:
			inner, err := t.fieldConditions(filter.Field{Path: f.Path, Clauses: c.Operand.([]filter.OpClause)})
			if err != nil {
				return nil, err
			}
			switch len(inner) {
			case 0:
			case 1:
				conds = append(conds, negated(inner[0]))
			default:
				conds = append(conds, negated(filterCondition(&qdrant.Filter{Must: inner})))
			}

		default:
			return nil, &filter.UnsupportedOperatorError{Op: c.Op, Field: f.Path}
		}
	}

	if cond := bounds.condition(key); cond != nil {
		conds = append(conds, cond)
	}
	return conds, nil
}

func (t *Translator) addBound(bounds *rangeBounds, c filter.OpClause, path string) error {
	if ts, ok := c.Operand.(time.Time); ok {
		if !bounds.addDate(c.Op, ts) {
			return t.operandError(c.Op, path, "cannot mix date and numeric bounds")
		}
		return nil
	}
	if v, ok := toFloat64(c.Operand); ok {
		if !bounds.addNumeric(c.Op, v) {
			return t.operandError(c.Op, path, "cannot mix date and numeric bounds")
		}
		return nil
	}
	return t.operandError(c.Op, path, "expects a number or date")
}

func (t *Translator) operandError(op filter.Operator, path, reason string) error {
	return &filter.OperandError{Op: op, Field: path, Reason: reason}
}

// resolveKey prepends the configured payload namespace, never twice.
func (t *Translator) resolveKey(path string) string {
	if t.prefix == "" || strings.HasPrefix(path, t.prefix+".") {
		return path
	}
	return t.prefix + "." + path
}
