package couchbase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Query is a fragment of the full-text search query JSON, ready to be
// embedded in a search request.
type Query = map[string]any

// Translator compiles canonical filters into conjunct/disjunct trees.
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

// Translate converts a canonical filter into a conjunct/disjunct tree.
func (t *Translator) Translate(raw filter.Filter) (Query, error) {
	node, err := filter.Parse(raw)
	if err != nil {
		return nil, err
	}

	query, err := t.compile(node)
	if err != nil {
		return nil, err
	}

	if t.logger != nil {
		t.logger.Debug("translated filter to full-text query",
			zap.Any("filter", raw),
			zap.Any("query", query),
		)
	}
	return query, nil
}

func (t *Translator) compile(node filter.Node) (Query, error) {
	switch n := node.(type) {
	case filter.And:
		subs, err := t.compileGroup(n.Nodes)
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			// No constraint.
			return Query{}, nil
		}
		return Query{"conjuncts": subs}, nil

	case filter.Or:
		subs, err := t.compileGroup(n.Nodes)
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			return Query{}, nil
		}
		return Query{"disjuncts": subs}, nil

	case filter.Nor:
		subs, err := t.compileGroup(n.Nodes)
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			return Query{}, nil
		}
		return Query{"must_not": Query{"disjuncts": subs}}, nil

	case filter.Not:
		sub, err := t.compile(n.Node)
		if err != nil {
			return nil, err
		}
		return mustNot(sub), nil

	case filter.Field:
		return t.compileField(n)

	default:
		return nil, fmt.Errorf("unexpected filter node %T", node)
	}
}

func (t *Translator) compileGroup(nodes []filter.Node) ([]Query, error) {
	subs := make([]Query, 0, len(nodes))
	for _, sub := range nodes {
		q, err := t.compile(sub)
		if err != nil {
			return nil, err
		}
		subs = append(subs, q)
	}
	return subs, nil
}

func (t *Translator) compileField(f filter.Field) (Query, error) {
	for _, c := range f.Clauses {
		if !t.matrix.Supports(c.Op) {
			return nil, &filter.UnsupportedOperatorError{Op: c.Op, Field: f.Path}
		}
		if err := filter.CheckOperand(c.Op, f.Path, c.Operand); err != nil {
			return nil, err
		}
	}

	ft, err := fieldTypeOf(f)
	if err != nil {
		return nil, err
	}

	var (
		queries   []Query
		rangeBody Query
	)
	for _, c := range f.Clauses {
		if isRangeOp(c.Op) {
			// Bounds on the same field share a single range clause.
			if rangeBody == nil {
				rangeBody = Query{"field": f.Path}
				queries = append(queries, rangeBody)
			}
			boundKey, inclusiveKey, inclusive := rangeBound(c.Op, ft)
			rangeBody[boundKey] = filter.NormalizeScalar(c.Operand)
			rangeBody[inclusiveKey] = inclusive
			continue
		}

		q, err := t.compileClause(c, f.Path, ft)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	if len(queries) == 1 {
		return queries[0], nil
	}
	return Query{"conjuncts": queries}, nil
}

func (t *Translator) compileClause(c filter.OpClause, path string, ft fieldType) (Query, error) {
	switch c.Op {
	case filter.OpEq:
		return equality(path, ft, c.Operand), nil

	case filter.OpNe:
		if ft == typeNull {
			// "not null" is having any value at all.
			return existsQuery(path), nil
		}
		return mustNot(equality(path, ft, c.Operand)), nil

	case filter.OpIn:
		return Query{"disjuncts": equalities(path, ft, c.Operand.([]any))}, nil

	case filter.OpNin:
		return Query{"must_not": Query{"disjuncts": equalities(path, ft, c.Operand.([]any))}}, nil

	case filter.OpExists:
		if c.Operand.(bool) {
			return existsQuery(path), nil
		}
		return mustNot(existsQuery(path)), nil

	case filter.OpNot:
		inner, err := t.compileField(filter.Field{Path: path, Clauses: c.Operand.([]filter.OpClause)})
		if err != nil {
			return nil, err
		}
		return mustNot(inner), nil

	default:
		return nil, &filter.UnsupportedOperatorError{Op: c.Op, Field: path}
	}
}

// equality builds the type-specific equality clause for a field value.
func equality(path string, ft fieldType, v any) Query {
	switch ft {
	case typeBool:
		return Query{"field": path, "bool": v}
	case typeNumber:
		return Query{
			"field":         path,
			"min":           v,
			"inclusive_min": true,
			"max":           v,
			"inclusive_max": true,
		}
	case typeDate:
		ts := filter.NormalizeScalar(v)
		return Query{
			"field":           path,
			"start":           ts,
			"inclusive_start": true,
			"end":             ts,
			"inclusive_end":   true,
		}
	case typeNull:
		return mustNot(existsQuery(path))
	default:
		return Query{"field": path, "term": v}
	}
}

func equalities(path string, ft fieldType, values []any) []Query {
	out := make([]Query, 0, len(values))
	for _, v := range values {
		out = append(out, equality(path, ft, v))
	}
	return out
}

func existsQuery(path string) Query {
	return Query{"field": path, "wildcard": "*"}
}

func mustNot(q Query) Query {
	return Query{"must_not": Query{"disjuncts": []Query{q}}}
}

func isRangeOp(op filter.Operator) bool {
	switch op {
	case filter.OpGt, filter.OpGte, filter.OpLt, filter.OpLte:
		return true
	}
	return false
}

// rangeBound maps an order operator to the range clause keys of the operand
// type: dates use start/end, numbers and strings use min/max.
func rangeBound(op filter.Operator, ft fieldType) (boundKey, inclusiveKey string, inclusive bool) {
	lower := op == filter.OpGt || op == filter.OpGte
	inclusive = op == filter.OpGte || op == filter.OpLte

	if ft == typeDate {
		if lower {
			return "start", "inclusive_start", inclusive
		}
		return "end", "inclusive_end", inclusive
	}
	if lower {
		return "min", "inclusive_min", inclusive
	}
	return "max", "inclusive_max", inclusive
}
