package opensearch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Query is a fragment of the search engine's JSON query DSL, ready to be
// placed under the "query" key of a search request body.
type Query = map[string]any

// Translator compiles canonical filters into bool queries.
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

// Translate converts a canonical filter into a query DSL fragment.
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
		t.logger.Debug("translated filter to search query",
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
			subs = []Query{{"match_all": Query{}}}
		}
		return Query{"bool": Query{"must": subs}}, nil

	case filter.Or:
		subs, err := t.compileGroup(n.Nodes)
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			// An empty disjunction matches nothing.
			return Query{"bool": Query{"must_not": []Query{{"match_all": Query{}}}}}, nil
		}
		return Query{"bool": Query{"should": subs, "minimum_should_match": 1}}, nil

	case filter.Nor:
		subs, err := t.compileGroup(n.Nodes)
		if err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			return Query{"bool": Query{"must": []Query{{"match_all": Query{}}}}}, nil
		}
		return Query{"bool": Query{"must_not": subs}}, nil

	case filter.Not:
		sub, err := t.compile(n.Node)
		if err != nil {
			return nil, err
		}
		return Query{"bool": Query{"must_not": []Query{sub}}}, nil

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
	insensitive, err := t.regexFlags(f)
	if err != nil {
		return nil, err
	}

	var (
		queries   []Query
		rangeBody Query
	)
	for _, c := range f.Clauses {
		if c.Op == filter.OpOptions {
			continue
		}
		if isRangeOp(c.Op) {
			if err := t.checkClause(c, f.Path); err != nil {
				return nil, err
			}
			// Bounds on the same field share a single range query.
			if rangeBody == nil {
				rangeBody = Query{}
				queries = append(queries, Query{"range": Query{f.Path: rangeBody}})
			}
			rangeBody[rangeKey(c.Op)] = filter.NormalizeScalar(c.Operand)
			continue
		}

		q, err := t.compileClause(c, f.Path, insensitive)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	if len(queries) == 1 {
		return queries[0], nil
	}
	return Query{"bool": Query{"must": queries}}, nil
}

func (t *Translator) checkClause(c filter.OpClause, path string) error {
	if !t.matrix.Supports(c.Op) {
		return &filter.UnsupportedOperatorError{Op: c.Op, Field: path}
	}
	return filter.CheckOperand(c.Op, path, c.Operand)
}

func (t *Translator) compileClause(c filter.OpClause, path string, insensitive bool) (Query, error) {
	if err := t.checkClause(c, path); err != nil {
		return nil, err
	}

	switch c.Op {
	case filter.OpEq:
		if c.Operand == nil {
			return mustNot(Query{"exists": Query{"field": path}}), nil
		}
		return Query{"term": Query{path: Query{"value": filter.NormalizeScalar(c.Operand)}}}, nil

	case filter.OpNe:
		if c.Operand == nil {
			return Query{"exists": Query{"field": path}}, nil
		}
		return mustNot(Query{"term": Query{path: Query{"value": filter.NormalizeScalar(c.Operand)}}}), nil

	case filter.OpIn:
		return Query{"terms": Query{path: filter.NormalizeSlice(c.Operand.([]any))}}, nil

	case filter.OpNin:
		return mustNot(Query{"terms": Query{path: filter.NormalizeSlice(c.Operand.([]any))}}), nil

	case filter.OpExists:
		exists := Query{"exists": Query{"field": path}}
		if c.Operand.(bool) {
			return exists, nil
		}
		return mustNot(exists), nil

	case filter.OpRegex:
		return t.compileRegex(path, c.Operand.(string), insensitive), nil

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

func (t *Translator) compileRegex(path, pattern string, insensitive bool) Query {
	body := Query{}
	if value, ok := wildcardPattern(pattern); ok {
		body["value"] = value
		if insensitive {
			body["case_insensitive"] = true
		}
		return Query{"wildcard": Query{path: body}}
	}
	body["value"] = pattern
	if insensitive {
		body["case_insensitive"] = true
	}
	return Query{"regexp": Query{path: body}}
}

// regexFlags resolves a $options clause on the field. Only the "i" flag is
// honored; anything else is rejected rather than silently changing meaning.
func (t *Translator) regexFlags(f filter.Field) (bool, error) {
	for _, c := range f.Clauses {
		if c.Op != filter.OpOptions {
			continue
		}
		if !hasRegexClause(f.Clauses) {
			return false, &filter.OperandError{
				Op:     filter.OpOptions,
				Field:  f.Path,
				Reason: "$options requires a $regex clause on the same field",
			}
		}
		if err := filter.CheckOperand(c.Op, f.Path, c.Operand); err != nil {
			return false, err
		}
		flags := c.Operand.(string)
		for _, r := range flags {
			if r != 'i' {
				return false, &filter.OperandError{
					Op:     filter.OpOptions,
					Field:  f.Path,
					Reason: fmt.Sprintf("unsupported regex flag %q", string(r)),
				}
			}
		}
		return flags != "", nil
	}
	return false, nil
}

func hasRegexClause(clauses []filter.OpClause) bool {
	for _, c := range clauses {
		if c.Op == filter.OpRegex {
			return true
		}
	}
	return false
}

func mustNot(q Query) Query {
	return Query{"bool": Query{"must_not": []Query{q}}}
}

func isRangeOp(op filter.Operator) bool {
	switch op {
	case filter.OpGt, filter.OpGte, filter.OpLt, filter.OpLte:
		return true
	}
	return false
}

func rangeKey(op filter.Operator) string {
	switch op {
	case filter.OpGt:
		return "gt"
	case filter.OpGte:
		return "gte"
	case filter.OpLt:
		return "lt"
	default:
		return "lte"
	}
}
