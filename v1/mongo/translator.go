package mongo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// Translator passes canonical filters through to a backend whose native
// filter language already speaks the canonical vocabulary. Translate returns
// a normalized deep copy; support checking is exposed separately so callers
// can probe compatibility without compiling.
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

// Translate validates the filter against the matrix and returns a
// structurally-normalized deep copy. The input is never aliased, so callers
// may hand the result to a driver that mutates it.
func (t *Translator) Translate(raw filter.Filter) (filter.Filter, error) {
	node, err := filter.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := t.check(node); err != nil {
		return nil, err
	}

	out := normalizeValue(map[string]any(raw)).(map[string]any)

	if t.logger != nil {
		t.logger.Debug("passed filter through",
			zap.Any("filter", raw),
		)
	}
	return out, nil
}

// IsSupportedFilter reports whether every operator in the filter is known
// and supported by this backend.
func (t *Translator) IsSupportedFilter(raw filter.Filter) bool {
	return t.ValidateFilterSupport(raw).Supported
}

// ValidateFilterSupport walks the whole filter and collects every violation
// instead of stopping at the first one.
func (t *Translator) ValidateFilterSupport(raw filter.Filter) filter.Report {
	return filter.Validate(raw, t.matrix)
}

// check fails fast on the first unsupported operator or malformed operand.
func (t *Translator) check(node filter.Node) error {
	switch n := node.(type) {
	case filter.And:
		return t.checkAll(n.Nodes)
	case filter.Or:
		return t.checkAll(n.Nodes)
	case filter.Nor:
		return t.checkAll(n.Nodes)
	case filter.Not:
		return t.check(n.Node)
	case filter.Field:
		return t.checkClauses(n.Path, n.Clauses)
	default:
		return fmt.Errorf("unexpected filter node %T", node)
	}
}

func (t *Translator) checkAll(nodes []filter.Node) error {
	for _, sub := range nodes {
		if err := t.check(sub); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) checkClauses(path string, clauses []filter.OpClause) error {
	for _, c := range clauses {
		if !t.matrix.Supports(c.Op) {
			return &filter.UnsupportedOperatorError{Op: c.Op, Field: path}
		}
		if err := filter.CheckOperand(c.Op, path, c.Operand); err != nil {
			return err
		}
		switch operand := c.Operand.(type) {
		case []filter.OpClause:
			if err := t.checkClauses(path, operand); err != nil {
				return err
			}
		case filter.Node:
			if err := t.check(operand); err != nil {
				return err
			}
		}
	}
	return nil
}

// normalizeValue deep-copies maps and slices and normalizes scalars at the
// leaves, keeping the vocabulary shape intact.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, sub := range x {
			out[k] = normalizeValue(sub)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, sub := range x {
			out[i] = normalizeValue(sub)
		}
		return out
	default:
		return filter.NormalizeScalar(v)
	}
}
