package filter

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Report is the outcome of a validation pass. Messages holds one entry per
// violation; validation never short-circuits, so a single pass surfaces
// every unsupported construct in the filter.
type Report struct {
	Supported bool
	Messages  []string
}

// Err folds the report into a single error, or nil if the filter is
// supported.
func (r Report) Err() error {
	if r.Supported {
		return nil
	}
	var merr *multierror.Error
	for _, msg := range r.Messages {
		merr = multierror.Append(merr, errors.New(msg))
	}
	return merr.ErrorOrNil()
}

// Validate walks a canonical filter and checks every operator occurrence
// against the matrix: classification, support and operand shape. All
// violations are collected so callers can report them together. Structurally
// invalid input yields a single message for the first structural problem,
// since nothing beyond it can be interpreted.
func Validate(raw Filter, m Matrix) Report {
	node, err := Parse(raw)
	if err != nil {
		return Report{Messages: []string{err.Error()}}
	}
	return ValidateNode(node, m)
}

// ValidateNode validates an already-parsed filter tree against the matrix.
func ValidateNode(node Node, m Matrix) Report {
	w := &validateWalk{matrix: m}
	w.node(node)
	return Report{Supported: len(w.messages) == 0, Messages: w.messages}
}

type validateWalk struct {
	matrix   Matrix
	messages []string
}

func (w *validateWalk) node(n Node) {
	switch t := n.(type) {
	case And:
		w.group(OpAnd, t.Nodes)
	case Or:
		w.group(OpOr, t.Nodes)
	case Nor:
		w.group(OpNor, t.Nodes)
	case Not:
		w.operator(OpNot, "")
		w.node(t.Node)
	case Field:
		w.field(t)
	}
}

func (w *validateWalk) group(op Operator, nodes []Node) {
	w.operator(op, "")
	for _, sub := range nodes {
		w.node(sub)
	}
}

func (w *validateWalk) field(f Field) {
	w.clauses(f.Path, f.Clauses)

	if hasClause(f.Clauses, OpOptions) && !hasClause(f.Clauses, OpRegex) {
		w.messages = append(w.messages,
			(&OperandError{Op: OpOptions, Field: f.Path, Reason: "$options requires a sibling $regex"}).Error())
	}
}

func (w *validateWalk) clauses(path string, clauses []OpClause) {
	for _, c := range clauses {
		w.operator(c.Op, path)

		switch operand := c.Operand.(type) {
		case []OpClause:
			w.clauses(path, operand)
		case Node:
			w.node(operand)
		default:
			if err := CheckOperand(c.Op, path, c.Operand); err != nil {
				w.messages = append(w.messages, err.Error())
			}
		}
	}
}

func (w *validateWalk) operator(op Operator, field string) {
	if _, known := w.matrix.Classify(op); !known {
		w.messages = append(w.messages,
			(&UnsupportedOperatorError{Op: op, Field: field}).Error())
		return
	}
	if !w.matrix.Supports(op) {
		w.messages = append(w.messages,
			(&UnsupportedOperatorError{Op: op, Field: field}).Error())
	}
}

func hasClause(clauses []OpClause, op Operator) bool {
	for _, c := range clauses {
		if c.Op == op {
			return true
		}
	}
	return false
}
