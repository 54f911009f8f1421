package filter

// Filter is the raw canonical filter value accepted by every translator:
// a MongoDB-style nested map of field paths, operator maps and logical
// groups. Use Parse to turn one into a typed Node tree.
type Filter = map[string]any

// Node is a parsed canonical filter node. It is a closed union: And, Or,
// Nor, Not and Field are the only implementations.
type Node interface {
	// IsFilterNode is a marker method to keep the union closed.
	IsFilterNode()
}

// And matches documents satisfying every sub-node. An empty And matches
// everything (neutral element).
type And struct {
	Nodes []Node
}

func (And) IsFilterNode() {}

// Or matches documents satisfying at least one sub-node. An empty Or matches
// nothing (neutral element).
type Or struct {
	Nodes []Node
}

func (Or) IsFilterNode() {}

// Nor matches documents satisfying none of the sub-nodes.
type Nor struct {
	Nodes []Node
}

func (Nor) IsFilterNode() {}

// Not matches documents not satisfying the sub-node.
type Not struct {
	Node Node
}

func (Not) IsFilterNode() {}

// Field applies one or more operator clauses to a single dot-joined field
// path. Bare literals parse as a single $eq clause. A Field produced from an
// $elemMatch operand has an empty Path.
type Field struct {
	Path    string
	Clauses []OpClause
}

func (Field) IsFilterNode() {}

// OpClause is one operator application within a Field. Operand is one of:
//   - a scalar or []any, for most operators
//   - a Node, for $elemMatch
//   - []OpClause, for a field-level $not wrapping other operator clauses
type OpClause struct {
	Op      Operator
	Operand any
}
