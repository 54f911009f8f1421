package postgres

import (
	"gorm.io/gorm/clause"
)

// Op identifies a SQL predicate operator. The names are the keys a
// downstream WHERE-clause builder consumes.
type Op string

const (
	OpEq      Op = "eq"
	OpNeq     Op = "neq"
	OpGt      Op = "gt"
	OpGte     Op = "gte"
	OpLt      Op = "lt"
	OpLte     Op = "lte"
	OpIn      Op = "in"
	OpNin     Op = "nin"
	OpLike    Op = "like"
	OpILike   Op = "ilike"
	OpIsNull  Op = "is_null"
	OpNotNull Op = "not_null"
)

// Logic identifies how a clause group combines its children.
type Logic string

const (
	LogicAnd Logic = "and"
	LogicOr  Logic = "or"
	LogicNot Logic = "not"
)

// Predicate is a single flat SQL predicate: field, operator, operand.
// For OpIsNull/OpNotNull the Value is unset.
type Predicate struct {
	Field string `json:"field"`
	Op    Op     `json:"op"`
	Value any    `json:"value,omitempty"`
}

// Clause is the translator output: either a leaf predicate (Pred non-nil)
// or a logical group of sub-clauses. An empty LogicAnd group matches every
// row, an empty LogicOr group matches none.
type Clause struct {
	Logic Logic      `json:"logic,omitempty"`
	Pred  *Predicate `json:"pred,omitempty"`
	Subs  []Clause   `json:"subs,omitempty"`
}

// And groups clauses conjunctively.
func And(subs ...Clause) Clause { return Clause{Logic: LogicAnd, Subs: subs} }

// Or groups clauses disjunctively.
func Or(subs ...Clause) Clause { return Clause{Logic: LogicOr, Subs: subs} }

// Not negates a clause.
func Not(sub Clause) Clause { return Clause{Logic: LogicNot, Subs: []Clause{sub}} }

// Leaf wraps a predicate as a clause.
func Leaf(p Predicate) Clause { return Clause{Pred: &p} }

// Expression renders the clause as a GORM clause expression, ready for
// db.Clauses(clause.Where{Exprs: ...}) or manual SQL building.
func (c Clause) Expression() clause.Expression {
	if c.Pred != nil {
		return c.Pred.expression()
	}

	switch c.Logic {
	case LogicNot:
		return clause.Not(expressions(c.Subs)...)
	case LogicOr:
		if len(c.Subs) == 0 {
			// Empty disjunction matches nothing.
			return clause.Expr{SQL: "FALSE"}
		}
		return clause.Or(expressions(c.Subs)...)
	default:
		if len(c.Subs) == 0 {
			// Empty conjunction matches everything.
			return clause.Expr{SQL: "TRUE"}
		}
		return clause.And(expressions(c.Subs)...)
	}
}

func expressions(subs []Clause) []clause.Expression {
	exprs := make([]clause.Expression, len(subs))
	for i, sub := range subs {
		exprs[i] = sub.Expression()
	}
	return exprs
}

func (p *Predicate) expression() clause.Expression {
	col := clause.Column{Name: p.Field}
	switch p.Op {
	case OpEq:
		return clause.Eq{Column: col, Value: p.Value}
	case OpNeq:
		return clause.Neq{Column: col, Value: p.Value}
	case OpGt:
		return clause.Gt{Column: col, Value: p.Value}
	case OpGte:
		return clause.Gte{Column: col, Value: p.Value}
	case OpLt:
		return clause.Lt{Column: col, Value: p.Value}
	case OpLte:
		return clause.Lte{Column: col, Value: p.Value}
	case OpIn:
		return clause.IN{Column: col, Values: toValues(p.Value)}
	case OpNin:
		return clause.Not(clause.IN{Column: col, Values: toValues(p.Value)})
	case OpLike:
		return clause.Like{Column: col, Value: p.Value}
	case OpILike:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, p.Value}}
	case OpIsNull:
		return clause.Expr{SQL: "? IS NULL", Vars: []any{col}}
	case OpNotNull:
		return clause.Expr{SQL: "? IS NOT NULL", Vars: []any{col}}
	default:
		return clause.Expr{SQL: "FALSE"}
	}
}

func toValues(v any) []any {
	if vs, ok := v.([]any); ok {
		return vs
	}
	return []any{v}
}
