// Package postgres compiles canonical filters into SQL predicate clause
// trees.
//
// # Overview
//
// Translate walks a [filter.Filter] and emits a [Clause] tree of flat
// predicates ({field, op, value}) combined with and/or/not logic. The tree is
// JSON-serializable for WHERE-clause builders that consume predicate objects,
// and Clause.Expression renders it directly as a gorm clause expression:
//
//	tr := postgres.New(postgres.DefaultConfig())
//	c, err := tr.Translate(filter.Filter{
//	    "status": "active",
//	    "name":   map[string]any{"$regex": "foo"},
//	})
//	// c: and(status eq "active", name like "%foo%")
//	db.Clauses(clause.Where{Exprs: []clause.Expression{c.Expression()}})
//
// # Operator mapping
//
//	| canonical                  | predicate op | value            |
//	|----------------------------|--------------|------------------|
//	| $eq / bare literal         | eq           | direct           |
//	| $ne                        | neq          | direct           |
//	| $gt $gte $lt $lte          | gt gte lt lte| direct           |
//	| $in / $nin                 | in / nin     | array            |
//	| $exists true / false      | not_null / is_null | —          |
//	| $regex / $contains         | like         | %operand%        |
//	| $startsWith                | like         | operand%         |
//	| $endsWith                  | like         | %operand         |
//	| $iregex $icontains ...     | ilike        | as above         |
//
// A $regex with $options "i" also emits ilike; other regex flags are
// rejected. $not at field level negates the wrapped operator clauses with
// NOT (...); there is no operator-specific negation syntax in this backend.
//
// Empty logical groups keep the canonical neutral-element semantics: an
// empty $and renders as TRUE, an empty $or as FALSE.
package postgres
