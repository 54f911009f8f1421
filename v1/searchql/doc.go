// Package searchql compiles canonical filters into a single query string in
// a SQL-flavored search query language.
//
// # Overview
//
// Translate walks a [filter.Filter] and renders one expression:
//
//	tr := searchql.New(searchql.DefaultConfig())
//	q, err := tr.Translate(filter.Filter{
//	    "status": map[string]any{"$ne": "archived"},
//	    "age":    map[string]any{"$gte": 18},
//	})
//	// q: (age >= 18 AND status != 'archived')
//
// # Rendering rules
//
// Comparison operators use the symbols = != > >= < <=. Strings are
// single-quoted, switching to double quotes when the value contains an
// apostrophe. Booleans render as 1/0, null as NULL, dates as quoted
// RFC 3339 strings. $in and $nin render as IN (...) / NOT IN (...),
// $exists as IS NOT NULL / IS NULL.
//
// $regex renders as GLOB and the custom $contains operator as CONTAINS.
// Under a field-level $not these use their direct negated keyword forms,
// NOT GLOB and NOT CONTAINS, instead of wrapping the positive clause in
// NOT (...); every other negation wraps. $all desugars into a conjunction
// of per-element CONTAINS clauses.
//
// Multi-clause groups are parenthesized, single clauses stay bare. An empty
// $and renders the tautology 1 = 1, an empty $or the contradiction 0 = 1.
package searchql
