// Package couchbase compiles canonical filters into the conjunct/disjunct
// trees of a full-text search query language.
//
// # Overview
//
// Translate walks a [filter.Filter] and emits a map-shaped [Query]:
//
//	tr := couchbase.New(couchbase.DefaultConfig())
//	q, err := tr.Translate(filter.Filter{
//	    "status": "active",
//	    "age":    map[string]any{"$gte": 18},
//	})
//	// q: {"conjuncts": [
//	//      {"field": "age", "min": 18, "inclusive_min": true},
//	//      {"field": "status", "term": "active"},
//	//    ]}
//
// $and maps to conjuncts, $or to disjuncts, $not and $nor to a must_not of
// disjuncts. Empty logical groups compile to the empty object, the
// language's no-constraint sentinel.
//
// # Type dispatch
//
// Clause shapes differ per operand type, so before a field compiles every
// operand applied to it is classified as string, number, boolean, date or
// null, and the classes must agree. Mixing types on one field, such as
// {"age": {"$gt": 5, "$lt": "10"}}, fails with a type mismatch error naming
// the field. The per-type clause shapes:
//
//	| type    | equality                                      | order bounds       |
//	|---------|-----------------------------------------------|--------------------|
//	| string  | {field, term}                                 | min/max            |
//	| number  | {field, min, max, both bounds inclusive}      | min/max            |
//	| boolean | {field, bool}                                 | n/a                |
//	| date    | {field, start, end, both bounds inclusive}    | start/end, RFC3339 |
//	| null    | must_not of {field, wildcard: "*"}            | n/a                |
//
// $ne is modeled as must_not of the equality clause, $in as disjuncts of
// equalities, $exists as {field, wildcard: "*"} or its must_not. Order
// bounds on the same field merge into a single range clause.
package couchbase
