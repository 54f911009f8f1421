// Package opensearch compiles canonical filters into the JSON bool-query
// DSL used by OpenSearch and Elasticsearch style engines.
//
// # Overview
//
// Translate walks a [filter.Filter] and emits a map-shaped [Query] fragment
// that can be placed under the "query" key of a search request body:
//
//	tr := opensearch.New(opensearch.DefaultConfig())
//	q, err := tr.Translate(filter.Filter{
//	    "status": "active",
//	    "name":   map[string]any{"$regex": "^foo"},
//	})
//	// q: {"bool": {"must": [
//	//      {"wildcard": {"name": {"value": "foo*"}}},
//	//      {"term": {"status": {"value": "active"}}},
//	//    ]}}
//
// # Operator mapping
//
//	| canonical              | query                                      |
//	|------------------------|--------------------------------------------|
//	| $eq / bare literal     | term {field: {value: v}}                   |
//	| $ne                    | bool.must_not of the term                  |
//	| $gt $gte $lt $lte      | range {field: {gt/gte/lt/lte: v}}          |
//	| $in / $nin             | terms / bool.must_not of terms             |
//	| $exists true / false   | exists {field} / bool.must_not of exists   |
//	| $regex (anchored)      | wildcard, anchors stripped, * at open ends |
//	| $regex (unanchored)    | regexp on the raw pattern                  |
//
// Literal *, ? and backslashes in an anchored pattern are escaped before
// the wildcard is added; see wildcardPattern. A $options value of "i" sets
// case_insensitive on the regexp or wildcard body.
//
// Logical structure maps onto bool queries: $and to must, $or to should
// with minimum_should_match 1, $not and $nor to must_not. An empty $and
// becomes a must of match_all, an empty $or a must_not of match_all, so the
// canonical neutral-element semantics survive encoding.
package opensearch
