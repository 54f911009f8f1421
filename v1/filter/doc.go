// Package filter defines the canonical, backend-agnostic query filter model
// shared by every translator in this module.
//
// # Overview
//
// A canonical filter is a MongoDB-style nested map: field paths map to
// literal values (equality shorthand) or operator maps, and the logical keys
// $and/$or/$not/$nor group sub-filters. Each backend package (postgres,
// opensearch, couchbase, searchql, mongo, qdrant) compiles the same filter
// value into its native query representation.
//
//	f := filter.Filter{
//	    "status": "published",
//	    "price":  map[string]any{"$gte": 100, "$lt": 500},
//	    "$or": []any{
//	        map[string]any{"city": "London"},
//	        map[string]any{"city": "Berlin"},
//	    },
//	}
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────┐
//	│                     caller / storage layer              │
//	└───────────────────────────┬─────────────────────────────┘
//	                            │ filter.Filter
//	                            ▼
//	┌─────────────────────────────────────────────────────────┐
//	│  filter: Parse → Node tree, Matrix, Validate, Normalize │
//	└───────┬──────────┬──────────┬──────────┬──────────┬─────┘
//	        ▼          ▼          ▼          ▼          ▼
//	   postgres   opensearch  couchbase   searchql    mongo ...
//	   (clauses)  (bool DSL)  (FTS tree)  (string)  (pass-through)
//
// # Responsibilities
//
//   - Parse converts the raw map into an explicit tagged union (And, Or,
//     Nor, Not, Field) so translators dispatch exhaustively instead of
//     re-inspecting map shapes.
//   - The operator vocabulary is closed and classified into categories
//     (logical, comparison, numeric, array, element, regex); classification
//     is backend-independent.
//   - Matrix declares per-translator operator support; the same operator can
//     classify fine yet be rejected by one backend's matrix, which is what
//     lets diagnostics say "not supported by this backend" rather than
//     "unknown operator".
//   - Validate walks a filter and collects every violation in one pass, so
//     callers can surface all problems of a mixed filter together.
//   - NormalizeScalar/NormalizeSlice map source literals to the default
//     backend encodings (dates to RFC 3339 strings, nil to null).
//
// # Semantics shared by all translators
//
//   - A bare literal field value is identical to {$eq: literal}.
//   - An empty $and matches everything; an empty $or matches nothing; their
//     negations invert accordingly. The native encoding of these neutral
//     elements differs per backend but the semantics are uniform.
//   - Translation never mutates its input and never silently drops an
//     unsupported construct: dropping one would change query semantics.
//
// Parsing and validation are pure tree walks with no I/O; all types in this
// package are safe for concurrent use.
package filter
