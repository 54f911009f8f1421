// Package qdrant compiles canonical filters into vector point-store
// filters.
//
// # Overview
//
// Translate walks a [filter.Filter] and emits a *qdrant.Filter ready for
// the go-client's query and scroll APIs:
//
//	tr := qdrant.New(qdrant.DefaultConfig().WithFieldPrefix("custom"))
//	f, err := tr.Translate(filter.Filter{
//	    "document_id": "doc456",
//	    "score":       map[string]any{"$gte": 10},
//	})
//	// f.Must: match(custom.document_id, "doc456"), range(custom.score >= 10)
//
// A nil result means no constraint. $and compiles to Must, $or to Should,
// $not and $nor to MustNot; sub-groups nest as filter conditions. The empty
// $or compiles to a MustNot of the universal (empty) filter condition, so
// it still matches nothing.
//
// Field conditions are type-dispatched: strings match as keywords, booleans
// and integers with their native match conditions, JSON numbers (float64)
// as integers. Order operators merge into one range condition per field,
// numeric or datetime. $exists maps onto the is-empty condition. $regex has
// no counterpart in the store and is rejected as unsupported.
//
// # Field prefixing
//
// Stores that namespace user-defined metadata under a payload prefix set
// Config.FieldPrefix; every field path is then prefixed before compiling,
// with already-prefixed paths left alone.
package qdrant
