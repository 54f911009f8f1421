package couchbase

import (
	"sort"
	"time"

	"github.com/Aleph-Alpha/queryfilter/v1/filter"
)

// fieldType is the runtime type class of an operand. Clause shapes in the
// full-text query language differ per class, so every operand applied to a
// field must fall into exactly one of them.
type fieldType string

const (
	typeString fieldType = "string"
	typeNumber fieldType = "number"
	typeBool   fieldType = "boolean"
	typeDate   fieldType = "date"
	typeNull   fieldType = "null"
)

func operandType(v any) (fieldType, bool) {
	switch v.(type) {
	case nil:
		return typeNull, true
	case string:
		return typeString, true
	case bool:
		return typeBool, true
	case time.Time, *time.Time:
		return typeDate, true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return typeNumber, true
	}
	return "", false
}

// fieldTypeOf inspects every operand applied to the field and requires a
// single type class across all of them. $exists takes a flag rather than a
// field value and is left out of the inspection.
func fieldTypeOf(f filter.Field) (fieldType, error) {
	seen := map[fieldType]bool{}
	if err := collectTypes(f.Path, f.Clauses, seen); err != nil {
		return "", err
	}
	if len(seen) > 1 {
		types := make([]string, 0, len(seen))
		for ft := range seen {
			types = append(types, string(ft))
		}
		sort.Strings(types)
		return "", &filter.TypeMismatchError{Field: f.Path, Types: types}
	}
	for ft := range seen {
		return ft, nil
	}
	// Only operators without field values, e.g. a lone $exists.
	return typeString, nil
}

func collectTypes(path string, clauses []filter.OpClause, seen map[fieldType]bool) error {
	for _, c := range clauses {
		switch c.Op {
		case filter.OpExists:
			continue
		case filter.OpNot:
			inner, ok := c.Operand.([]filter.OpClause)
			if !ok {
				continue
			}
			if err := collectTypes(path, inner, seen); err != nil {
				return err
			}
		case filter.OpIn, filter.OpNin:
			values, ok := c.Operand.([]any)
			if !ok {
				continue
			}
			for _, v := range values {
				if err := noteType(path, c.Op, v, seen); err != nil {
					return err
				}
			}
		default:
			if err := noteType(path, c.Op, c.Operand, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func noteType(path string, op filter.Operator, v any, seen map[fieldType]bool) error {
	ft, ok := operandType(v)
	if !ok {
		return &filter.OperandError{
			Op:     op,
			Field:  path,
			Reason: "operand type is not representable in a full-text query",
		}
	}
	seen[ft] = true
	return nil
}
