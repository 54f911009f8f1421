package filter

import (
	"fmt"
	"sort"
	"time"
)

// maxDepth bounds recursion so adversarially nested filters cannot exhaust
// the stack.
const maxDepth = 128

// Parse converts a raw canonical filter into a typed Node tree. Field maps
// whose values are plain objects without operator keys are flattened by
// dot-joining; bare literal values become $eq clauses; logical groups become
// And/Or/Nor/Not nodes. Keys are visited in sorted order so parsing is
// deterministic. The input is never mutated.
//
// Parse rejects structurally invalid input (a logical operator whose operand
// is not an array, an object mixing operator and field keys, excessive
// nesting) with a MalformedFilterError. Operator support and operand types
// are checked later, by Validate or by the translators.
func Parse(raw Filter) (Node, error) {
	return parseMap(raw, "", 0)
}

func parseMap(raw map[string]any, path string, depth int) (Node, error) {
	if depth > maxDepth {
		return nil, &MalformedFilterError{Path: path, Reason: "filter nesting exceeds maximum depth"}
	}

	nodes := make([]Node, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		node, err := parseEntry(key, raw[key], path, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if len(nodes) == 1 {
		return nodes[0], nil
	}
	// Zero entries parse to an empty And, the match-everything neutral
	// element. Multiple entries are an implicit conjunction.
	return And{Nodes: nodes}, nil
}

func parseEntry(key string, value any, path string, depth int) (Node, error) {
	switch Operator(key) {
	case OpAnd, OpOr, OpNor:
		subs, err := parseGroup(Operator(key), value, path, depth)
		if err != nil {
			return nil, err
		}
		switch Operator(key) {
		case OpAnd:
			return And{Nodes: subs}, nil
		case OpOr:
			return Or{Nodes: subs}, nil
		default:
			return Nor{Nodes: subs}, nil
		}
	case OpNot:
		sub, ok := value.(map[string]any)
		if !ok {
			return nil, &MalformedFilterError{Path: joinPath(path, key), Reason: "$not requires an object operand"}
		}
		node, err := parseMap(sub, path, depth+1)
		if err != nil {
			return nil, err
		}
		return Not{Node: node}, nil
	}

	if isOperatorKey(key) {
		return nil, &MalformedFilterError{Path: joinPath(path, key), Reason: fmt.Sprintf("operator %s is not valid at this position", key)}
	}

	return parseFieldValue(joinPath(path, key), value, depth)
}

// parseGroup parses the operand of $and/$or/$nor. The operand must be an
// array of sub-filters; a single object is accepted for convenience and
// treated as a one-element array.
func parseGroup(op Operator, value any, path string, depth int) ([]Node, error) {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, &MalformedFilterError{Path: joinPath(path, string(op)), Reason: fmt.Sprintf("%s requires an array of sub-filters", op)}
	}

	subs := make([]Node, 0, len(items))
	for i, item := range items {
		sub, ok := item.(map[string]any)
		if !ok {
			return nil, &MalformedFilterError{
				Path:   joinPath(path, string(op)),
				Reason: fmt.Sprintf("element %d is not an object", i),
			}
		}
		node, err := parseMap(sub, path, depth+1)
		if err != nil {
			return nil, err
		}
		subs = append(subs, node)
	}
	return subs, nil
}

func parseFieldValue(path string, value any, depth int) (Node, error) {
	if depth > maxDepth {
		return nil, &MalformedFilterError{Path: path, Reason: "filter nesting exceeds maximum depth"}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		// Bare literal: shorthand for equality.
		return Field{Path: path, Clauses: []OpClause{{Op: OpEq, Operand: value}}}, nil
	}

	operator, field := splitKeys(obj)
	switch {
	case len(obj) == 0:
		return nil, &MalformedFilterError{Path: path, Reason: "empty object value"}
	case len(operator) > 0 && len(field) > 0:
		return nil, &MalformedFilterError{Path: path, Reason: "object mixes operator and field keys"}
	case len(operator) > 0:
		clauses, err := parseOperatorMap(path, obj, depth)
		if err != nil {
			return nil, err
		}
		return Field{Path: path, Clauses: clauses}, nil
	default:
		// Nested field path: descend and dot-join.
		nodes := make([]Node, 0, len(obj))
		for _, key := range field {
			node, err := parseFieldValue(path+"."+key, obj[key], depth+1)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		if len(nodes) == 1 {
			return nodes[0], nil
		}
		return And{Nodes: nodes}, nil
	}
}

func parseOperatorMap(path string, obj map[string]any, depth int) ([]OpClause, error) {
	clauses := make([]OpClause, 0, len(obj))
	for _, key := range sortedKeys(obj) {
		op := Operator(key)
		operand := obj[key]

		switch op {
		case OpNot:
			sub, ok := operand.(map[string]any)
			if !ok {
				return nil, &MalformedFilterError{Path: path, Reason: "$not requires an object operand"}
			}
			inner, err := parseOperatorMap(path, sub, depth+1)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, OpClause{Op: OpNot, Operand: inner})
		case OpElemMatch:
			sub, ok := operand.(map[string]any)
			if !ok {
				return nil, &MalformedFilterError{Path: path, Reason: "$elemMatch requires an object operand"}
			}
			node, err := parseElemMatch(sub, depth+1)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, OpClause{Op: OpElemMatch, Operand: node})
		default:
			clauses = append(clauses, OpClause{Op: op, Operand: operand})
		}
	}
	return clauses, nil
}

// parseElemMatch parses an $elemMatch operand, which is either an operator
// map applied to the array elements themselves (empty path) or a sub-filter
// on element fields.
func parseElemMatch(obj map[string]any, depth int) (Node, error) {
	operator, field := splitKeys(obj)
	if len(operator) > 0 && len(field) > 0 {
		return nil, &MalformedFilterError{Reason: "$elemMatch operand mixes operator and field keys"}
	}
	if len(operator) > 0 {
		clauses, err := parseOperatorMap("", obj, depth)
		if err != nil {
			return nil, err
		}
		return Field{Clauses: clauses}, nil
	}
	return parseMap(obj, "", depth)
}

// CheckOperand validates operand shape and type for an operator of the
// closed vocabulary. Custom operators pass unchecked; their shape is the
// owning translator's business.
func CheckOperand(op Operator, field string, operand any) error {
	switch op {
	case OpEq:
		return nil
	case OpNe:
		if _, ok := operand.(map[string]any); ok {
			return &OperandError{Op: op, Field: field, Reason: "expects a scalar or array operand"}
		}
		return nil
	case OpGt, OpGte, OpLt, OpLte:
		if !isOrdered(operand) {
			return &OperandError{Op: op, Field: field, Reason: fmt.Sprintf("expects a number, string or date, got %T", operand)}
		}
		return nil
	case OpIn, OpNin, OpAll:
		if _, ok := operand.([]any); !ok {
			return &OperandError{Op: op, Field: field, Reason: fmt.Sprintf("expects an array, got %T", operand)}
		}
		return nil
	case OpExists:
		if _, ok := operand.(bool); !ok {
			return &OperandError{Op: op, Field: field, Reason: fmt.Sprintf("expects a boolean, got %T", operand)}
		}
		return nil
	case OpRegex, OpOptions:
		if _, ok := operand.(string); !ok {
			return &OperandError{Op: op, Field: field, Reason: fmt.Sprintf("expects a string, got %T", operand)}
		}
		return nil
	}
	return nil
}

// isOrdered reports whether v can participate in an order comparison:
// numbers, strings and dates qualify.
func isOrdered(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		string, time.Time:
		return true
	}
	return false
}

func splitKeys(obj map[string]any) (operator, field []string) {
	for key := range obj {
		if isOperatorKey(key) {
			operator = append(operator, key)
		} else {
			field = append(field, key)
		}
	}
	sort.Strings(operator)
	sort.Strings(field)
	return operator, field
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
