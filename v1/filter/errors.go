package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the translation error taxonomy. Typed errors below
// unwrap to these, so callers can branch with errors.Is without inspecting
// the concrete type.
var (
	// ErrUnsupportedOperator is returned when an operator is not in the
	// backend's support matrix.
	ErrUnsupportedOperator = errors.New("filter: unsupported operator")

	// ErrInvalidOperand is returned when an operand has the wrong shape or
	// type for its operator (e.g. $in given a non-array).
	ErrInvalidOperand = errors.New("filter: invalid operand")

	// ErrTypeMismatch is returned by backends that require homogeneous
	// operand types across all operators applied to one field.
	ErrTypeMismatch = errors.New("filter: mixed operand types")

	// ErrMalformedFilter is returned for structurally invalid input.
	ErrMalformedFilter = errors.New("filter: malformed filter")
)

// UnsupportedOperatorError names the operator and field of a support-matrix
// violation.
type UnsupportedOperatorError struct {
	Op    Operator
	Field string
}

func (e *UnsupportedOperatorError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("operator %s is not supported by this backend", e.Op)
	}
	return fmt.Sprintf("operator %s on field %q is not supported by this backend", e.Op, e.Field)
}

func (e *UnsupportedOperatorError) Unwrap() error { return ErrUnsupportedOperator }

// OperandError names the operator and field of an operand shape/type
// violation.
type OperandError struct {
	Op     Operator
	Field  string
	Reason string
}

func (e *OperandError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid operand for %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("invalid operand for %s on field %q: %s", e.Op, e.Field, e.Reason)
}

func (e *OperandError) Unwrap() error { return ErrInvalidOperand }

// TypeMismatchError reports heterogeneous operand types applied to a single
// field, for backends whose per-field compilation is type-dispatched.
type TypeMismatchError struct {
	Field string
	Types []string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q mixes operand types (%s); all operators on one field must share a type",
		e.Field, strings.Join(e.Types, ", "))
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// MalformedFilterError reports structurally invalid input, e.g. a logical
// operator whose operand is not an array.
type MalformedFilterError struct {
	Path   string
	Reason string
}

func (e *MalformedFilterError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed filter: %s", e.Reason)
	}
	return fmt.Sprintf("malformed filter at %q: %s", e.Path, e.Reason)
}

func (e *MalformedFilterError) Unwrap() error { return ErrMalformedFilter }
