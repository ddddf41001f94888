package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-reflect"
)

var (
	// ErrEmptyGroup is returned when a group without items is found while
	// composing a predicate.
	ErrEmptyGroup = errors.New("group has no items")
	// ErrUnboundParameter is returned when an expression is compiled with a
	// leaf bound to a parameter other than the lambda parameter.
	ErrUnboundParameter = errors.New("expression references an unbound parameter")
	// ErrTargetNil is returned when a nil target is given to a decoder.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrNonPointer is returned when a decoder target is not a non-nil
	// pointer.
	ErrNonPointer = errors.New("target must be a non-nil pointer")
)

// ErrPropertyNotFound is returned when a mapped path cannot be resolved on the
// record type.
type ErrPropertyNotFound struct {
	Type    reflect.Type
	Path    []string
	Segment string
}

// Error implements [error].
func (e ErrPropertyNotFound) Error() string {
	return fmt.Sprintf(
		"cannot resolve %q on %s: no member %q",
		strings.Join(e.Path, "."), e.Type, e.Segment,
	)
}

// ErrPropertyType is returned when a resolved property cannot be compared with
// the value type of a criterion.
type ErrPropertyType struct {
	Path      []string
	Property  reflect.Type
	ValueType reflect.Type
}

// Error implements [error].
func (e ErrPropertyType) Error() string {
	return fmt.Sprintf(
		"property %q of type %s cannot be compared with %s",
		strings.Join(e.Path, "."), e.Property, e.ValueType,
	)
}

// ErrOperatorNotSupported is returned when a criterion uses an operator that
// does not belong to its family.
type ErrOperatorNotSupported struct {
	Family   Family
	Operator Operator
}

// Error implements [error].
func (e ErrOperatorNotSupported) Error() string {
	return fmt.Sprintf("operator %s is not supported by %s filters", e.Operator, e.Family)
}

// ErrFamilyNotSupported is returned when a command reports a family the
// compiler does not know, or when its criteria do not implement the family
// interface.
type ErrFamilyNotSupported struct {
	Family Family
	Type   string
}

// Error implements [error].
func (e ErrFamilyNotSupported) Error() string {
	return fmt.Sprintf("%s filter family is not supported for %s", e.Family, e.Type)
}

// ErrGroupOperatorNotSupported is returned when a group uses an operator other
// than [GroupAnd] and [GroupOr].
type ErrGroupOperatorNotSupported struct {
	Operator GroupOperator
}

// Error implements [error].
func (e ErrGroupOperatorNotSupported) Error() string {
	return fmt.Sprintf("group operator %d is not supported", e.Operator)
}

// ErrCriterionNotCompiled is returned when a group references a criterion
// that was not compiled during the current call.
type ErrCriterionNotCompiled struct {
	ID string
}

// Error implements [error].
func (e ErrCriterionNotCompiled) Error() string {
	return fmt.Sprintf("group references criterion %q which was not compiled", e.ID)
}

// ErrSpecificationType is returned when a filter specification, or one of
// its tagged fields, has an unexpected type.
type ErrSpecificationType struct {
	Field string
	Type  reflect.Type
}

// Error implements [error].
func (e ErrSpecificationType) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("filter specification must be a struct, got %s", e.Type)
	}
	return fmt.Sprintf("field %q of type %s is not a filter command", e.Field, e.Type)
}

// ErrUnknownOperator is returned when parsing an operator name that does not
// exist.
type ErrUnknownOperator struct {
	Name string
}

// Error implements [error].
func (e ErrUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Name)
}

// ErrDecode is returned by [Decoder] to wrap third party decoding errors.
type ErrDecode struct {
	Source any
	Target any
	Cause  error
}

// Error implements [error].
func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T: %s", e.Source, e.Target, e.Cause)
}

// Unwrap returns the underlying decoding error.
func (e ErrDecode) Unwrap() error {
	return e.Cause
}

// ErrCannotCompare is returned when [Comparer.Compare] is called with two
// values that cannot be compared by the current [Comparer] interface.
type ErrCannotCompare struct {
	A, B any
}

// Error implements [error].
func (e ErrCannotCompare) Error() string {
	return fmt.Sprintf("cannot compare unexpected types %T and %T", e.A, e.B)
}
