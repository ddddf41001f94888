// Package domain contains domain-specific interfaces and shared types for
// queryfilter.
//
// This package defines the filter data model consumed by the compiler
// (criteria, commands and groups), the interfaces that must be implemented by
// adapters, and the errors returned while building predicates.
package domain

import (
	"context"
	"io"
	"iter"

	"github.com/goccy/go-reflect"
)

// Item is anything that can take part in a [Group]. Every item has a stable
// identity, assigned at construction and never changed.
type Item interface {
	// ID returns the identity of the item.
	ID() string
}

// Criterion is a single atomic test of a property against a value.
type Criterion interface {
	Item
	// Operator returns the comparison performed by the criterion.
	Operator() Operator
	// Value returns the boxed criterion value, or nil if it is absent.
	Value() any
}

// EquatableCriterion is a [Criterion] of the [FamilyEquatable] family.
type EquatableCriterion interface {
	Criterion
	// ValueType returns the static type of the criterion value.
	ValueType() reflect.Type
	// Equal reports whether v, which must hold a value of ValueType,
	// equals the criterion value.
	Equal(v any) bool
}

// RangeCriterion is a [Criterion] of the [FamilyRange] family. Its value is
// optional.
type RangeCriterion interface {
	Criterion
	// ValueType returns the static type of the criterion value.
	ValueType() reflect.Type
	// HasValue reports whether a value was given.
	HasValue() bool
	// NonNullableValue returns the value, or the zero value of ValueType
	// if it is absent.
	NonNullableValue() any
	// Compare compares v, which must hold a value of ValueType, with the
	// criterion value, returning -1, 0 or 1.
	Compare(v any) int
}

// StringCriterion is a [Criterion] of the [FamilyString] family.
type StringCriterion interface {
	Criterion
	// Text returns the criterion value.
	Text() string
	// IgnoreCase reports whether the comparison should ignore case.
	IgnoreCase() bool
}

// Command owns an ordered list of criteria of the same family.
type Command interface {
	// Family returns the family shared by every criterion of the command.
	Family() Family
	// TotalItems returns the number of criteria added to the command.
	TotalItems() int
	// Items returns the criteria in the order they were added.
	Items() []Criterion
}

// Group is a node of a logical tree combining items with a [GroupOperator].
type Group interface {
	Item
	// Operator returns the operator used to fold the group items.
	Operator() GroupOperator
	// Items returns the group members, which can be criteria, references
	// or nested groups.
	Items() []Item
}

// Grouper is implemented by filter specifications that carry top-level
// groups.
type Grouper interface {
	// FilterGroups returns the top-level groups in declaration order.
	FilterGroups() []Group
}

// Restorer is implemented by commands that can be rebuilt from serialized
// records.
type Restorer interface {
	// Restore replaces the command criteria with the given records. The
	// convert function decodes a raw record value into the pointer passed
	// as second argument.
	Restore(recs []Record, convert func(src any, tgt any) error) error
}

// GroupRestorer is implemented by group lists that can be rebuilt from
// serialized records.
type GroupRestorer interface {
	// RestoreGroups replaces the groups with the given records.
	RestoreGroups(recs []GroupRecord) error
}

// Property is a resolved, possibly nested, member of a record type.
type Property interface {
	// Address returns the path segments used to reach the property.
	Address() []string
	// Type returns the property type, with the outermost pointer removed.
	Type() reflect.Type
	// Nullable reports whether the property itself is a pointer.
	Nullable() bool
	// Get reads the property from a record. The boolean result is false
	// when a nil pointer was found along the path.
	Get(record reflect.Value) (reflect.Value, bool)
}

// FieldNavigator resolves dotted paths against record types.
type FieldNavigator interface {
	// GetAddress splits a field path into its segments.
	GetAddress(field string) ([]string, error)
	// Resolve walks the given segments starting from typ.
	Resolve(typ reflect.Type, addr ...string) (Property, error)
}

// Comparer provides ordering and comparison operations for different data types.
type Comparer interface {
	// Compare returns -1, 0, or 1 based on the comparison of two values.
	Compare(any, any) (int, error)
	// Comparable returns true if two values can be compared.
	Comparable(any, any) bool
}

// IDGenerator creates identities for criteria and groups.
type IDGenerator interface {
	// GenerateID returns a new unique identity.
	GenerateID() (string, error)
}

// Decoder rebuilds filter specifications from generic data.
type Decoder interface {
	// Decode fills tgt, a pointer to a filter specification, with src.
	Decode(src any, tgt any) error
	// ReadJSON reads a JSON document from r and decodes it into tgt.
	ReadJSON(ctx context.Context, r io.Reader, tgt any) error
	// ReadYAML reads a YAML document from r and decodes it into tgt.
	ReadYAML(ctx context.Context, r io.Reader, tgt any) error
}

// Collection is a sequence of records that can be filtered by a predicate.
type Collection[T any] interface {
	// Where returns a new collection with the records matching pred.
	Where(pred Predicate[T]) Collection[T]
	// All returns an iterator over the records of the collection.
	All() iter.Seq[T]
	// Len returns the number of records in the collection.
	Len() int
}

// Builder compiles filter specifications into predicates over T.
type Builder[T any] interface {
	// AddCustomMapping registers a command against a dotted path of T
	// that does not need to be declared on the specification.
	AddCustomMapping(path string, cmd Command) Builder[T]
	// Compile returns the single predicate described by spec and the
	// registered custom mappings.
	Compile(spec any) (Predicate[T], error)
	// Build compiles spec and applies the predicate to coll.
	Build(coll Collection[T], spec any) (Collection[T], error)
	// Clear removes every registered custom mapping.
	Clear()
}
