// Package queryfilter compiles filter specifications into predicates over
// typed records.
//
// A specification is a plain struct whose fields hold filter commands, like
// [String] or [Range], tagged with the path of the record property they filter:
//
//	type UserFilter struct {
//		Name queryfilter.String     `queryfilter:"Name"`
//		Age  queryfilter.Range[int] `queryfilter:"Age"`
//		City queryfilter.String     `queryfilter:"Address.City"`
//
//		queryfilter.Groups
//	}
//
// Every criterion added to those commands is compiled into a single
// predicate by a [Builder], which can be created by calling [NewBuilder].
// Criteria are ANDed together unless placed in [Groups], which combine them
// with [And] or [Or].
package queryfilter

import (
	"cmp"
	"errors"

	"github.com/rs/zerolog"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/builder"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/collection"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/compiler"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/sqlizer"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/filter"
)

var (
	// ErrEmptyGroup is returned when a group without items is compiled.
	ErrEmptyGroup = domain.ErrEmptyGroup
	// ErrUnboundParameter is returned when an expression is compiled with a
	// leaf bound to a parameter other than the expression parameter.
	ErrUnboundParameter = domain.ErrUnboundParameter
	// ErrTargetNil is returned when user provides a nil value as a target
	// to decode a specification.
	ErrTargetNil = domain.ErrTargetNil
	// ErrNonPointer is returned when the decoding target is not a pointer.
	ErrNonPointer = domain.ErrNonPointer
	// ErrNoGroups is returned by [Groups.AddGroups] when called without
	// groups.
	ErrNoGroups = filter.ErrNoGroups
	// ErrNoExpression is returned by [Expression] when the builder does not
	// expose its expression tree.
	ErrNoExpression = errors.New("builder does not expose expressions")
)

// ErrPropertyNotFound is returned when a mapped path does not exist on the
// record type.
type ErrPropertyNotFound = domain.ErrPropertyNotFound

// ErrPropertyType is returned when a property cannot be compared with the
// values of a criterion.
type ErrPropertyType = domain.ErrPropertyType

// ErrOperatorNotSupported is returned when a criterion uses an operator its
// family does not have.
type ErrOperatorNotSupported = domain.ErrOperatorNotSupported

// ErrFamilyNotSupported is returned when a command belongs to an unknown
// family.
type ErrFamilyNotSupported = domain.ErrFamilyNotSupported

// ErrGroupOperatorNotSupported is returned when a group is neither AND nor OR.
type ErrGroupOperatorNotSupported = domain.ErrGroupOperatorNotSupported

// ErrCriterionNotCompiled is returned when a group references a criterion
// that does not belong to any mapped command.
type ErrCriterionNotCompiled = domain.ErrCriterionNotCompiled

// ErrSpecificationType is returned when a specification is not a struct, or
// when a tagged field is not a command.
type ErrSpecificationType = domain.ErrSpecificationType

// ErrUnknownOperator is returned when decoding an operator name that does not
// exist.
type ErrUnknownOperator = domain.ErrUnknownOperator

// ErrDecode is returned by [Decoder] to wrap third party decoding errors.
type ErrDecode = domain.ErrDecode

// ErrCannotCompare is returned when [Comparer.Compare] is called with two
// values that cannot be compared by the current [Comparer] interface.
type ErrCannotCompare = domain.ErrCannotCompare

// Builder compiles specifications into predicates over records of type T.
type Builder[T any] = domain.Builder[T]

// Collection is a set of records that can be filtered by a predicate.
type Collection[T any] = domain.Collection[T]

// Predicate is a compiled test over a record of type T.
type Predicate[T any] = domain.Predicate[T]

// Command is an ordered list of criteria of a single family.
type Command = domain.Command

// Decoder rebuilds specifications from maps, JSON or YAML documents.
type Decoder = domain.Decoder

// Comparer provides ordering for the keys of a [Sorted] collection.
type Comparer = domain.Comparer

// FieldNavigator resolves dotted paths into record properties.
type FieldNavigator = domain.FieldNavigator

// IDGenerator is used to create identities for decoded criteria.
type IDGenerator = domain.IDGenerator

// String filters text properties.
type String = filter.String

// Range filters ordered properties.
type Range[T cmp.Ordered] = filter.Range[T]

// Equatable filters properties that can only be compared for equality.
type Equatable[T comparable] = filter.Equatable[T]

// Group combines criteria and other groups.
type Group = filter.Group

// Groups is the list of top-level groups of a specification. Embedding it in a
// specification struct lets its criteria be grouped.
type Groups = filter.Groups

// And returns a group matching records that match every item.
func And(items ...domain.Item) *Group {
	return filter.And(items...)
}

// Or returns a group matching records that match at least one item.
func Or(items ...domain.Item) *Group {
	return filter.Or(items...)
}

// IgnoreCase makes a [String] criterion compare text without regard to case.
func IgnoreCase() filter.StringOption {
	return filter.IgnoreCase()
}

// Option configures a [Builder] through the functional options pattern.
type Option = compiler.Option

// NewBuilder creates a new Builder for records of type T with the provided
// options:
//
// - [WithCaseSensitive]: sets whether text comparisons are case sensitive.
//
// - [WithTagName]: sets the struct tag mapping fields to properties.
//
// - [WithFieldNavigator]: sets the resolver of property paths.
//
// - [WithLogger]: sets the logger receiving compilation events.
func NewBuilder[T any](options ...Option) Builder[T] {
	return builder.NewBuilder[T](options...)
}

// WithCaseSensitive sets whether text comparisons are case sensitive. Criteria
// ignoring case only lower-case text when this is true, which is the default.
func WithCaseSensitive(c bool) Option {
	return compiler.WithCaseSensitive(c)
}

// WithTagName sets the struct tag used to map specification fields to record
// properties. Defaults to "queryfilter".
func WithTagName(t string) Option {
	return compiler.WithTagName(t)
}

// WithFieldNavigator sets the [FieldNavigator] used to resolve property paths.
func WithFieldNavigator(f FieldNavigator) Option {
	return compiler.WithFieldNavigator(f)
}

// WithLogger sets the logger receiving debug events about compilation.
func WithLogger(l zerolog.Logger) Option {
	return compiler.WithLogger(l)
}

// NewDecoder creates a new [Decoder]. See package decoder for options.
func NewDecoder(options ...decoder.Option) Decoder {
	return decoder.NewDecoder(options...)
}

// NewSlice returns a [Collection] holding items in insertion order.
func NewSlice[T any](items ...T) *collection.Slice[T] {
	return collection.NewSlice(items...)
}

// NewSorted returns an empty [Collection] keeping records ordered by key.
func NewSorted[T any](key func(T) any, options ...collection.Option) *collection.Sorted[T] {
	return collection.NewSorted(key, options...)
}

// NewSqlizer returns a translator from compiled expressions into squirrel
// conditions.
func NewSqlizer(options ...sqlizer.Option) *sqlizer.Sqlizer {
	return sqlizer.NewSqlizer(options...)
}

// Expression returns the expression tree b compiles for spec. Trees can be
// printed, or translated into SQL conditions with [NewSqlizer].
func Expression[T any](b Builder[T], spec any) (*expr.Lambda, error) {
	e, ok := b.(interface {
		Expression(spec any) (*expr.Lambda, error)
	})
	if !ok {
		return nil, ErrNoExpression
	}
	return e.Expression(spec)
}
