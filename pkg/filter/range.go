package filter

import (
	"cmp"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// RangeItem implements [domain.RangeCriterion]. Its value is optional.
type RangeItem[T cmp.Ordered] struct {
	id    string
	op    domain.Operator
	value *T
}

// ID implements [domain.Item].
func (i *RangeItem[T]) ID() string { return i.id }

// Operator implements [domain.Criterion].
func (i *RangeItem[T]) Operator() domain.Operator { return i.op }

// Value implements [domain.Criterion].
func (i *RangeItem[T]) Value() any {
	if i.value == nil {
		return nil
	}
	return *i.value
}

// Get returns the criterion value and whether it was given.
func (i *RangeItem[T]) Get() (T, bool) {
	if i.value == nil {
		var zero T
		return zero, false
	}
	return *i.value, true
}

// ValueType implements [domain.RangeCriterion].
func (i *RangeItem[T]) ValueType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// HasValue implements [domain.RangeCriterion].
func (i *RangeItem[T]) HasValue() bool { return i.value != nil }

// NonNullableValue implements [domain.RangeCriterion].
func (i *RangeItem[T]) NonNullableValue() any {
	v, _ := i.Get()
	return v
}

// Compare implements [domain.RangeCriterion].
func (i *RangeItem[T]) Compare(v any) int {
	value, _ := i.Get()
	return cmp.Compare(v.(T), value)
}

// Range implements [domain.Command] for ordered values. The zero value is
// ready to use.
type Range[T cmp.Ordered] struct {
	items []*RangeItem[T]
}

// NewRange returns a command holding a single EqualTo criterion. A nil value
// creates a criterion without value.
func NewRange[T cmp.Ordered](value *T) *Range[T] {
	r := &Range[T]{}
	r.Add(domain.OpEqualTo, value)
	return r
}

// Add adds a criterion with an optional value. It panics if op is not a range
// operator.
func (r *Range[T]) Add(op domain.Operator, value *T) *RangeItem[T] {
	if !domain.FamilyRange.Supports(op) {
		panic(domain.ErrOperatorNotSupported{Family: domain.FamilyRange, Operator: op})
	}
	if value != nil {
		v := *value
		value = &v
	}
	item := &RangeItem[T]{id: newID(), op: op, value: value}
	r.items = append(r.items, item)
	return item
}

// EqualTo adds a criterion matching records whose property equals value.
func (r *Range[T]) EqualTo(value T) *RangeItem[T] {
	return r.Add(domain.OpEqualTo, &value)
}

// NotEqualTo adds a criterion matching records whose property differs from
// value.
func (r *Range[T]) NotEqualTo(value T) *RangeItem[T] {
	return r.Add(domain.OpNotEqualTo, &value)
}

// LessThan adds a criterion matching records whose property is lower than
// value.
func (r *Range[T]) LessThan(value T) *RangeItem[T] {
	return r.Add(domain.OpLessThan, &value)
}

// LessThanOrEqualTo adds a criterion matching records whose property is lower
// than or equal to value.
func (r *Range[T]) LessThanOrEqualTo(value T) *RangeItem[T] {
	return r.Add(domain.OpLessThanOrEqualTo, &value)
}

// GreaterThan adds a criterion matching records whose property is greater
// than value.
func (r *Range[T]) GreaterThan(value T) *RangeItem[T] {
	return r.Add(domain.OpGreaterThan, &value)
}

// GreaterThanOrEqualTo adds a criterion matching records whose property is
// greater than or equal to value.
func (r *Range[T]) GreaterThanOrEqualTo(value T) *RangeItem[T] {
	return r.Add(domain.OpGreaterThanOrEqualTo, &value)
}

// Family implements [domain.Command].
func (r *Range[T]) Family() domain.Family { return domain.FamilyRange }

// TotalItems implements [domain.Command].
func (r *Range[T]) TotalItems() int { return len(r.items) }

// Items implements [domain.Command].
func (r *Range[T]) Items() []domain.Criterion {
	res := make([]domain.Criterion, len(r.items))
	for n, item := range r.items {
		res[n] = item
	}
	return res
}

// Restore implements [domain.Restorer]. Records with a null value restore as
// criteria without value.
func (r *Range[T]) Restore(recs []domain.Record, convert func(any, any) error) error {
	items := make([]*RangeItem[T], 0, len(recs))
	for _, rec := range recs {
		op, err := parseOperator(domain.FamilyRange, rec.Operator)
		if err != nil {
			return err
		}
		var value *T
		if rec.Value != nil {
			value = new(T)
			if err := convert(rec.Value, value); err != nil {
				return err
			}
		}
		items = append(items, &RangeItem[T]{
			id:    restoredID(rec.ID),
			op:    op,
			value: value,
		})
	}
	r.items = items
	return nil
}
