package filter

import (
	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// EquatableItem implements [domain.EquatableCriterion].
type EquatableItem[T comparable] struct {
	id    string
	op    domain.Operator
	value T
}

// ID implements [domain.Item].
func (i *EquatableItem[T]) ID() string { return i.id }

// Operator implements [domain.Criterion].
func (i *EquatableItem[T]) Operator() domain.Operator { return i.op }

// Value implements [domain.Criterion].
func (i *EquatableItem[T]) Value() any { return i.value }

// ValueType implements [domain.EquatableCriterion].
func (i *EquatableItem[T]) ValueType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Equal implements [domain.EquatableCriterion].
func (i *EquatableItem[T]) Equal(v any) bool {
	t, ok := v.(T)
	return ok && t == i.value
}

// Equatable implements [domain.Command] for values that can only be compared
// for equality. The zero value is ready to use.
type Equatable[T comparable] struct {
	items []*EquatableItem[T]
}

// NewEquatable returns a command holding a single EqualTo criterion.
func NewEquatable[T comparable](value T) *Equatable[T] {
	e := &Equatable[T]{}
	e.EqualTo(value)
	return e
}

// EqualTo adds a criterion matching records whose property equals value.
func (e *Equatable[T]) EqualTo(value T) *EquatableItem[T] {
	return e.add(value, domain.OpEqualTo)
}

// NotEqualTo adds a criterion matching records whose property differs from
// value.
func (e *Equatable[T]) NotEqualTo(value T) *EquatableItem[T] {
	return e.add(value, domain.OpNotEqualTo)
}

// Merge appends the criteria of other to e.
func (e *Equatable[T]) Merge(other *Equatable[T]) {
	if other != nil {
		e.items = append(e.items, other.items...)
	}
}

func (e *Equatable[T]) add(value T, op domain.Operator) *EquatableItem[T] {
	item := &EquatableItem[T]{id: newID(), op: op, value: value}
	e.items = append(e.items, item)
	return item
}

// Family implements [domain.Command].
func (e *Equatable[T]) Family() domain.Family { return domain.FamilyEquatable }

// TotalItems implements [domain.Command].
func (e *Equatable[T]) TotalItems() int { return len(e.items) }

// Items implements [domain.Command].
func (e *Equatable[T]) Items() []domain.Criterion {
	res := make([]domain.Criterion, len(e.items))
	for n, item := range e.items {
		res[n] = item
	}
	return res
}

// Restore implements [domain.Restorer].
func (e *Equatable[T]) Restore(recs []domain.Record, convert func(any, any) error) error {
	items := make([]*EquatableItem[T], 0, len(recs))
	for _, rec := range recs {
		op, err := parseOperator(domain.FamilyEquatable, rec.Operator)
		if err != nil {
			return err
		}
		var value T
		if err := convert(rec.Value, &value); err != nil {
			return err
		}
		items = append(items, &EquatableItem[T]{
			id:    restoredID(rec.ID),
			op:    op,
			value: value,
		})
	}
	e.items = items
	return nil
}
