// Package collection contains the default [domain.Collection]
// implementations: an order-preserving slice and a sorted collection backed
// by a binary search tree.
package collection

import (
	"iter"
	"slices"

	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// Slice implements [domain.Collection] over a slice, keeping insertion order.
type Slice[T any] struct {
	items []T
}

// NewSlice returns a collection holding items.
func NewSlice[T any](items ...T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Where implements [domain.Collection]. It filters eagerly.
func (s *Slice[T]) Where(pred domain.Predicate[T]) domain.Collection[T] {
	res := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if pred(item) {
			res = append(res, item)
		}
	}
	return &Slice[T]{items: res}
}

// All implements [domain.Collection].
func (s *Slice[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// Len implements [domain.Collection].
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Slice returns a copy of the records.
func (s *Slice[T]) Slice() []T {
	return slices.Clone(s.items)
}
