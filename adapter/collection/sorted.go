package collection

import (
	"iter"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/bst/adapter/avl"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/comparer"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// Sorted implements [domain.Collection], keeping records ordered by a key in a
// binary search tree.
type Sorted[T any] struct {
	key      func(T) any
	unique   bool
	comparer domain.Comparer
	// Exported to allow testing.
	Tree bst.BST[any, T]
	size int
}

// NewSorted returns an empty collection ordering records by key.
func NewSorted[T any](key func(T) any, options ...Option) *Sorted[T] {
	opts := sortedOptions{comparer: comparer.NewComparer()}
	for _, option := range options {
		option(&opts)
	}
	if opts.comparer == nil {
		opts.comparer = comparer.NewComparer()
	}
	s := &Sorted[T]{
		key:      key,
		unique:   opts.unique,
		comparer: opts.comparer,
	}
	s.Tree = avl.NewBST(s.unique, 8, NewBSTComparer[T](s.comparer))
	return s
}

// Insert adds records to the collection. With a unique collection, inserting
// a record whose key already exists fails and stops the insertion.
func (s *Sorted[T]) Insert(items ...T) error {
	for _, item := range items {
		if err := s.Tree.Insert(s.key(item), item); err != nil {
			return err
		}
		s.size++
	}
	return nil
}

// Where implements [domain.Collection]. The result keeps key order.
func (s *Sorted[T]) Where(pred domain.Predicate[T]) domain.Collection[T] {
	res := make([]T, 0, s.size)
	for item := range s.Tree.GetAll() {
		if pred(item) {
			res = append(res, item)
		}
	}
	return &Slice[T]{items: res}
}

// Between returns the records whose keys are within the given bounds. A nil
// bound is open.
func (s *Sorted[T]) Between(lower, upper *bst.Bound[any]) iter.Seq2[T, error] {
	return s.Tree.Query(bst.Query[any]{GreaterThan: lower, LowerThan: upper})
}

// All implements [domain.Collection]. Records are returned in key order.
func (s *Sorted[T]) All() iter.Seq[T] {
	return s.Tree.GetAll()
}

// Len implements [domain.Collection].
func (s *Sorted[T]) Len() int {
	return s.size
}

// Keys returns the number of distinct keys in the collection.
func (s *Sorted[T]) Keys() int {
	return s.Tree.GetNumberOfKeys()
}
