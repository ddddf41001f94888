package collection

import (
	"reflect"

	"github.com/vinicius-lino-figueiredo/bst"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

type bstComparer[T any] struct {
	comparer domain.Comparer
}

// NewBSTComparer returns a [bst.Comparer] ordering keys with comparer. Records
// stored under the same key are told apart by deep equality.
func NewBSTComparer[T any](comparer domain.Comparer) bst.Comparer[any, T] {
	return &bstComparer[T]{
		comparer: comparer,
	}
}

// CompareKeys implements bst.Comparer.
func (bc *bstComparer[T]) CompareKeys(a any, b any) (int, error) {
	return bc.comparer.Compare(a, b)
}

// CompareValues implements bst.Comparer.
func (bc *bstComparer[T]) CompareValues(a T, b T) (bool, error) {
	return reflect.DeepEqual(a, b), nil
}
