package collection

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/bst"
)

type comparerMock struct{ mock.Mock }

// Compare implements [domain.Comparer].
func (c *comparerMock) Compare(a any, b any) (int, error) {
	call := c.Called(a, b)
	return call.Int(0), call.Error(1)
}

// Comparable implements [domain.Comparer].
func (c *comparerMock) Comparable(a any, b any) bool {
	return c.Called(a, b).Bool(0)
}

type record struct {
	Key  int
	Name string
}

func byKey(r record) any { return r.Key }

type CollectionTestSuite struct {
	suite.Suite
}

func (s *CollectionTestSuite) TestSlice() {
	items := []record{{Key: 3}, {Key: 1}, {Key: 2}}
	coll := NewSlice(items...)
	s.Equal(3, coll.Len())
	s.Equal(items, slices.Collect(coll.All()))

	filtered := coll.Where(func(r record) bool { return r.Key > 1 })
	s.Equal([]record{{Key: 3}, {Key: 2}}, slices.Collect(filtered.All()))
	s.Equal(3, coll.Len())

	cp := coll.Slice()
	cp[0].Key = 99
	s.Equal(3, coll.Slice()[0].Key)

	s.Zero(NewSlice[record]().Len())
}

func (s *CollectionTestSuite) TestSortedOrder() {
	coll := NewSorted(byKey)
	s.NoError(coll.Insert(
		record{Key: 5, Name: "e"},
		record{Key: 1, Name: "a"},
		record{Key: 3, Name: "c"},
		record{Key: 3, Name: "c2"},
	))
	s.Equal(4, coll.Len())
	s.Equal(3, coll.Keys())

	var keys []int
	for r := range coll.All() {
		keys = append(keys, r.Key)
	}
	s.Equal([]int{1, 3, 3, 5}, keys)

	filtered := coll.Where(func(r record) bool { return r.Key != 3 })
	s.Equal([]record{{Key: 1, Name: "a"}, {Key: 5, Name: "e"}}, slices.Collect(filtered.All()))
}

func (s *CollectionTestSuite) TestSortedUnique() {
	coll := NewSorted(byKey, WithUnique(true))
	s.NoError(coll.Insert(record{Key: 1}))

	err := coll.Insert(record{Key: 1, Name: "dup"})
	s.ErrorAs(err, new(bst.ErrUniqueViolated))
	s.Equal(1, coll.Len())
}

func (s *CollectionTestSuite) TestSortedBetween() {
	coll := NewSorted(byKey)
	for n := range 10 {
		s.NoError(coll.Insert(record{Key: n}))
	}

	var keys []int
	lower := &bst.Bound[any]{Value: 3, IncludeEqual: true}
	upper := &bst.Bound[any]{Value: 6, IncludeEqual: false}
	for r, err := range coll.Between(lower, upper) {
		s.NoError(err)
		keys = append(keys, r.Key)
	}
	s.Equal([]int{3, 4, 5}, keys)
}

func (s *CollectionTestSuite) TestSortedComparerError() {
	errCmp := errors.New("incomparable keys")
	c := new(comparerMock)
	c.On("Compare", mock.Anything, mock.Anything).Return(0, errCmp)

	coll := NewSorted(byKey, WithComparer(c))
	s.NoError(coll.Insert(record{Key: 1}))
	s.ErrorIs(coll.Insert(record{Key: 2}), errCmp)
	s.Equal(1, coll.Len())
}

func TestCollectionTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionTestSuite))
}
