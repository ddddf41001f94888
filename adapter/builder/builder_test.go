package builder

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/collection"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/compiler"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/filter"
)

type stringEntity struct {
	Name string
}

type stringFilter struct {
	Name filter.String `queryfilter:""`
}

type equatableEntity struct {
	IsActive bool
}

type equatableFilter struct {
	Test filter.Equatable[bool] `queryfilter:"IsActive"`
}

type groupEntity struct {
	Test int
	Name string
}

type groupFilter struct {
	Test filter.Range[int] `queryfilter:""`
	Name filter.String     `queryfilter:""`

	filter.Groups
}

type complexEntity2 struct {
	A string
}

type complexEntity struct {
	Test   string
	Entity *complexEntity2
}

type complexFilter struct {
	Test filter.String `queryfilter:""`
	A    filter.String
}

type person struct {
	Name string
	Age  int
}

type employee struct {
	person
	Salary int
}

type employeeFilter struct {
	Name   filter.String     `queryfilter:""`
	Age    filter.Range[int] `queryfilter:"person.Age"`
	Salary filter.Range[int] `queryfilter:""`
}

type BuilderTestSuite struct {
	suite.Suite
}

func collect[T any](coll domain.Collection[T]) []T {
	return slices.Collect(coll.All())
}

func (s *BuilderTestSuite) TestStringOperators() {
	testCases := []struct {
		op       domain.Operator
		value    string
		names    []string
		expected int
	}{
		{op: domain.OpEqualTo, value: "A", names: []string{"A", "B", "C"}, expected: 1},
		{op: domain.OpEqualTo, value: "B", names: []string{"A", "B", "B"}, expected: 2},
		{op: domain.OpNotEqualTo, value: "A", names: []string{"A", "A", "C"}, expected: 1},
		{op: domain.OpNotEqualTo, value: "B", names: []string{"A", "A", "B"}, expected: 2},
		{op: domain.OpContains, value: "A", names: []string{"A", "B", "C"}, expected: 1},
		{op: domain.OpContains, value: "B", names: []string{"A", "B", "B"}, expected: 2},
		{op: domain.OpNotContains, value: "A", names: []string{"A", "A", "C"}, expected: 1},
		{op: domain.OpNotContains, value: "B", names: []string{"A", "A", "B"}, expected: 2},
		{op: domain.OpStartsWith, value: "A", names: []string{"A", "B", "C"}, expected: 1},
		{op: domain.OpStartsWith, value: "B", names: []string{"A", "B", "B"}, expected: 2},
		{op: domain.OpNotStartsWith, value: "A", names: []string{"A", "A", "C"}, expected: 1},
		{op: domain.OpNotStartsWith, value: "B", names: []string{"A", "A", "B"}, expected: 2},
		{op: domain.OpEndsWith, value: "A", names: []string{"A", "B", "C"}, expected: 1},
		{op: domain.OpEndsWith, value: "B", names: []string{"A", "B", "B"}, expected: 2},
		{op: domain.OpNotEndsWith, value: "A", names: []string{"A", "A", "C"}, expected: 1},
		{op: domain.OpNotEndsWith, value: "B", names: []string{"A", "A", "B"}, expected: 2},
	}

	b := NewBuilder[stringEntity]()
	for _, tc := range testCases {
		records := make([]stringEntity, len(tc.names))
		for n, name := range tc.names {
			records[n] = stringEntity{Name: name}
		}

		var f stringFilter
		f.Name.Add(tc.op, tc.value)

		res, err := b.Build(collection.NewSlice(records...), f)
		s.NoError(err)
		s.Equal(tc.expected, res.Len(), "%s %q", tc.op, tc.value)
	}
}

func (s *BuilderTestSuite) TestEquatableOperators() {
	testCases := []struct {
		negated  bool
		value    bool
		active   []bool
		expected int
	}{
		{value: true, active: []bool{true, false, false}, expected: 1},
		{value: false, active: []bool{true, false, false}, expected: 2},
		{negated: true, value: true, active: []bool{true, true, false}, expected: 1},
		{negated: true, value: false, active: []bool{true, true, false}, expected: 2},
	}

	b := NewBuilder[equatableEntity]()
	for _, tc := range testCases {
		records := make([]equatableEntity, len(tc.active))
		for n, a := range tc.active {
			records[n] = equatableEntity{IsActive: a}
		}

		var f equatableFilter
		if tc.negated {
			f.Test.NotEqualTo(tc.value)
		} else {
			f.Test.EqualTo(tc.value)
		}

		res, err := b.Build(collection.NewSlice(records...), f)
		s.NoError(err)
		s.Equal(tc.expected, res.Len())
	}
}

func (s *BuilderTestSuite) TestRangeOperators() {
	records := collection.NewSlice(
		groupEntity{Test: 1}, groupEntity{Test: 2}, groupEntity{Test: 3},
	)
	b := NewBuilder[groupEntity]()

	var f groupFilter
	f.Test.EqualTo(1)
	res, err := b.Build(records, f)
	s.NoError(err)
	s.Equal([]groupEntity{{Test: 1}}, collect(res))

	f = groupFilter{}
	f.Test.GreaterThanOrEqualTo(1)
	res, err = b.Build(records, f)
	s.NoError(err)
	s.Equal(3, res.Len())

	f = groupFilter{}
	f.Test.LessThan(3)
	res, err = b.Build(records, f)
	s.NoError(err)
	s.Equal([]groupEntity{{Test: 1}, {Test: 2}}, collect(res))
}

func (s *BuilderTestSuite) TestGroup() {
	records := collection.NewSlice(
		groupEntity{Test: 1, Name: "abcdefg"},
		groupEntity{Test: 2, Name: "fghijkz"},
		groupEntity{Test: 3, Name: "jklmnop"},
	)

	var f groupFilter
	s.NoError(f.AddGroups(filter.Or(f.Name.Contains("abc"), f.Name.Contains("z"))))
	s.ErrorIs(f.AddGroups(), filter.ErrNoGroups)

	res, err := NewBuilder[groupEntity]().Build(records, f)
	s.NoError(err)
	s.Equal(2, res.Len())

	// ungrouped criteria narrow the grouped result
	f.Test.GreaterThan(1)
	res, err = NewBuilder[groupEntity]().Build(records, f)
	s.NoError(err)
	s.Equal([]groupEntity{{Test: 2, Name: "fghijkz"}}, collect(res))
}

func (s *BuilderTestSuite) TestCustomMapping() {
	records := collection.NewSlice(
		stringEntity{Name: "A"}, stringEntity{Name: "B"}, stringEntity{Name: "C"},
	)
	var f struct {
		Test filter.String
	}
	f.Test.EqualTo("A")

	b := NewBuilder[stringEntity]()
	s.Same(b, b.AddCustomMapping("Name", &f.Test))

	res, err := b.Build(records, f)
	s.NoError(err)
	s.Equal(1, res.Len())

	b.Clear()
	res, err = b.Build(records, f)
	s.NoError(err)
	s.Equal(3, res.Len())
}

func (s *BuilderTestSuite) TestNestedCustomMapping() {
	records := collection.NewSlice(
		complexEntity{Test: "A", Entity: &complexEntity2{A: "1"}},
		complexEntity{Test: "B", Entity: &complexEntity2{A: "2"}},
		complexEntity{Test: "C", Entity: &complexEntity2{A: "3"}},
		complexEntity{Test: "A"},
	)
	var f complexFilter
	f.Test.EqualTo("A")
	f.A.EqualTo("1")

	res, err := NewBuilder[complexEntity]().
		AddCustomMapping("Entity.A", &f.A).
		Build(records, f)
	s.NoError(err)
	s.Equal([]complexEntity{records.Slice()[0]}, collect(res))
}

func (s *BuilderTestSuite) TestPromotedFields() {
	records := collection.NewSlice(
		employee{person: person{Name: "Ann", Age: 30}, Salary: 10},
		employee{person: person{Name: "Abel", Age: 50}, Salary: 20},
		employee{person: person{Name: "Bob", Age: 40}, Salary: 30},
	)
	var f employeeFilter
	f.Name.StartsWith("A")
	f.Age.GreaterThan(35)
	f.Salary.LessThanOrEqualTo(20)

	res, err := NewBuilder[employee]().Build(records, f)
	s.NoError(err)
	s.Equal([]employee{records.Slice()[1]}, collect(res))
}

func (s *BuilderTestSuite) TestCaseInsensitiveBuilder() {
	records := collection.NewSlice(
		stringEntity{Name: "A"}, stringEntity{Name: "B"}, stringEntity{Name: "C"},
	)
	var f stringFilter
	f.Name.EqualTo("a", filter.IgnoreCase())

	res, err := NewBuilder[stringEntity]().Build(records, f)
	s.NoError(err)
	s.Equal(1, res.Len())

	res, err = NewBuilder[stringEntity](compiler.WithCaseSensitive(false)).Build(records, f)
	s.NoError(err)
	s.Zero(res.Len())
}

func (s *BuilderTestSuite) TestBuildError() {
	var f struct {
		Name filter.String `queryfilter:"Missing"`
	}
	f.Name.EqualTo("x")

	res, err := NewBuilder[stringEntity]().Build(collection.NewSlice[stringEntity](), f)
	s.ErrorAs(err, &domain.ErrPropertyNotFound{})
	s.Nil(res)

	pred, err := NewBuilder[stringEntity]().Compile(f)
	s.Error(err)
	s.Nil(pred)
}

func (s *BuilderTestSuite) TestExpression() {
	var f groupFilter
	f.Test.GreaterThan(1)
	f.Name.StartsWith("x", filter.IgnoreCase())

	b := NewBuilder[groupEntity]().(*Builder[groupEntity])
	l, err := b.Expression(f)
	s.NoError(err)
	s.Equal(`a => (a.Test > 1 && hasPrefix(lower(a.Name), "x"))`, l.String())
}

func (s *BuilderTestSuite) TestSortedCollection() {
	sorted := collection.NewSorted(func(g groupEntity) any { return g.Test })
	s.NoError(sorted.Insert(
		groupEntity{Test: 3, Name: "c"},
		groupEntity{Test: 1, Name: "a"},
		groupEntity{Test: 2, Name: "b"},
	))

	var f groupFilter
	f.Name.NotEqualTo("b")

	res, err := NewBuilder[groupEntity]().Build(sorted, f)
	s.NoError(err)
	s.Equal([]groupEntity{{Test: 1, Name: "a"}, {Test: 3, Name: "c"}}, collect(res))
}

// Compilations sharing a builder do not share state once mappings are
// registered.
func (s *BuilderTestSuite) TestConcurrentBuilds() {
	records := collection.NewSlice(
		groupEntity{Test: 1, Name: "abc"},
		groupEntity{Test: 2, Name: "abz"},
		groupEntity{Test: 3, Name: "xyz"},
	)
	var extra filter.Range[int]
	extra.LessThan(3)
	b := NewBuilder[groupEntity]().AddCustomMapping("Test", &extra)

	var wg sync.WaitGroup
	results := make([]int, 32)
	for n := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var f groupFilter
			s.NoError(f.AddGroups(filter.Or(f.Name.Contains("c"), f.Name.EndsWith("z"))))
			res, err := b.Build(records, f)
			if err == nil {
				results[n] = res.Len()
			}
		}()
	}
	wg.Wait()

	for _, r := range results {
		s.Equal(2, r)
	}
}

func TestBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}
