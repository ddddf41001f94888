package comparer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

type Score int

type Label string

type Stamp time.Time

type ComparerTestSuite struct {
	suite.Suite
	c *Comparer
}

func (s *ComparerTestSuite) SetupTest() {
	s.c = NewComparer().(*Comparer)
}

// nil should always be the smallest value.
func (s *ComparerTestSuite) TestNilIsSmallest() {
	otherStuff := [...]any{"string", "", -1, 0, uint(12), false,
		time.UnixMilli(12345), []any{}, []any{"quite", 5},
	}
	for _, stuff := range otherStuff {
		comp, err := s.c.Compare(nil, stuff)
		s.NoError(err)
		s.Equal(-1, comp)
		comp, err = s.c.Compare(stuff, nil)
		s.NoError(err)
		s.Equal(1, comp)
	}
	comp, err := s.c.Compare(nil, nil)
	s.NoError(err)
	s.Zero(comp)

	var p *int
	comp, err = s.c.Compare(p, nil)
	s.NoError(err)
	s.Zero(comp)
}

// number should by the second smallest type (any number type).
func (s *ComparerTestSuite) TestNumberIsSecondSmallest() {
	testCases := []struct {
		arg1 any
		arg2 any
		res  int
	}{
		{arg1: int64(-12), arg2: int16(0), res: -1},
		{arg1: uint8(0), arg2: int8(-3), res: 1},
		{arg1: 5.7, arg2: uint32(2), res: 1},
		{arg1: 5.7, arg2: float32(12.3), res: -1},
		{arg1: uint64(0), arg2: uint16(0), res: 0},
		{arg1: -2.6, arg2: -2.6, res: 0},
		{arg1: int32(5), arg2: 5, res: 0},
		{arg1: Score(5), arg2: 5, res: 0},
		{arg1: Score(4), arg2: Score(9), res: -1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{"string", "", true, false,
		time.UnixMilli(4321), []any{}, []any{"quite", 5},
	}

	for _, stuff := range otherStuff {
		comp, err := s.c.Compare(-12, stuff)
		s.NoError(err)
		s.Equal(-1, comp)
		comp, err = s.c.Compare(stuff, 5)
		s.NoError(err)
		s.Equal(1, comp)
	}
}

func (s *ComparerTestSuite) TestStringIsThirdSmallest() {
	testCases := []struct {
		arg1 any
		arg2 any
		res  int
	}{
		{arg1: "", arg2: "hey", res: -1},
		{arg1: "hey", arg2: "", res: 1},
		{arg1: "hey", arg2: "hew", res: 1},
		{arg1: "hey", arg2: "hey", res: 0},
		{arg1: Label("b"), arg2: "a", res: 1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{true, false, time.UnixMilli(4321), []any{},
		[]any{"quite", 5},
	}

	for _, stuff := range otherStuff {
		comp, err := s.c.Compare("string", stuff)
		s.NoError(err)
		s.Equal(-1, comp)
		comp, err = s.c.Compare(stuff, "string")
		s.NoError(err)
		s.Equal(1, comp)
	}
}

func (s *ComparerTestSuite) TestBoolIsFourthSmallest() {
	testCases := []struct {
		arg1 bool
		arg2 bool
		res  int
	}{
		{arg1: true, arg2: true, res: 0},
		{arg1: false, arg2: false, res: 0},
		{arg1: true, arg2: false, res: 1},
		{arg1: false, arg2: true, res: -1},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}

	otherStuff := [...]any{time.UnixMilli(4321), []any{}, []any{"quite", 5}}

	for _, stuff := range otherStuff {
		comp, err := s.c.Compare(true, stuff)
		s.NoError(err)
		s.Equal(-1, comp)
		comp, err = s.c.Compare(stuff, false)
		s.NoError(err)
		s.Equal(1, comp)
	}
}

func (s *ComparerTestSuite) TestTimeIsFifthSmallest() {
	now := time.Now()

	comp, err := s.c.Compare(now, now.Add(time.Second))
	s.NoError(err)
	s.Equal(-1, comp)

	comp, err = s.c.Compare(Stamp(now), now)
	s.NoError(err)
	s.Zero(comp)

	comp, err = s.c.Compare(now, []any{})
	s.NoError(err)
	s.Equal(-1, comp)
}

func (s *ComparerTestSuite) TestListIsLargest() {
	testCases := []struct {
		arg1 []any
		arg2 []any
		res  int
	}{
		{arg1: []any{}, arg2: []any{}, res: 0},
		{arg1: []any{"a"}, arg2: []any{}, res: 1},
		{arg1: []any{"a", 1}, arg2: []any{"a", 2}, res: -1},
		{arg1: []any{"b"}, arg2: []any{"a", 2}, res: 1},
		{arg1: []any{nil, 3}, arg2: []any{nil, 3}, res: 0},
	}

	for _, tc := range testCases {
		comp, err := s.c.Compare(tc.arg1, tc.arg2)
		s.NoError(err)
		s.Equal(tc.res, comp)
	}
}

func (s *ComparerTestSuite) TestErrorOnUnknownPair() {
	type unknown struct{}

	comp, err := s.c.Compare(unknown{}, unknown{})
	s.ErrorAs(err, &domain.ErrCannotCompare{})
	s.Zero(comp)

	comp, err = s.c.Compare([]any{unknown{}}, []any{unknown{}})
	s.ErrorAs(err, &domain.ErrCannotCompare{})
	s.Zero(comp)
}

func (s *ComparerTestSuite) TestNaN() {
	s.NotPanics(func() {
		_, err := s.c.Compare(math.NaN(), math.NaN())
		s.ErrorAs(err, &domain.ErrCannotCompare{})
	})
}

func (s *ComparerTestSuite) TestComparable() {
	s.True(s.c.Comparable(1, 2.5))
	s.True(s.c.Comparable(Score(1), uint8(2)))
	s.True(s.c.Comparable("a", Label("b")))
	s.True(s.c.Comparable(true, false))
	s.True(s.c.Comparable(time.Now(), time.Now()))

	s.False(s.c.Comparable(1, "1"))
	s.False(s.c.Comparable(nil, nil))
	s.False(s.c.Comparable([]any{}, []any{}))
	s.False(s.c.Comparable(true, 1))
}

func TestComparerTestSuite(t *testing.T) {
	suite.Run(t, new(ComparerTestSuite))
}
