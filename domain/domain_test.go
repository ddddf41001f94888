package domain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

type DomainTestSuite struct {
	suite.Suite
}

func (s *DomainTestSuite) TestOperatorNames() {
	for op := domain.OpEqualTo; op <= domain.OpNotEndsWith; op++ {
		parsed, err := domain.ParseOperator(op.String())
		s.NoError(err)
		s.Equal(op, parsed)
	}

	_, err := domain.ParseOperator("between")
	s.ErrorAs(err, &domain.ErrUnknownOperator{})
	s.Equal("unknown", domain.Operator(0).String())
}

func (s *DomainTestSuite) TestFamilySupports() {
	s.True(domain.FamilyEquatable.Supports(domain.OpEqualTo))
	s.True(domain.FamilyEquatable.Supports(domain.OpNotEqualTo))
	s.False(domain.FamilyEquatable.Supports(domain.OpLessThan))
	s.False(domain.FamilyEquatable.Supports(domain.OpContains))

	for op := domain.OpEqualTo; op <= domain.OpGreaterThanOrEqualTo; op++ {
		s.True(domain.FamilyRange.Supports(op), op.String())
	}
	s.False(domain.FamilyRange.Supports(domain.OpStartsWith))

	s.True(domain.FamilyString.Supports(domain.OpNotEndsWith))
	s.False(domain.FamilyString.Supports(domain.OpGreaterThan))

	s.False(domain.Family(0).Supports(domain.OpEqualTo))
	s.Equal("unknown", domain.Family(0).String())
}

func (s *DomainTestSuite) TestGroupOperator() {
	op, err := domain.ParseGroupOperator("or")
	s.NoError(err)
	s.Equal(domain.GroupOr, op)

	op, err = domain.ParseGroupOperator("")
	s.NoError(err)
	s.Equal(domain.GroupAnd, op)

	_, err = domain.ParseGroupOperator("xor")
	s.ErrorAs(err, &domain.ErrUnknownOperator{})
	s.Equal("and", domain.GroupAnd.String())
}

func (s *DomainTestSuite) TestErrorMessages() {
	err := domain.ErrOperatorNotSupported{
		Family:   domain.FamilyEquatable,
		Operator: domain.OpContains,
	}
	s.Equal("operator contains is not supported by equatable filters", err.Error())

	s.Equal(
		`group references criterion "x" which was not compiled`,
		domain.ErrCriterionNotCompiled{ID: "x"}.Error(),
	)

	dec := domain.ErrDecode{Cause: domain.ErrTargetNil}
	s.ErrorIs(dec, domain.ErrTargetNil)
}

func TestDomainTestSuite(t *testing.T) {
	suite.Run(t, new(DomainTestSuite))
}
