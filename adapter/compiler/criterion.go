package compiler

import (
	"fmt"
	"strings"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
)

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
)

// negations maps every negated operator to the operator it negates.
var negations = map[domain.Operator]domain.Operator{
	domain.OpNotEqualTo:    domain.OpEqualTo,
	domain.OpNotContains:   domain.OpContains,
	domain.OpNotStartsWith: domain.OpStartsWith,
	domain.OpNotEndsWith:   domain.OpEndsWith,
}

var orderings = map[domain.Operator]func(int) bool{
	domain.OpEqualTo:              func(c int) bool { return c == 0 },
	domain.OpLessThan:             func(c int) bool { return c < 0 },
	domain.OpLessThanOrEqualTo:    func(c int) bool { return c <= 0 },
	domain.OpGreaterThan:          func(c int) bool { return c > 0 },
	domain.OpGreaterThanOrEqualTo: func(c int) bool { return c >= 0 },
}

var textOperators = map[domain.Operator]func(s, sub string) bool{
	domain.OpEqualTo:    func(s, sub string) bool { return s == sub },
	domain.OpContains:   strings.Contains,
	domain.OpStartsWith: strings.HasPrefix,
	domain.OpEndsWith:   strings.HasSuffix,
}

// positive returns the operator to be compiled and whether the result must be
// negated.
func positive(op domain.Operator) (domain.Operator, bool) {
	if base, ok := negations[op]; ok {
		return base, true
	}
	return op, false
}

func negate(node *expr.Compare, negated bool) expr.Node {
	if negated {
		return &expr.Not{X: node}
	}
	return node
}

// compileCriterion returns the node testing a single criterion, or nil if the
// criterion does not constrain the result.
func (c *Compiler) compileCriterion(family domain.Family, prop domain.Property, item domain.Criterion) (expr.Node, error) {
	switch family {
	case domain.FamilyEquatable:
		ec, ok := item.(domain.EquatableCriterion)
		if !ok {
			return nil, familyMismatch(family, item)
		}
		if err := checkOperator(family, item); err != nil {
			return nil, err
		}
		return c.equatable(prop, ec)
	case domain.FamilyRange:
		rc, ok := item.(domain.RangeCriterion)
		if !ok {
			return nil, familyMismatch(family, item)
		}
		if err := checkOperator(family, item); err != nil {
			return nil, err
		}
		return c.ranged(prop, rc)
	case domain.FamilyString:
		sc, ok := item.(domain.StringCriterion)
		if !ok {
			return nil, familyMismatch(family, item)
		}
		if err := checkOperator(family, item); err != nil {
			return nil, err
		}
		return c.text(prop, sc)
	default:
		return nil, familyMismatch(family, item)
	}
}

func familyMismatch(family domain.Family, item domain.Criterion) error {
	return domain.ErrFamilyNotSupported{Family: family, Type: fmt.Sprintf("%T", item)}
}

func checkOperator(family domain.Family, item domain.Criterion) error {
	if !family.Supports(item.Operator()) {
		return domain.ErrOperatorNotSupported{Family: family, Operator: item.Operator()}
	}
	return nil
}

func (c *Compiler) equatable(prop domain.Property, ec domain.EquatableCriterion) (expr.Node, error) {
	get, length, err := accessor(prop, ec.ValueType())
	if err != nil {
		return nil, err
	}
	op, negated := positive(ec.Operator())
	return negate(&expr.Compare{
		Param:    expr.NewParam("a"),
		Property: prop,
		Op:       op,
		Operand:  ec.Value(),
		Length:   length,
		Test: func(record reflect.Value) bool {
			v, ok := get(record)
			return ok && ec.Equal(v)
		},
	}, negated), nil
}

func (c *Compiler) ranged(prop domain.Property, rc domain.RangeCriterion) (expr.Node, error) {
	if !rc.HasValue() && prop.Nullable() {
		return nil, nil
	}
	get, length, err := accessor(prop, rc.ValueType())
	if err != nil {
		return nil, err
	}
	op, negated := positive(rc.Operator())
	matches := orderings[op]
	return negate(&expr.Compare{
		Param:    expr.NewParam("a"),
		Property: prop,
		Op:       op,
		Operand:  rc.NonNullableValue(),
		Length:   length,
		Test: func(record reflect.Value) bool {
			v, ok := get(record)
			return ok && matches(rc.Compare(v))
		},
	}, negated), nil
}

func (c *Compiler) text(prop domain.Property, sc domain.StringCriterion) (expr.Node, error) {
	if prop.Type().Kind() != reflect.String {
		return nil, domain.ErrPropertyType{
			Path:      prop.Address(),
			Property:  prop.Type(),
			ValueType: stringType,
		}
	}

	fold := c.caseSensitive && sc.IgnoreCase()
	operand := sc.Text()
	if fold {
		operand = strings.ToLower(operand)
	}

	op, negated := positive(sc.Operator())
	matches := textOperators[op]
	return negate(&expr.Compare{
		Param:    expr.NewParam("a"),
		Property: prop,
		Op:       op,
		Operand:  operand,
		Fold:     fold,
		Test: func(record reflect.Value) bool {
			v, ok := prop.Get(record)
			if !ok {
				return false
			}
			s := v.String()
			if fold {
				s = strings.ToLower(s)
			}
			return matches(s, operand)
		},
	}, negated), nil
}

// accessor returns a function reading prop from a record as a value of
// valueType. When prop is text and valueType is not, the text length is read
// instead.
func accessor(prop domain.Property, valueType reflect.Type) (func(reflect.Value) (any, bool), bool, error) {
	src := prop.Type()
	length := src.Kind() == reflect.String && valueType.Kind() != reflect.String
	if length {
		src = intType
	}

	if !compatible(src, valueType) {
		return nil, false, domain.ErrPropertyType{
			Path:      prop.Address(),
			Property:  prop.Type(),
			ValueType: valueType,
		}
	}
	convert := src != valueType

	return func(record reflect.Value) (any, bool) {
		v, ok := prop.Get(record)
		if !ok {
			return nil, false
		}
		if length {
			v = reflect.ValueOf(v.Len())
		}
		if convert {
			v = v.Convert(valueType)
		}
		return v.Interface(), true
	}, length, nil
}

// compatible reports whether values of src can be converted to dst without
// reinterpreting numbers as text or the other way around.
func compatible(src, dst reflect.Type) bool {
	if src == dst {
		return true
	}
	if (src.Kind() == reflect.String) != (dst.Kind() == reflect.String) {
		return false
	}
	return src.ConvertibleTo(dst)
}
