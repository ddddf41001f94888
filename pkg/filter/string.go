package filter

import (
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// StringItem implements [domain.StringCriterion].
type StringItem struct {
	id         string
	op         domain.Operator
	value      string
	ignoreCase bool
}

// ID implements [domain.Item].
func (i *StringItem) ID() string { return i.id }

// Operator implements [domain.Criterion].
func (i *StringItem) Operator() domain.Operator { return i.op }

// Value implements [domain.Criterion].
func (i *StringItem) Value() any { return i.value }

// Text implements [domain.StringCriterion].
func (i *StringItem) Text() string { return i.value }

// IgnoreCase implements [domain.StringCriterion].
func (i *StringItem) IgnoreCase() bool { return i.ignoreCase }

// StringOption configures a [StringItem] while it is created.
type StringOption func(*StringItem)

// IgnoreCase makes the criterion compare text without regard to case, as long
// as the builder is case sensitive.
func IgnoreCase() StringOption {
	return func(si *StringItem) {
		si.ignoreCase = true
	}
}

// String implements [domain.Command] for text values. The zero value is ready
// to use.
type String struct {
	items []*StringItem
}

// NewString returns a command holding a single EqualTo criterion.
func NewString(value string, opts ...StringOption) *String {
	s := &String{}
	s.EqualTo(value, opts...)
	return s
}

// Add adds a criterion using any string operator. It panics if op is not a
// string operator.
func (s *String) Add(op domain.Operator, value string, opts ...StringOption) *StringItem {
	if !domain.FamilyString.Supports(op) {
		panic(domain.ErrOperatorNotSupported{Family: domain.FamilyString, Operator: op})
	}
	item := &StringItem{id: newID(), op: op, value: value}
	for _, opt := range opts {
		opt(item)
	}
	s.items = append(s.items, item)
	return item
}

// EqualTo adds a criterion matching records whose property equals value.
func (s *String) EqualTo(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpEqualTo, value, opts...)
}

// NotEqualTo adds a criterion matching records whose property differs from
// value.
func (s *String) NotEqualTo(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpNotEqualTo, value, opts...)
}

// Contains adds a criterion matching records whose property contains value.
func (s *String) Contains(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpContains, value, opts...)
}

// NotContains adds a criterion matching records whose property does not
// contain value.
func (s *String) NotContains(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpNotContains, value, opts...)
}

// StartsWith adds a criterion matching records whose property starts with
// value.
func (s *String) StartsWith(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpStartsWith, value, opts...)
}

// NotStartsWith adds a criterion matching records whose property does not
// start with value.
func (s *String) NotStartsWith(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpNotStartsWith, value, opts...)
}

// EndsWith adds a criterion matching records whose property ends with value.
func (s *String) EndsWith(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpEndsWith, value, opts...)
}

// NotEndsWith adds a criterion matching records whose property does not end
// with value.
func (s *String) NotEndsWith(value string, opts ...StringOption) *StringItem {
	return s.Add(domain.OpNotEndsWith, value, opts...)
}

// Family implements [domain.Command].
func (s *String) Family() domain.Family { return domain.FamilyString }

// TotalItems implements [domain.Command].
func (s *String) TotalItems() int { return len(s.items) }

// Items implements [domain.Command].
func (s *String) Items() []domain.Criterion {
	res := make([]domain.Criterion, len(s.items))
	for n, item := range s.items {
		res[n] = item
	}
	return res
}

// Restore implements [domain.Restorer].
func (s *String) Restore(recs []domain.Record, convert func(any, any) error) error {
	items := make([]*StringItem, 0, len(recs))
	for _, rec := range recs {
		op, err := parseOperator(domain.FamilyString, rec.Operator)
		if err != nil {
			return err
		}
		var value string
		if err := convert(rec.Value, &value); err != nil {
			return err
		}
		items = append(items, &StringItem{
			id:         restoredID(rec.ID),
			op:         op,
			value:      value,
			ignoreCase: rec.IgnoreCase,
		})
	}
	s.items = items
	return nil
}
