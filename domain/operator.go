package domain

// Family identifies the kind of comparison a [Command] performs.
type Family uint8

const (
	// FamilyEquatable compares values for equality only.
	FamilyEquatable Family = iota + 1
	// FamilyRange compares ordered values.
	FamilyRange
	// FamilyString compares text.
	FamilyString
)

var familyNames = map[Family]string{
	FamilyEquatable: "equatable",
	FamilyRange:     "range",
	FamilyString:    "string",
}

// String implements [fmt.Stringer].
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// Operator is the comparison performed by a [Criterion].
type Operator uint8

const (
	OpEqualTo Operator = iota + 1
	OpNotEqualTo
	OpLessThan
	OpLessThanOrEqualTo
	OpGreaterThan
	OpGreaterThanOrEqualTo
	OpContains
	OpNotContains
	OpStartsWith
	OpNotStartsWith
	OpEndsWith
	OpNotEndsWith
)

var operatorNames = map[Operator]string{
	OpEqualTo:              "equalTo",
	OpNotEqualTo:           "notEqualTo",
	OpLessThan:             "lessThan",
	OpLessThanOrEqualTo:    "lessThanOrEqualTo",
	OpGreaterThan:          "greaterThan",
	OpGreaterThanOrEqualTo: "greaterThanOrEqualTo",
	OpContains:             "contains",
	OpNotContains:          "notContains",
	OpStartsWith:           "startsWith",
	OpNotStartsWith:        "notStartsWith",
	OpEndsWith:             "endsWith",
	OpNotEndsWith:          "notEndsWith",
}

var familyOperators = map[Family]map[Operator]bool{
	FamilyEquatable: {
		OpEqualTo:    true,
		OpNotEqualTo: true,
	},
	FamilyRange: {
		OpEqualTo:              true,
		OpNotEqualTo:           true,
		OpLessThan:             true,
		OpLessThanOrEqualTo:    true,
		OpGreaterThan:          true,
		OpGreaterThanOrEqualTo: true,
	},
	FamilyString: {
		OpEqualTo:       true,
		OpNotEqualTo:    true,
		OpContains:      true,
		OpNotContains:   true,
		OpStartsWith:    true,
		OpNotStartsWith: true,
		OpEndsWith:      true,
		OpNotEndsWith:   true,
	},
}

// String implements [fmt.Stringer].
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "unknown"
}

// Supports reports whether op is valid for the family.
func (f Family) Supports(op Operator) bool {
	return familyOperators[f][op]
}

// ParseOperator returns the [Operator] named s, as returned by
// [Operator.String].
func ParseOperator(s string) (Operator, error) {
	for op, name := range operatorNames {
		if name == s {
			return op, nil
		}
	}
	return 0, ErrUnknownOperator{Name: s}
}

// GroupOperator is the logical operator used to fold the items of a [Group].
type GroupOperator uint8

const (
	GroupAnd GroupOperator = iota + 1
	GroupOr
)

// String implements [fmt.Stringer].
func (g GroupOperator) String() string {
	switch g {
	case GroupAnd:
		return "and"
	case GroupOr:
		return "or"
	default:
		return "unknown"
	}
}

// ParseGroupOperator returns the [GroupOperator] named s. An empty name is
// read as [GroupAnd].
func ParseGroupOperator(s string) (GroupOperator, error) {
	switch s {
	case "and", "":
		return GroupAnd, nil
	case "or":
		return GroupOr, nil
	default:
		return 0, ErrUnknownOperator{Name: s}
	}
}
