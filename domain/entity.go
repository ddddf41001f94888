package domain

// Predicate is a compiled test over a record of type T.
type Predicate[T any] = func(T) bool

// Record is the serialized form of a single criterion.
type Record struct {
	ID         string `json:"id"`
	Operator   string `json:"operator"`
	Value      any    `json:"value"`
	IgnoreCase bool   `json:"ignoreCase"`
}

// GroupRecord is the serialized form of a [Group].
type GroupRecord struct {
	ID       string            `json:"id"`
	Operator string            `json:"operator"`
	Items    []GroupItemRecord `json:"items"`
}

// GroupItemRecord is one member of a [GroupRecord]. Exactly one of Ref or Group
// should be set. Ref holds the identity of a criterion declared elsewhere in
// the specification.
type GroupItemRecord struct {
	Ref   string       `json:"ref"`
	Group *GroupRecord `json:"group"`
}
