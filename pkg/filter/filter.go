// Package filter contains the data containers used to describe a filter: the
// criteria, the commands that own them and the groups that combine them.
//
// Commands are usually declared as fields of a filter specification struct
// and mapped to record properties with the "queryfilter" struct tag:
//
//	type UserFilter struct {
//		filter.Groups
//		Name filter.String       `queryfilter:"Name"`
//		Age  filter.Range[int]   `queryfilter:"Profile.Age"`
//		Role filter.Equatable[R] `queryfilter:""`
//	}
//
// Every criterion gets a random identity when it is created. Groups refer to
// criteria by that identity, so they keep working after being serialized and
// restored.
package filter

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

var (
	// ErrNoGroups is returned by [Groups.AddGroups] when called without
	// arguments.
	ErrNoGroups = errors.New("at least one group must be given")
)

// ErrGroupItem is returned when a serialized group item is neither a
// reference nor a nested group.
type ErrGroupItem struct {
	Group string
	Index int
}

// Error implements [error].
func (e ErrGroupItem) Error() string {
	return fmt.Sprintf("item %d of group %q has neither ref nor group", e.Index, e.Group)
}

func newID() string {
	return uuid.NewString()
}

func restoredID(id string) string {
	if id == "" {
		return newID()
	}
	return id
}

func parseOperator(f domain.Family, name string) (domain.Operator, error) {
	op, err := domain.ParseOperator(name)
	if err != nil {
		return 0, err
	}
	if !f.Supports(op) {
		return 0, domain.ErrOperatorNotSupported{Family: f, Operator: op}
	}
	return op, nil
}

// Ref is an identity-only [domain.Item]. It stands for a criterion declared
// elsewhere in the specification, usually after a group was deserialized.
type Ref struct {
	id string
}

// NewRef returns a reference to the criterion identified by id.
func NewRef(id string) Ref {
	return Ref{id: id}
}

// ID implements [domain.Item].
func (r Ref) ID() string {
	return r.id
}
