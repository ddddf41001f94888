package filter

import (
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// Group implements [domain.Group].
type Group struct {
	id    string
	op    domain.GroupOperator
	items []domain.Item
}

// NewGroup returns a group folding items with op.
func NewGroup(op domain.GroupOperator, items ...domain.Item) *Group {
	return &Group{id: newID(), op: op, items: items}
}

// And returns a group matching records that match every item.
func And(items ...domain.Item) *Group {
	return NewGroup(domain.GroupAnd, items...)
}

// Or returns a group matching records that match at least one item.
func Or(items ...domain.Item) *Group {
	return NewGroup(domain.GroupOr, items...)
}

// Add appends items to the group and returns it.
func (g *Group) Add(items ...domain.Item) *Group {
	g.items = append(g.items, items...)
	return g
}

// ID implements [domain.Item].
func (g *Group) ID() string { return g.id }

// Operator implements [domain.Group].
func (g *Group) Operator() domain.GroupOperator { return g.op }

// Items implements [domain.Group].
func (g *Group) Items() []domain.Item { return g.items }

// Groups is the ordered list of top-level groups of a filter specification.
// Embedding it in a specification struct implements [domain.Grouper].
type Groups []*Group

// FilterGroups implements [domain.Grouper].
func (g Groups) FilterGroups() []domain.Group {
	res := make([]domain.Group, 0, len(g))
	for _, group := range g {
		if group != nil {
			res = append(res, group)
		}
	}
	return res
}

// AddGroups appends groups to the list.
func (g *Groups) AddGroups(groups ...*Group) error {
	if len(groups) == 0 {
		return ErrNoGroups
	}
	*g = append(*g, groups...)
	return nil
}

// RestoreGroups implements [domain.GroupRestorer]. Criteria are restored as
// [Ref] values carrying only their identity.
func (g *Groups) RestoreGroups(recs []domain.GroupRecord) error {
	groups := make(Groups, 0, len(recs))
	for _, rec := range recs {
		group, err := restoreGroup(rec)
		if err != nil {
			return err
		}
		groups = append(groups, group)
	}
	*g = groups
	return nil
}

func restoreGroup(rec domain.GroupRecord) (*Group, error) {
	op, err := domain.ParseGroupOperator(rec.Operator)
	if err != nil {
		return nil, err
	}
	group := &Group{
		id:    restoredID(rec.ID),
		op:    op,
		items: make([]domain.Item, 0, len(rec.Items)),
	}
	for n, item := range rec.Items {
		switch {
		case item.Group != nil:
			sub, err := restoreGroup(*item.Group)
			if err != nil {
				return nil, err
			}
			group.items = append(group.items, sub)
		case item.Ref != "":
			group.items = append(group.items, NewRef(item.Ref))
		default:
			return nil, ErrGroupItem{Group: group.id, Index: n}
		}
	}
	return group, nil
}
