package compiler

import (
	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
)

type entry struct {
	criterion domain.Criterion
	// node is nil when the criterion was skipped.
	node     expr.Node
	consumed bool
}

// compilation holds the criteria compiled during a single call to
// [Compiler.Compile]. It is discarded when the call returns.
type compilation struct {
	entries []*entry
	byRef   map[domain.Item]*entry
}

func newCompilation() *compilation {
	return &compilation{byRef: make(map[domain.Item]*entry)}
}

func (c *compilation) add(item domain.Criterion, node expr.Node) {
	e := &entry{criterion: item, node: node}
	c.entries = append(c.entries, e)
	if reflect.TypeOf(item).Comparable() {
		c.byRef[item] = e
	}
}

// lookup finds the entry of item by reference, then by identity.
func (c *compilation) lookup(item domain.Item) (*entry, error) {
	if item == nil {
		return nil, domain.ErrCriterionNotCompiled{}
	}
	if reflect.TypeOf(item).Comparable() {
		if e, ok := c.byRef[item]; ok {
			return e, nil
		}
	}
	id := item.ID()
	for _, e := range c.entries {
		if e.criterion.ID() == id {
			return e, nil
		}
	}
	return nil, domain.ErrCriterionNotCompiled{ID: id}
}

// compose ANDs the groups together, then ANDs every criterion no group
// consumed. The result matches everything when there is nothing to compose.
func (c *compilation) compose(groups []domain.Group) (expr.Node, error) {
	var res expr.Node = &expr.True{}
	for _, g := range groups {
		node, err := c.group(g)
		if err != nil {
			return nil, err
		}
		if node != nil {
			res = expr.Conjoin(res, node)
		}
	}
	for _, e := range c.entries {
		if e.consumed || e.node == nil {
			continue
		}
		res = expr.Conjoin(res, e.node)
	}
	return res, nil
}

// group folds the group items from left to right. It returns nil if every item
// was skipped.
func (c *compilation) group(g domain.Group) (expr.Node, error) {
	var fold func(a, b expr.Node) expr.Node
	switch g.Operator() {
	case domain.GroupAnd:
		fold = func(a, b expr.Node) expr.Node { return &expr.And{Left: a, Right: b} }
	case domain.GroupOr:
		fold = expr.Disjoin
	default:
		return nil, domain.ErrGroupOperatorNotSupported{Operator: g.Operator()}
	}

	items := g.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyGroup
	}

	var res expr.Node
	for _, item := range items {
		node, err := c.item(item)
		if err != nil {
			return nil, err
		}
		switch {
		case node == nil:
		case res == nil:
			res = node
		default:
			res = fold(res, node)
		}
	}
	return res, nil
}

func (c *compilation) item(item domain.Item) (expr.Node, error) {
	if g, ok := item.(domain.Group); ok {
		return c.group(g)
	}
	e, err := c.lookup(item)
	if err != nil {
		return nil, err
	}
	e.consumed = true
	return e.node, nil
}
