// Package expr contains the expression tree produced by the predicate compiler.
//
// A tree is made of [Compare] leaves combined with [And], [Or] and [Not]. Each
// leaf is bound to a [Param], and a [Lambda] ties a body to the single
// parameter every leaf must be bound to before it can be compiled into a Go
// function. [Rebind] rewrites a tree so all leaves share one parameter.
package expr

import (
	"fmt"
	"io"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// Node is an element of an expression tree.
type Node interface {
	print(w io.Writer)
}

// Param is a placeholder for the record being tested. Parameters are compared
// by identity, never by name.
type Param struct {
	Name string
}

// NewParam returns a new parameter.
func NewParam(name string) *Param {
	return &Param{Name: name}
}

// Compare is a leaf testing one property of the record bound to Param.
type Compare struct {
	Param    *Param
	Property domain.Property
	// Op is always a positive operator. Negated operators are represented
	// by wrapping the leaf in [Not].
	Op      domain.Operator
	Operand any
	// Fold is set when both sides are lower-cased before comparing.
	Fold bool
	// Length is set when the length of a text property is compared
	// instead of the text itself.
	Length bool
	// Test evaluates the leaf against a record.
	Test func(record reflect.Value) bool
}

// And is the short-circuit conjunction of two nodes.
type And struct {
	Left, Right Node
}

// Or is the short-circuit disjunction of two nodes.
type Or struct {
	Left, Right Node
}

// Not negates a node.
type Not struct {
	X Node
}

// True matches every record.
type True struct{}

// Lambda is an expression tree with its bound parameter.
type Lambda struct {
	Param *Param
	Body  Node
}

// NewLambda binds body to p, rewriting every leaf.
func NewLambda(p *Param, body Node) *Lambda {
	return &Lambda{Param: p, Body: Rebind(body, p)}
}

// Conjoin returns the conjunction of a and b. A [True] operand is dropped.
func Conjoin(a, b Node) Node {
	if _, ok := a.(*True); ok {
		return b
	}
	if _, ok := b.(*True); ok {
		return a
	}
	return &And{Left: a, Right: b}
}

// Disjoin returns the disjunction of a and b.
func Disjoin(a, b Node) Node {
	return &Or{Left: a, Right: b}
}

// Rebind returns a copy of n where every leaf is bound to p.
func Rebind(n Node, p *Param) Node {
	switch t := n.(type) {
	case *Compare:
		c := *t
		c.Param = p
		return &c
	case *And:
		return &And{Left: Rebind(t.Left, p), Right: Rebind(t.Right, p)}
	case *Or:
		return &Or{Left: Rebind(t.Left, p), Right: Rebind(t.Right, p)}
	case *Not:
		return &Not{X: Rebind(t.X, p)}
	default:
		return n
	}
}

// Params returns the distinct parameters referenced by the leaves of n, in
// the order they are first found.
func Params(n Node) []*Param {
	var res []*Param
	var walk func(Node)
	walk = func(n Node) {
		switch t := n.(type) {
		case *Compare:
			for _, p := range res {
				if p == t.Param {
					return
				}
			}
			res = append(res, t.Param)
		case *And:
			walk(t.Left)
			walk(t.Right)
		case *Or:
			walk(t.Left)
			walk(t.Right)
		case *Not:
			walk(t.X)
		}
	}
	walk(n)
	return res
}

// Compile turns a lambda into a predicate over T. Every leaf must be bound to
// the lambda parameter.
func Compile[T any](l *Lambda) (domain.Predicate[T], error) {
	if l == nil || l.Param == nil {
		return nil, domain.ErrUnboundParameter
	}
	fn, err := compile(l.Body, l.Param)
	if err != nil {
		return nil, err
	}
	return func(t T) bool {
		return fn(reflect.ValueNoEscapeOf(t))
	}, nil
}

func compile(n Node, p *Param) (func(reflect.Value) bool, error) {
	switch t := n.(type) {
	case *True:
		return func(reflect.Value) bool { return true }, nil
	case *Compare:
		if t.Param != p {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnboundParameter, exprString(t))
		}
		if t.Test == nil {
			return nil, fmt.Errorf("leaf %s has no test", exprString(t))
		}
		return t.Test, nil
	case *Not:
		x, err := compile(t.X, p)
		if err != nil {
			return nil, err
		}
		return func(v reflect.Value) bool { return !x(v) }, nil
	case *And:
		l, r, err := compileBinary(t.Left, t.Right, p)
		if err != nil {
			return nil, err
		}
		return func(v reflect.Value) bool { return l(v) && r(v) }, nil
	case *Or:
		l, r, err := compileBinary(t.Left, t.Right, p)
		if err != nil {
			return nil, err
		}
		return func(v reflect.Value) bool { return l(v) || r(v) }, nil
	default:
		return nil, fmt.Errorf("unexpected expression node %T", n)
	}
}

func compileBinary(left, right Node, p *Param) (func(reflect.Value) bool, func(reflect.Value) bool, error) {
	l, err := compile(left, p)
	if err != nil {
		return nil, nil, err
	}
	r, err := compile(right, p)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
