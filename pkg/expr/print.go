package expr

import (
	"fmt"
	"io"
	"strings"

	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

var infix = map[domain.Operator]string{
	domain.OpEqualTo:              "==",
	domain.OpNotEqualTo:           "!=",
	domain.OpLessThan:             "<",
	domain.OpLessThanOrEqualTo:    "<=",
	domain.OpGreaterThan:          ">",
	domain.OpGreaterThanOrEqualTo: ">=",
}

var call = map[domain.Operator]string{
	domain.OpContains:   "contains",
	domain.OpStartsWith: "hasPrefix",
	domain.OpEndsWith:   "hasSuffix",
}

// String returns a string representation.
func (l *Lambda) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s => ", paramName(l.Param))
	l.Body.print(&sb)
	return sb.String()
}

// String returns a string representation.
func (c *Compare) String() string { return exprString(c) }
func (a *And) String() string     { return exprString(a) }
func (o *Or) String() string      { return exprString(o) }
func (n *Not) String() string     { return exprString(n) }
func (t *True) String() string    { return exprString(t) }

// exprString returns the string representation of a Node.
func exprString(n Node) string {
	var sb strings.Builder
	n.print(&sb)
	return sb.String()
}

func paramName(p *Param) string {
	if p == nil || p.Name == "" {
		return "_"
	}
	return p.Name
}

func (c *Compare) subject() string {
	var path string
	if c.Property != nil {
		path = strings.Join(c.Property.Address(), ".")
	}
	s := paramName(c.Param) + "." + path
	if c.Length {
		s = "len(" + s + ")"
	}
	if c.Fold {
		s = "lower(" + s + ")"
	}
	return s
}

func operand(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

func (c *Compare) print(w io.Writer) {
	if op, ok := infix[c.Op]; ok {
		fmt.Fprintf(w, "%s %s %s", c.subject(), op, operand(c.Operand))
		return
	}
	if fn, ok := call[c.Op]; ok {
		fmt.Fprintf(w, "%s(%s, %s)", fn, c.subject(), operand(c.Operand))
		return
	}
	fmt.Fprintf(w, "%s %s %s", c.subject(), c.Op, operand(c.Operand))
}

func (a *And) print(w io.Writer) {
	io.WriteString(w, "(")
	a.Left.print(w)
	io.WriteString(w, " && ")
	a.Right.print(w)
	io.WriteString(w, ")")
}

func (o *Or) print(w io.Writer) {
	io.WriteString(w, "(")
	o.Left.print(w)
	io.WriteString(w, " || ")
	o.Right.print(w)
	io.WriteString(w, ")")
}

func (n *Not) print(w io.Writer) {
	io.WriteString(w, "!(")
	n.X.print(w)
	io.WriteString(w, ")")
}

func (t *True) print(w io.Writer) {
	io.WriteString(w, "true")
}
