// Package sqlizer translates compiled filter expressions into squirrel
// conditions, so the same specification can filter rows in a SQL database.
package sqlizer

import (
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
)

// ErrNilExpression is returned when translating a nil lambda.
var ErrNilExpression = errors.New("cannot translate a nil expression")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ColumnMapper returns the column name of a property address.
type ColumnMapper func(address []string) string

// Sqlizer translates [expr.Lambda] trees into [sq.Sqlizer] conditions.
type Sqlizer struct {
	columns ColumnMapper
	logger  zerolog.Logger
}

// NewSqlizer returns a new Sqlizer.
func NewSqlizer(options ...Option) *Sqlizer {
	s := &Sqlizer{
		columns: SnakeCase,
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Translate returns the condition equivalent to l.
func (s *Sqlizer) Translate(l *expr.Lambda) (sq.Sqlizer, error) {
	if l == nil {
		return nil, ErrNilExpression
	}
	return s.translate(l.Body)
}

// ApplyToSelect adds the condition equivalent to l to builder.
func (s *Sqlizer) ApplyToSelect(builder sq.SelectBuilder, l *expr.Lambda) (sq.SelectBuilder, error) {
	cond, err := s.Translate(l)
	if err != nil {
		return builder, err
	}
	return builder.Where(cond), nil
}

func (s *Sqlizer) translate(n expr.Node) (sq.Sqlizer, error) {
	switch t := n.(type) {
	case *expr.True:
		return sq.Expr("1=1"), nil
	case *expr.Compare:
		return s.compare(t)
	case *expr.Not:
		x, err := s.translate(t.X)
		if err != nil {
			return nil, err
		}
		neg := sq.Expr("NOT (?)", x)
		// a missing value satisfies every negated comparison
		if c, ok := t.X.(*expr.Compare); ok && c.Property.Nullable() {
			return sq.Or{sq.Eq{s.columns(c.Property.Address()): nil}, neg}, nil
		}
		return neg, nil
	case *expr.And:
		l, r, err := s.translateBinary(t.Left, t.Right)
		if err != nil {
			return nil, err
		}
		return sq.And{l, r}, nil
	case *expr.Or:
		l, r, err := s.translateBinary(t.Left, t.Right)
		if err != nil {
			return nil, err
		}
		return sq.Or{l, r}, nil
	default:
		return nil, fmt.Errorf("unexpected expression node %T", n)
	}
}

func (s *Sqlizer) translateBinary(left, right expr.Node) (sq.Sqlizer, sq.Sqlizer, error) {
	l, err := s.translate(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.translate(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (s *Sqlizer) compare(c *expr.Compare) (sq.Sqlizer, error) {
	col := s.column(c)

	switch c.Op {
	case domain.OpEqualTo:
		return sq.Eq{col: c.Operand}, nil
	case domain.OpLessThan:
		return sq.Lt{col: c.Operand}, nil
	case domain.OpLessThanOrEqualTo:
		return sq.LtOrEq{col: c.Operand}, nil
	case domain.OpGreaterThan:
		return sq.Gt{col: c.Operand}, nil
	case domain.OpGreaterThanOrEqualTo:
		return sq.GtOrEq{col: c.Operand}, nil
	}

	text, ok := c.Operand.(string)
	if !ok {
		return nil, fmt.Errorf("operator %s requires a text operand, got %T", c.Op, c.Operand)
	}
	text = likeEscaper.Replace(text)

	switch c.Op {
	case domain.OpContains:
		return like(col, "%"+text+"%"), nil
	case domain.OpStartsWith:
		return like(col, text+"%"), nil
	case domain.OpEndsWith:
		return like(col, "%"+text), nil
	default:
		return nil, fmt.Errorf("operator %s cannot be translated", c.Op)
	}
}

// like matches col against pattern, escaped with [likeEscaper]. Stores
// without a default escape character need the ESCAPE clause.
func like(col, pattern string) sq.Sqlizer {
	return sq.Expr(col+` LIKE ? ESCAPE '\'`, pattern)
}

func (s *Sqlizer) column(c *expr.Compare) string {
	col := s.columns(c.Property.Address())
	if c.Length {
		col = "LENGTH(" + col + ")"
	}
	if c.Fold {
		col = "LOWER(" + col + ")"
	}
	s.logger.Debug().
		Strs("address", c.Property.Address()).
		Str("column", col).
		Msg("column mapped")
	return col
}

// SnakeCase maps each segment of address to snake case and joins them with
// dots, so `User.CreatedAt` becomes `user.created_at`.
func SnakeCase(address []string) string {
	segments := make([]string, len(address))
	for n, segment := range address {
		segments[n] = snake(segment)
	}
	return strings.Join(segments, ".")
}

func snake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for n, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && n > 0 {
			prevLower := runes[n-1] < 'A' || runes[n-1] > 'Z'
			nextLower := n+1 < len(runes) && runes[n+1] >= 'a' && runes[n+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
