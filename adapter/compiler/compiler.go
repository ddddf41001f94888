// Package compiler contains the predicate compiler, which turns a filter
// specification into a single expression tree over a record type.
package compiler

import (
	"errors"

	"github.com/goccy/go-reflect"
	"github.com/rs/zerolog"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/fieldnavigator"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/structure"
)

// DefaultTagName is the struct tag used to map specification fields to record
// properties.
const DefaultTagName = "queryfilter"

// Mapping associates a command with a dotted path of the record type.
type Mapping struct {
	Path    string
	Command domain.Command
}

// Compiler compiles filter specifications into [expr.Lambda] trees. It holds
// no state between calls and can be used concurrently.
type Compiler struct {
	caseSensitive  bool
	tagName        string
	fieldNavigator domain.FieldNavigator
	logger         zerolog.Logger
}

// NewCompiler returns a new Compiler.
func NewCompiler(options ...Option) *Compiler {
	c := &Compiler{
		caseSensitive:  true,
		tagName:        DefaultTagName,
		fieldNavigator: fieldnavigator.NewFieldNavigator(),
		logger:         zerolog.Nop(),
	}
	for _, option := range options {
		option(c)
	}
	if c.fieldNavigator == nil {
		c.fieldNavigator = fieldnavigator.NewFieldNavigator()
	}
	if c.tagName == "" {
		c.tagName = DefaultTagName
	}
	return c
}

// Compile builds the expression described by spec and mappings for records of
// type typ.
//
// Tagged fields of spec are compiled in declaration order, followed by the
// mappings in the given order. Groups of spec, if it implements
// [domain.Grouper], are then composed and ANDed together, and every criterion
// left out of the groups is ANDed onto the result. A nil spec compiles only
// the mappings.
func (c *Compiler) Compile(typ reflect.Type, spec any, mappings []Mapping) (*expr.Lambda, error) {
	comp := newCompilation()

	groups, err := c.compileSpec(comp, typ, spec)
	if err != nil {
		return nil, err
	}

	for _, m := range mappings {
		if err := c.compileCommand(comp, typ, m.Path, m.Command); err != nil {
			return nil, err
		}
	}

	body, err := comp.compose(groups)
	if err != nil {
		return nil, err
	}

	lambda := expr.NewLambda(expr.NewParam("a"), body)
	c.logger.Debug().
		Stringer("type", typ).
		Int("criteria", len(comp.entries)).
		Int("groups", len(groups)).
		Stringer("expression", lambda).
		Msg("filter compiled")
	return lambda, nil
}

func (c *Compiler) compileSpec(comp *compilation, typ reflect.Type, spec any) ([]domain.Group, error) {
	fields, err := structure.TaggedFields(spec, c.tagName)
	if err != nil {
		if errors.Is(err, structure.ErrNilObj) {
			return nil, nil
		}
		var nonObj structure.ErrorNonObject
		if errors.As(err, &nonObj) {
			return nil, domain.ErrSpecificationType{Type: nonObj.Type}
		}
		return nil, err
	}

	for _, field := range fields {
		cmd, err := asCommand(field)
		if err != nil {
			return nil, err
		}
		if err := c.compileCommand(comp, typ, field.Tag, cmd); err != nil {
			return nil, err
		}
	}

	if g, ok := spec.(domain.Grouper); ok {
		return g.FilterGroups(), nil
	}
	return nil, nil
}

// asCommand reads a tagged field as a command. Nil fields return a nil
// command.
func asCommand(field structure.Field) (domain.Command, error) {
	v := field.Value
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
	}
	if cmd, ok := v.Interface().(domain.Command); ok {
		return cmd, nil
	}
	if v.CanAddr() {
		if cmd, ok := v.Addr().Interface().(domain.Command); ok {
			return cmd, nil
		}
	}
	return nil, domain.ErrSpecificationType{Field: field.Name, Type: v.Type()}
}

func (c *Compiler) compileCommand(comp *compilation, typ reflect.Type, path string, cmd domain.Command) error {
	if cmd == nil || cmd.TotalItems() == 0 {
		return nil
	}

	addr, err := c.fieldNavigator.GetAddress(path)
	if err != nil {
		return err
	}
	prop, err := c.fieldNavigator.Resolve(typ, addr...)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("path", path).
		Stringer("family", cmd.Family()).
		Int("criteria", cmd.TotalItems()).
		Msg("property resolved")

	for _, item := range cmd.Items() {
		node, err := c.compileCriterion(cmd.Family(), prop, item)
		if err != nil {
			return err
		}
		if node == nil {
			c.logger.Debug().
				Str("path", path).
				Str("id", item.ID()).
				Msg("criterion without value skipped")
		}
		comp.add(item, node)
	}
	return nil
}
