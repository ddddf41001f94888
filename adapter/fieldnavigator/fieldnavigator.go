// Package fieldnavigator contains the default [domain.FieldNavigator]
// implementation, resolving dotted paths against struct types.
package fieldnavigator

import (
	"slices"
	"strings"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// FieldNavigator implements [domain.FieldNavigator].
type FieldNavigator struct {
	fallbackTag string
}

// NewFieldNavigator returns a new instance of [domain.FieldNavigator].
func NewFieldNavigator(options ...Option) domain.FieldNavigator {
	fn := &FieldNavigator{
		fallbackTag: "json",
	}
	for _, option := range options {
		option(fn)
	}
	return fn
}

// GetAddress implements [domain.FieldNavigator].
func (fn *FieldNavigator) GetAddress(field string) ([]string, error) {
	return strings.Split(field, "."), nil
}

// Resolve implements [domain.FieldNavigator].
func (fn *FieldNavigator) Resolve(typ reflect.Type, addr ...string) (domain.Property, error) {
	if len(addr) == 0 {
		return nil, domain.ErrPropertyNotFound{Type: typ, Path: addr}
	}

	curr := typ
	index := make([][]int, len(addr))
	var last reflect.StructField
	for n, part := range addr {
		curr = deref(curr)
		if curr.Kind() != reflect.Struct {
			return nil, domain.ErrPropertyNotFound{Type: typ, Path: addr, Segment: part}
		}
		field, ok := fn.lookup(curr, part)
		if !ok {
			return nil, domain.ErrPropertyNotFound{Type: typ, Path: addr, Segment: part}
		}
		index[n] = field.Index
		last = field
		curr = field.Type
	}
	if last.PkgPath != "" {
		return nil, domain.ErrPropertyNotFound{Type: typ, Path: addr, Segment: last.Name}
	}

	return &Property{
		address:  addr,
		index:    index,
		typ:      deref(last.Type),
		nullable: last.Type.Kind() == reflect.Ptr,
	}, nil
}

// embedded is a struct reached through anonymous fields.
type embedded struct {
	typ   reflect.Type
	index []int
}

// lookup finds a field named part, searching embedded structs one
// depth at a time the way Go promotes fields. A field whose fallback tag name
// is part is used when no field of the same depth has that exact name. The
// returned field carries its full index from typ.
func (fn *FieldNavigator) lookup(typ reflect.Type, part string) (reflect.StructField, bool) {
	visited := map[reflect.Type]bool{typ: true}
	level := []embedded{{typ: typ}}
	for len(level) > 0 {
		var next []embedded
		var tagged reflect.StructField
		found := false
		for _, e := range level {
			for n := range e.typ.NumField() {
				field := e.typ.Field(n)
				field.Index = append(slices.Clone(e.index), n)
				if field.Anonymous {
					if t := deref(field.Type); t.Kind() == reflect.Struct && !visited[t] {
						visited[t] = true
						next = append(next, embedded{typ: t, index: field.Index})
					}
				}
				// unexported embedded structs can still be walked through
				if field.PkgPath != "" && !field.Anonymous {
					continue
				}
				if field.Name == part {
					return field, true
				}
				if !found && fn.tagged(field, part) {
					tagged, found = field, true
				}
			}
		}
		if found {
			return tagged, true
		}
		level = next
	}
	return reflect.StructField{}, false
}

func (fn *FieldNavigator) tagged(field reflect.StructField, part string) bool {
	if fn.fallbackTag == "" {
		return false
	}
	tag, ok := field.Tag.Lookup(fn.fallbackTag)
	if !ok {
		return false
	}
	if i := strings.IndexRune(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	return tag == part
}

func deref(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	return typ
}

// Property implements [domain.Property].
type Property struct {
	address  []string
	// index holds the field index path of each address segment.
	index    [][]int
	typ      reflect.Type
	nullable bool
}

// Address implements [domain.Property].
func (p *Property) Address() []string { return p.address }

// Type implements [domain.Property].
func (p *Property) Type() reflect.Type { return p.typ }

// Nullable implements [domain.Property].
func (p *Property) Nullable() bool { return p.nullable }

// Get implements [domain.Property].
func (p *Property) Get(record reflect.Value) (reflect.Value, bool) {
	v, ok := indirect(record)
	if !ok {
		return reflect.Value{}, false
	}
	for _, path := range p.index {
		for _, i := range path {
			if v, ok = indirect(v); !ok || v.Kind() != reflect.Struct {
				return reflect.Value{}, false
			}
			v = v.Field(i)
		}
	}
	return indirect(v)
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}
