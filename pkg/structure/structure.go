// Package structure contains type-related operations, such as listing the
// tagged fields of a filter specification.
package structure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-reflect"
)

var (
	// ErrNilObj may be returned by [TaggedFields] when a nil value is
	// passed as argument.
	ErrNilObj = errors.New("nil object")
)

// ErrorNonObject is returned by [TaggedFields] when a value that is not a
// struct is passed as argument.
type ErrorNonObject struct {
	Type reflect.Type
}

func (e ErrorNonObject) Error() string {
	return fmt.Sprintf("expected a struct, got %s", e.Type)
}

// Field is an exported struct field carrying the lookup tag.
type Field struct {
	// Name is the Go name of the field, dotted for fields promoted from
	// embedded structs.
	Name string
	// Tag is the tag value without options. It defaults to the field name
	// when the tag is empty.
	Tag string
	// Value is the field value. It is always addressable.
	Value reflect.Value
}

// TaggedFields returns the exported fields of obj carrying tagName, in
// declaration order. Fields of embedded structs without the tag are listed
// in place. Fields tagged "-" are ignored.
//
// If obj is not addressable, its fields are read from a copy.
func TaggedFields(obj any, tagName string) ([]Field, error) {
	if obj == nil {
		return nil, ErrNilObj
	}
	v := reflect.ValueNoEscapeOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, ErrNilObj
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, ErrorNonObject{Type: v.Type()}
	}
	if !v.CanAddr() {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}
	return listTaggedFields(v, tagName, ""), nil
}

func listTaggedFields(v reflect.Value, tagName string, prefix string) []Field {
	var res []Field
	typ := v.Type()
	for n := range typ.NumField() {
		field := typ.Field(n)
		if field.PkgPath != "" {
			continue
		}

		tag, ok := field.Tag.Lookup(tagName)
		if !ok {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				res = append(res, listTaggedFields(v.Field(n), tagName, prefix+field.Name+".")...)
			}
			continue
		}
		if found := strings.IndexRune(tag, ','); found >= 0 {
			tag = tag[:found]
		}
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = field.Name
		}
		res = append(res, Field{
			Name:  prefix + field.Name,
			Tag:   tag,
			Value: v.Field(n),
		})
	}
	return res
}
