// Package builder contains the default [domain.Builder] implementation.
package builder

import (
	"sync"

	"github.com/goccy/go-reflect"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/compiler"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"github.com/vinicius-lino-figueiredo/queryfilter/pkg/expr"
)

// Builder implements [domain.Builder].
type Builder[T any] struct {
	compiler *compiler.Compiler
	typ      reflect.Type

	mu       sync.Mutex
	mappings []compiler.Mapping
}

// NewBuilder returns a new implementation of [domain.Builder] for records of
// type T.
func NewBuilder[T any](options ...compiler.Option) domain.Builder[T] {
	return &Builder[T]{
		compiler: compiler.NewCompiler(options...),
		typ:      reflect.TypeOf((*T)(nil)).Elem(),
	}
}

// AddCustomMapping implements [domain.Builder].
func (b *Builder[T]) AddCustomMapping(path string, cmd domain.Command) domain.Builder[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mappings = append(b.mappings, compiler.Mapping{Path: path, Command: cmd})
	return b
}

// Expression returns the expression tree described by spec and the custom
// mappings, with a single bound parameter.
func (b *Builder[T]) Expression(spec any) (*expr.Lambda, error) {
	b.mu.Lock()
	mappings := make([]compiler.Mapping, len(b.mappings))
	copy(mappings, b.mappings)
	b.mu.Unlock()

	return b.compiler.Compile(b.typ, spec, mappings)
}

// Compile implements [domain.Builder].
func (b *Builder[T]) Compile(spec any) (domain.Predicate[T], error) {
	lambda, err := b.Expression(spec)
	if err != nil {
		return nil, err
	}
	return expr.Compile[T](lambda)
}

// Build implements [domain.Builder].
func (b *Builder[T]) Build(coll domain.Collection[T], spec any) (domain.Collection[T], error) {
	pred, err := b.Compile(spec)
	if err != nil {
		return nil, err
	}
	return coll.Where(pred), nil
}

// Clear implements [domain.Builder].
func (b *Builder[T]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mappings = nil
}
