package compiler

import (
	"github.com/rs/zerolog"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

// WithCaseSensitive tells the compiler whether the compared text is case
// sensitive. Criteria asking to ignore case only lower-case both sides when
// this is true, which is the default.
func WithCaseSensitive(c bool) Option {
	return func(co *Compiler) {
		co.caseSensitive = c
	}
}

// WithTagName sets the struct tag used to map specification fields to record
// properties.
func WithTagName(t string) Option {
	return func(co *Compiler) {
		co.tagName = t
	}
}

// WithFieldNavigator sets the field navigator used to resolve property paths.
func WithFieldNavigator(f domain.FieldNavigator) Option {
	return func(co *Compiler) {
		co.fieldNavigator = f
	}
}

// WithLogger sets the logger receiving debug events about compilation.
func WithLogger(l zerolog.Logger) Option {
	return func(co *Compiler) {
		co.logger = l
	}
}

// Option configures compiler behavior through the functional options pattern.
type Option func(*Compiler)
