package sqlizer

import (
	"strings"

	"github.com/rs/zerolog"
)

// WithColumnMapper sets the function naming the column of a property.
func WithColumnMapper(m ColumnMapper) Option {
	return func(s *Sqlizer) {
		if m != nil {
			s.columns = m
		}
	}
}

// WithColumns maps dotted property paths to columns, falling back to
// [SnakeCase] for paths not in columns.
func WithColumns(columns map[string]string) Option {
	return WithColumnMapper(func(address []string) string {
		if col, ok := columns[strings.Join(address, ".")]; ok {
			return col
		}
		return SnakeCase(address)
	})
}

// WithLogger sets the logger receiving debug events about translation.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sqlizer) {
		s.logger = l
	}
}

// Option configures sqlizer behavior through the functional options pattern.
type Option func(*Sqlizer)
