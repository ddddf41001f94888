package collection

import "github.com/vinicius-lino-figueiredo/queryfilter/domain"

type sortedOptions struct {
	comparer domain.Comparer
	unique   bool
}

// WithComparer sets the comparer used to order keys.
func WithComparer(c domain.Comparer) Option {
	return func(so *sortedOptions) {
		so.comparer = c
	}
}

// WithUnique rejects records whose key is already in the collection.
func WithUnique(u bool) Option {
	return func(so *sortedOptions) {
		so.unique = u
	}
}

// Option configures a [Sorted] collection through the functional options
// pattern.
type Option func(*sortedOptions)
