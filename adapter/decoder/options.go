package decoder

import "github.com/vinicius-lino-figueiredo/queryfilter/domain"

// WithTagName sets the struct tag matched against document keys.
func WithTagName(t string) Option {
	return func(d *Decoder) {
		if t != "" {
			d.tagName = t
		}
	}
}

// WithWeaklyTyped sets whether scalar values may be converted between types,
// like "12" into 12.
func WithWeaklyTyped(w bool) Option {
	return func(d *Decoder) {
		d.weak = w
	}
}

// WithIDGenerator sets the generator used for records without an identity.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(d *Decoder) {
		if g != nil {
			d.idGenerator = g
		}
	}
}

// Option configures decoder behavior through the functional options pattern.
type Option func(*Decoder)
