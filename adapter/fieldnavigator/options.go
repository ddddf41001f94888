package fieldnavigator

// WithFallbackTag sets the struct tag checked when a path segment does not
// match any field name. An empty tag disables the fallback.
func WithFallbackTag(tag string) Option {
	return func(fn *FieldNavigator) {
		fn.fallbackTag = tag
	}
}

// Option configures field navigator behavior through the functional options
// pattern.
type Option func(*FieldNavigator)
