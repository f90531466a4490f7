package dotted

// Option configures Flatten, Unflatten, and the document helpers.
type Option func(*options)

type options struct {
	separator string
	prefix    string
}

func newOptions(opts []Option) options {
	o := options{separator: "."}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeparator sets the string used to join and split key paths.
// The default is ".".
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// WithPrefix prepends a parent key to every flattened key, joined with the
// separator. It is ignored by Unflatten. The default is no prefix.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}
