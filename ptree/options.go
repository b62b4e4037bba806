package ptree

// DefaultDelimiter separates path segments unless configured otherwise.
const DefaultDelimiter = "/"

// Option configures a Tree created by New.
type Option func(*Tree)

// WithDelimiter sets the default delimiter of the tree. An empty delimiter
// is ignored.
func WithDelimiter(d string) Option {
	return func(t *Tree) {
		if d != "" {
			t.delim = d
		}
	}
}

type pathOpts struct {
	delim string
	def   any
}

// PathOption adjusts a single path operation.
type PathOption func(*pathOpts)

// Delimiter overrides the tree's delimiter for one call. An empty delimiter
// is ignored.
func Delimiter(d string) PathOption {
	return func(o *pathOpts) {
		if d != "" {
			o.delim = d
		}
	}
}

// Default is returned by Get when the path does not resolve.
func Default(v any) PathOption {
	return func(o *pathOpts) { o.def = v }
}

func (t *Tree) pathOpts(opts []PathOption) *pathOpts {
	po := &pathOpts{delim: t.delim}
	for _, opt := range opts {
		opt(po)
	}
	return po
}
