package eval

import (
	"os"

	"github.com/signadot/pathtree/ptree"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			t, opts := within(params)
			if t == nil {
				return nil, nil
			}
			return t.Get(params[1].(string), opts...).Raw(), nil
		},
			new(func(any, string) any),
			new(func(any, string, string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			t, opts := within(params)
			if t == nil {
				return false, nil
			}
			return t.Exists(params[1].(string), opts...), nil
		},
			new(func(any, string) bool),
			new(func(any, string, string) bool)),
		expr.Function("num", func(params ...any) (any, error) {
			f, _ := ptree.Scalar(params[0]).Float()
			return f, nil
		},
			new(func(any) float64)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// within wraps the first parameter of get and has, returning nil for
// scalars.
func within(params []any) (*ptree.Tree, []ptree.PathOption) {
	var opts []ptree.PathOption
	if len(params) > 2 {
		opts = append(opts, ptree.Delimiter(params[2].(string)))
	}
	t, err := ptree.New(params[0])
	if err != nil {
		return nil, nil
	}
	return t, opts
}
