package eval

import (
	"errors"
	"testing"

	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/ptree"

	"github.com/google/go-cmp/cmp"
)

func tree(t *testing.T, s string) *ptree.Tree {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return ptree.MustNew(node)
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`key ==`); !errors.Is(err, ErrEval) {
		t.Errorf("error = %v, want %v", err, ErrEval)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		src  string
		env  Env
		want any
	}{
		{`1 + 2`, nil, int64(3)},
		{`key + "!"`, Env{"key": "a"}, "a!"},
		{`get(value, "b/c")`, Env{"value": map[string]any{"b": map[string]any{"c": "x"}}}, "x"},
		{`get(value, "b.c", ".")`, Env{"value": map[string]any{"b": map[string]any{"c": "y"}}}, "y"},
		{`get(value, "b")`, Env{"value": "scalar"}, nil},
		{`has(value, "0")`, Env{"value": []any{1}}, true},
		{`num("2.5") * 2`, nil, 5.0},
		{`num(value) < num("11")`, Env{"value": "2"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			res, err := p.Run(tt.env)
			if err != nil {
				t.Fatal(err)
			}
			if got := res.Scalar(); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("PTREE_EVAL_TEST", "on")
	p, err := Compile(`getenv("PTREE_EVAL_TEST")`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := p.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.String != "on" {
		t.Errorf("got %q", res.String)
	}
}

func TestFilter(t *testing.T) {
	src := tree(t, `{a: {n: 1}, b: {n: 5}, c: 7, d: {n: 3}}`)
	tests := []struct {
		expr string
		want []string
	}{
		{`(get(value, "n") ?? 0) > 2`, []string{"b", "d"}},
		{`key in ["a", "c"]`, []string{"a", "c"}},
		{`has(value, "n")`, []string{"a", "b", "d"}},
		{`get(value, "n")`, []string{"a", "b", "d"}},
		{`false`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := Filter(src, tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, res.Keys()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if src.Len() != 4 {
		t.Errorf("receiver changed: %s", src)
	}
}

func TestFilterRunError(t *testing.T) {
	src := tree(t, `{a: 1, b: x}`)
	_, err := Filter(src, `value + 1 > 0`)
	if !errors.Is(err, ErrEval) {
		t.Errorf("error = %v, want %v", err, ErrEval)
	}
}

func TestSortBy(t *testing.T) {
	src := tree(t, `{a: {n: "22"}, b: {n: "1"}, c: {n: "11"}, d: {n: "2"}}`)
	res, err := SortBy(src, `get(value, "n")`, false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "d", "c", "a"}, res.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	res, err = SortBy(src, `key`, true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"d", "c", "b", "a"}, res.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := SortBy(src, `value`, false); !errors.Is(err, ErrEval) {
		t.Errorf("container sort key error = %v", err)
	}
}

func TestSortWith(t *testing.T) {
	src := tree(t, `{a: [1, 2, 3], b: [1], c: [1, 2], d: [4]}`)
	tests := []struct {
		expr    string
		reverse bool
		want    []string
	}{
		{`len(a) - len(b)`, false, []string{"b", "d", "c", "a"}},
		{`len(a) < len(b)`, false, []string{"b", "d", "c", "a"}},
		{`len(a) < len(b)`, true, []string{"a", "c", "b", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := SortWith(src, tt.expr, tt.reverse)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, res.Keys()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := SortWith(src, `"x"`, false); !errors.Is(err, ErrEval) {
		t.Errorf("string comparator error = %v", err)
	}
}
