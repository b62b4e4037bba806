package ptree

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetGetRoundTrip(t *testing.T) {
	values := []any{"X", int64(3), 2.5, true, false, nil}
	for depth := 1; depth <= 6; depth++ {
		segs := make([]string, depth)
		for i := range segs {
			segs[i] = string(rune('a' + i))
		}
		path := strings.Join(segs, "/")
		for _, v := range values {
			tree := MustNew(nil)
			if err := tree.Set(path, v); err != nil {
				t.Fatalf("Set(%q, %v): %v", path, v, err)
			}
			if got := tree.Get(path).Raw(); got != v {
				t.Errorf("Get(%q) = %#v, want %#v", path, got, v)
			}
			if !tree.Exists(path) {
				t.Errorf("Exists(%q) = false", path)
			}
		}
	}
}

func TestSetContainerWraps(t *testing.T) {
	tree := MustNew(nil)
	in := map[string]any{"x": int64(1), "y": []any{"p", "q"}}
	tree.MustSet("k", in)
	v := tree.Get("k")
	if !v.IsTree() {
		t.Fatalf("Get(k) = %v, want a tree", v)
	}
	if diff := cmp.Diff(in, v.Tree().ToAny()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := v.Tree().Get("y/1").Raw(); got != "q" {
		t.Errorf("nested array element = %v, want q", got)
	}

	// the returned tree is a copy
	v.Tree().MustSet("x", 2)
	if got := tree.Get("k/x").Raw(); got != int64(1) {
		t.Errorf("source changed through returned tree: %v", got)
	}
}

func TestSetTree(t *testing.T) {
	sub := fromYAML(t, `{b: 1}`)
	tree := MustNew(nil)
	tree.MustSet("a", sub)
	sub.MustSet("b", 2)
	if got := tree.Get("a/b").Raw(); got != int64(1) {
		t.Errorf("got %v, want 1", got)
	}
	tree.MustSet("c", tree.Get("a"))
	if got := tree.Get("c/b").Raw(); got != int64(1) {
		t.Errorf("got %v, want 1", got)
	}
}

func TestSetScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		want  string
	}{
		{"empty", `{}`, "a/b/c", `{a: {b: {c: X}}}`},
		{"sibling", `{a: {d: 1}}`, "a/b/c", `{a: {d: 1, b: {c: X}}}`},
		{"replace", `{a: {b: 1, c: 2}}`, "a/b", `{a: {b: X, c: 2}}`},
		{"flat", `{}`, "abc", `{abc: X}`},
		{"empty key", `{}`, "", `{"": X}`},
		{"extra delimiters", `{}`, "/a//b/", `{a: {b: X}}`},
		{"array element", `{l: [1, 2]}`, "l/1", `{l: [1, X]}`},
		{"array append", `{l: [1, 2]}`, "l/2", `{l: [1, 2, X]}`},
		{"array promote", `{l: [1, 2]}`, "l/k", `{l: {"0": 1, "1": 2, k: X}}`},
		{"through array", `{l: [{a: 1}]}`, "l/0/b", `{l: [{a: 1, b: X}]}`},
		{"replace container", `{a: {b: {c: 1}}}`, "a/b", `{a: {b: X}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := fromYAML(t, tt.input)
			if err := tree.Set(tt.path, "X"); err != nil {
				t.Fatal(err)
			}
			want := fromYAML(t, tt.want)
			if diff := cmp.Diff(want.ToAny(), tree.ToAny()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(want.Keys(), tree.Keys()); diff != "" {
				t.Errorf("keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetKeepsOrder(t *testing.T) {
	tree := fromYAML(t, `{a: {d: 1}}`)
	tree.MustSet("a/b/c", "X")
	if diff := cmp.Diff([]string{"d", "b"}, tree.Get("a").Tree().Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetInvalidPath(t *testing.T) {
	tests := []struct {
		input string
		path  string
	}{
		{`{a: {b: 1}}`, "a/b/c"},
		{`{a: x}`, "a/b"},
		{`{a: null}`, "a/b"},
		{`{a: [1]}`, "a/0/b"},
		{`{}`, "/"},
		{`{}`, "///"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			tree := fromYAML(t, tt.input)
			before := tree.Clone()
			err := tree.Set(tt.path, "X")
			if !errors.Is(err, ErrInvalidPath) {
				t.Fatalf("Set(%q) error = %v, want %v", tt.path, err, ErrInvalidPath)
			}
			if diff := cmp.Diff(before.ToAny(), tree.ToAny()); diff != "" {
				t.Errorf("tree changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetUnsupported(t *testing.T) {
	tree := MustNew(nil)
	if err := tree.Set("a", make(chan int)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want %v", err, ErrInvalidArgument)
	}
	if tree.Len() != 0 {
		t.Errorf("tree changed: %s", tree)
	}
}

func TestMustSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustSet did not panic")
		}
	}()
	fromYAML(t, `{a: 1}`).MustSet("a/b", 2)
}

func TestGet(t *testing.T) {
	tree := fromYAML(t, `{a: {b: 1, n: null, f: false}, l: [x, {y: z}], "x/y": flat}`)
	tests := []struct {
		path   string
		want   any
		exists bool
	}{
		{"a/b", int64(1), true},
		{"a/n", nil, true},
		{"a/f", false, true},
		{"a/missing", nil, false},
		{"a/b/c", nil, false},
		{"missing/b", nil, false},
		{"l/0", "x", true},
		{"l/1/y", "z", true},
		{"l/2", nil, false},
		{"l/01", nil, false},
		{"x/y", nil, false},
		{"/", nil, false},
		{"", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := tree.Get(tt.path).Raw(); got != tt.want {
				t.Errorf("Get(%q) = %#v, want %#v", tt.path, got, tt.want)
			}
			if got := tree.Exists(tt.path); got != tt.exists {
				t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.exists)
			}
			if got := tree.Has(tt.path); got != tt.exists {
				t.Errorf("Has(%q) = %v, want %v", tt.path, got, tt.exists)
			}
		})
	}
	if got := tree.Get("x/y", Delimiter(".")).Raw(); got != "flat" {
		t.Errorf("literal key = %v, want flat", got)
	}
}

func TestGetDefault(t *testing.T) {
	tree := fromYAML(t, `{a: {b: 1}}`, WithDelimiter("."))
	if got := tree.Get("a.c", Default(7)).Raw(); got != 7 {
		t.Errorf("got %#v, want 7", got)
	}
	if got := tree.Get("a.b", Default(7)).Raw(); got != int64(1) {
		t.Errorf("got %#v, want 1", got)
	}

	v := tree.Get("z", Default(map[string]any{"p": "q"}))
	if !v.IsTree() {
		t.Fatalf("container default not wrapped: %v", v)
	}
	if v.Tree().Delimiter() != "." {
		t.Errorf("default tree delimiter %q", v.Tree().Delimiter())
	}
	if got := v.Tree().Get("p").Raw(); got != "q" {
		t.Errorf("got %v, want q", got)
	}
	if !tree.Get("z").IsNull() {
		t.Errorf("default without option should be null")
	}
}

func TestDelete(t *testing.T) {
	tree := fromYAML(t, `{a: {b: {c: 1}, d: 2}, e: 3}`)
	if err := tree.Delete("a/b/c"); err != nil {
		t.Fatal(err)
	}
	if tree.Exists("a/b/c") {
		t.Errorf("a/b/c still exists")
	}
	if !tree.Get("a/b/c").IsNull() {
		t.Errorf("Get after Delete = %v", tree.Get("a/b/c"))
	}
	if got := tree.Get("a/b/c", Default("gone")).Raw(); got != "gone" {
		t.Errorf("got %v, want gone", got)
	}
	if !tree.Exists("a/b") {
		t.Errorf("parent removed")
	}

	// absent keys
	for _, path := range []string{"nope", "e", "e", "a/nope"} {
		if err := tree.Delete(path); err != nil {
			t.Errorf("Delete(%q): %v", path, err)
		}
	}
	want := map[string]any{"a": map[string]any{"b": map[string]any{}, "d": int64(2)}}
	if diff := cmp.Diff(want, tree.ToAny()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDeleteMissingKey(t *testing.T) {
	tree := fromYAML(t, `{a: {b: 1}}`)
	for _, path := range []string{"x/b", "a/x/y", "a/b/c"} {
		if err := tree.Delete(path); !errors.Is(err, ErrMissingKey) {
			t.Errorf("Delete(%q) error = %v, want %v", path, err, ErrMissingKey)
		}
	}
	if err := tree.Delete("//"); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Delete(//) error = %v, want %v", err, ErrInvalidPath)
	}
	if diff := cmp.Diff(map[string]any{"a": map[string]any{"b": int64(1)}}, tree.ToAny()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDeleteArray(t *testing.T) {
	tree := fromYAML(t, `{l: [a, b, c]}`)
	tree.Delete("l/2")
	if diff := cmp.Diff([]any{"a", "b"}, tree.Get("l").Raw()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	tree.Delete("l/0")
	if diff := cmp.Diff(map[string]any{"1": "b"}, tree.Get("l").Raw()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := tree.Get("l/1").Raw(); got != "b" {
		t.Errorf("got %v, want b", got)
	}
}
