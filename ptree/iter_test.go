package ptree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type kv struct {
	Key string
	Val any
}

func TestCursor(t *testing.T) {
	tree := fromYAML(t, `{foo: bar, foo1: bar1}`)
	var got []kv
	for tree.Rewind(); tree.Valid(); tree.Next() {
		got = append(got, kv{tree.Key(), tree.Current().Raw()})
	}
	want := []kv{{"foo", "bar"}, {"foo1", "bar1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", tree.Size())
	}
	if tree.Key() != "" || !tree.Current().IsNull() {
		t.Errorf("past the end: key %q value %v", tree.Key(), tree.Current())
	}
	tree.Next()
	tree.Rewind()
	if tree.Key() != "foo" {
		t.Errorf("after Rewind key = %q", tree.Key())
	}
}

func TestCursorFalseValues(t *testing.T) {
	tree := fromYAML(t, `{a: false, b: null, c: 0, d: "", e: last}`)
	var keys []string
	for tree.Rewind(); tree.Valid(); tree.Next() {
		keys = append(keys, tree.Key())
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCursorWrapsContainers(t *testing.T) {
	tree := fromYAML(t, `{a: {b: 1}, l: [1, 2]}`)
	tree.Rewind()
	v := tree.Current()
	if !v.IsTree() || v.Tree().Get("b").Raw() != int64(1) {
		t.Errorf("Current() = %v", v)
	}
	tree.Next()
	if got := tree.Current().Tree().Len(); got != 2 {
		t.Errorf("array len = %d", got)
	}
}

func TestAll(t *testing.T) {
	tree := fromYAML(t, `{x: 1, y: 2, z: 3}`)
	var got []kv
	for k, v := range tree.All() {
		got = append(got, kv{k, v.Raw()})
		if k == "y" {
			break
		}
	}
	want := []kv{{"x", int64(1)}, {"y", int64(2)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var vals []any
	for v := range tree.Values() {
		vals = append(vals, v.Raw())
	}
	if diff := cmp.Diff([]any{int64(1), int64(2), int64(3)}, vals); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestAllSnapshot(t *testing.T) {
	tree := fromYAML(t, `{x: 1, y: 2}`)
	n := 0
	for k := range tree.All() {
		tree.MustSet(k+"2", 0)
		n++
	}
	if n != 2 {
		t.Errorf("visited %d entries, want 2", n)
	}
}

func TestForEach(t *testing.T) {
	tree := fromYAML(t, `{a: 1, b: 2, c: 3}`)
	sum := int64(0)
	err := tree.ForEach(func(v Value) error {
		sum += v.Raw().(int64)
		return nil
	})
	if err != nil || sum != 6 {
		t.Errorf("sum %d err %v", sum, err)
	}

	stop := errors.New("stop")
	var seen []string
	err = tree.ForEachEntry(func(k string, v Value) error {
		seen = append(seen, k)
		if k == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("error = %v, want %v", err, stop)
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if err := tree.ForEach(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ForEach(nil) error = %v", err)
	}
	if err := tree.ForEachEntry(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ForEachEntry(nil) error = %v", err)
	}
}

func TestFilter(t *testing.T) {
	tree := fromYAML(t, `{a: 1, b: {n: 2}, c: 3, d: {n: 4}}`)
	before := tree.Clone()
	res, err := tree.Filter(func(k string, v Value) bool {
		return v.IsTree()
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "d"}, res.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	res.MustSet("b/n", 20)
	if diff := cmp.Diff(before.ToAny(), tree.ToAny()); diff != "" {
		t.Errorf("receiver changed (-want +got):\n%s", diff)
	}

	arr := fromYAML(t, `[x, y, z]`)
	res, err = arr.Filter(func(k string, v Value) bool { return k != "1" })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"0": "x", "2": "z"}, res.ToAny()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if _, err := tree.Filter(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Filter(nil) error = %v", err)
	}
}
