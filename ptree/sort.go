package ptree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/ir"
)

// SortByValue returns a new tree with the top level entries stably sorted by
// compare applied to their values. Keys stay attached to their values.
func (t *Tree) SortByValue(compare func(a, b Value) int) (*Tree, error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	es := t.entries()
	vals := make([]Value, len(es))
	idx := make([]int, len(es))
	for i, e := range es {
		idx[i] = i
		vals[i] = t.wrap(e.node)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return compare(vals[a], vals[b])
	})
	return t.fromEntries(permute(es, idx)), nil
}

// SortByKey returns a new tree with the top level entries stably sorted by
// compare applied to their keys.
func (t *Tree) SortByKey(compare func(a, b string) int) (*Tree, error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	es := t.entries()
	slices.SortStableFunc(es, func(a, b entry) int {
		return compare(a.key, b.key)
	})
	return t.fromEntries(es), nil
}

// Sort returns a new tree with the top level entries stably sorted in
// ascending order. Container entries are ordered by the value at subPath
// within them (0 when absent), scalar entries by themselves. Numeric values
// order before text, which orders before containers, see CompareValues.
func (t *Tree) Sort(subPath string, opts ...PathOption) *Tree {
	return t.sortBy(subPath, 1, opts)
}

// RSort is like Sort in descending order. Equal entries keep their
// relative order.
func (t *Tree) RSort(subPath string, opts ...PathOption) *Tree {
	return t.sortBy(subPath, -1, opts)
}

func (t *Tree) sortBy(subPath string, sign int, opts []PathOption) *Tree {
	po := t.pathOpts(opts)
	segs := splitPath(subPath, po.delim)
	es := t.entries()
	keys := make([]*ir.Node, len(es))
	idx := make([]int, len(es))
	for i, e := range es {
		idx[i] = i
		keys[i] = sortKey(e.node, segs)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return sign * compareNodes(keys[a], keys[b])
	})
	res := permute(es, idx)
	if debug.Sort() {
		order := make([]string, len(res))
		for i, e := range res {
			order[i] = e.key
		}
		debug.Logf("sort by %q (%d): %s\n", subPath, sign, strings.Join(order, ", "))
	}
	return t.fromEntries(res)
}

func sortKey(node *ir.Node, segs []string) *ir.Node {
	if !node.IsContainer() {
		return node
	}
	if res, ok := lookupSegments(node, segs); ok {
		return res
	}
	return ir.FromInt(0)
}

func permute(es []entry, idx []int) []entry {
	res := make([]entry, len(idx))
	for i, j := range idx {
		res[i] = es[j]
	}
	return res
}

// CompareValues is the comparison used by Sort. Values fall in three ranks,
// compared in order: numeric values (numbers and numeric strings), then text
// (other strings, booleans and null), then containers. Numeric values compare
// as float64, text by string form where true is "1" and false and null are
// "". Containers compare among themselves by ir.Compare. The ranks keep the
// order total, so mixed columns sort the same way whatever the input order.
func CompareValues(a, b Value) int {
	return compareNodes(valueNode(a), valueNode(b))
}

func valueNode(v Value) *ir.Node {
	if v.tree != nil {
		return v.tree.root
	}
	node, err := ir.FromAny(v.scalar)
	if err != nil {
		return ir.FromString(fmt.Sprint(v.scalar))
	}
	return node
}

const (
	rankNumeric = iota
	rankText
	rankContainer
)

func compareNodes(a, b *ir.Node) int {
	ra, fa := rank(a)
	rb, fb := rank(b)
	if c := cmp.Compare(ra, rb); c != 0 {
		return c
	}
	switch ra {
	case rankNumeric:
		return cmp.Compare(fa, fb)
	case rankContainer:
		return ir.Compare(a, b)
	}
	return strings.Compare(text(a), text(b))
}

func rank(node *ir.Node) (int, float64) {
	if node.IsContainer() {
		return rankContainer, 0
	}
	if f, ok := numeric(node); ok {
		return rankNumeric, f
	}
	return rankText, 0
}
