package ptree

import (
	"iter"
	"slices"

	"github.com/signadot/pathtree/ir"
)

// The cursor methods below walk the top level entries in order. There is
// one cursor per Tree. Validity is positional, so entries holding false or
// null do not end the walk. Deleting entries while walking shifts the
// entries after them.

// Current returns the entry under the cursor, or null past the end.
func (t *Tree) Current() Value {
	if !t.Valid() {
		return Value{}
	}
	return t.wrap(t.root.Values[t.pos])
}

// Key returns the key under the cursor, or "" past the end.
func (t *Tree) Key() string {
	if !t.Valid() {
		return ""
	}
	return t.root.KeyAt(t.pos)
}

func (t *Tree) Next() {
	if t.pos < t.root.Len() {
		t.pos++
	}
}

func (t *Tree) Rewind() {
	t.pos = 0
}

func (t *Tree) Valid() bool {
	return t.pos < t.root.Len()
}

// All iterates over the top level entries as they are when iteration
// starts. It does not move the cursor.
func (t *Tree) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		keys := t.root.Keys()
		vals := slices.Clone(t.root.Values)
		for i, key := range keys {
			if !yield(key, t.wrap(vals[i])) {
				return
			}
		}
	}
}

// Values is like All without the keys.
func (t *Tree) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

type entry struct {
	key  string
	node *ir.Node
}

func (t *Tree) entries() []entry {
	res := make([]entry, 0, t.root.Len())
	for key, node := range t.root.Entries() {
		res = append(res, entry{key: key, node: node})
	}
	return res
}

// fromEntries builds a new object tree holding copies of es in order.
func (t *Tree) fromEntries(es []entry) *Tree {
	res := newOwned(ir.Object(), t.delim)
	for _, e := range es {
		res.root.Put(e.key, e.node.Clone())
	}
	return res
}
