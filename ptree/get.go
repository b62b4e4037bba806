package ptree

import (
	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/ir"
)

// Get returns the value at path. Containers come back wrapped in a new Tree
// sharing t's delimiter. If any segment is missing, or a segment is applied
// to a scalar, Get returns the Default option (null if not given), wrapped
// the same way when it is a container.
func (t *Tree) Get(path string, opts ...PathOption) Value {
	po := t.pathOpts(opts)
	node, ok := t.lookup(path, po.delim)
	if debug.Path() {
		debug.Logf("get %q (delim %q) found=%t\n", path, po.delim, ok)
	}
	if !ok {
		return t.defaultValue(po.def)
	}
	return t.wrap(node)
}

// Exists reports whether every segment of path resolves. A key holding null
// exists.
func (t *Tree) Exists(path string, opts ...PathOption) bool {
	po := t.pathOpts(opts)
	_, ok := t.lookup(path, po.delim)
	return ok
}

// Has is the same as Exists.
func (t *Tree) Has(path string, opts ...PathOption) bool {
	return t.Exists(path, opts...)
}

func (t *Tree) lookup(path, delim string) (*ir.Node, bool) {
	return lookupSegments(t.root, splitPath(path, delim))
}

func lookupSegments(node *ir.Node, segs []string) (*ir.Node, bool) {
	if len(segs) == 0 {
		return nil, false
	}
	cur := node
	for _, seg := range segs {
		if !cur.IsContainer() {
			return nil, false
		}
		next, ok := cur.Lookup(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (t *Tree) defaultValue(def any) Value {
	switch x := def.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case *Tree:
		if x == nil {
			return Value{}
		}
		return Value{tree: newOwned(x.root.Clone(), t.delim)}
	case *ir.Node:
		if x == nil {
			return Value{}
		}
		return t.wrap(x)
	}
	node, err := ir.FromAny(def)
	if err == nil && node.IsContainer() {
		return Value{tree: newOwned(node, t.delim)}
	}
	return Value{scalar: def}
}
