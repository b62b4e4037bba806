package ptree

import (
	"fmt"
	"strings"

	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/ir"
)

// Set stores a copy of v at path, creating missing intermediate levels as
// objects. v may be anything ir.FromAny accepts, including *Tree and Value.
//
// Set fails with ErrInvalidPath when a non-final segment holds a scalar and
// with ErrInvalidArgument when v cannot be converted. On error the tree is
// unchanged.
func (t *Tree) Set(path string, v any, opts ...PathOption) error {
	po := t.pathOpts(opts)
	val, err := ir.FromAny(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	segs := splitPath(path, po.delim)
	if len(segs) == 0 {
		return fmt.Errorf("%w: no key in %q", ErrInvalidPath, path)
	}
	n := len(segs)
	parent := t.root
	for i, seg := range segs[:n-1] {
		next, ok := parent.Lookup(seg)
		if !ok {
			if debug.Set() {
				debug.Logf("set %q: creating %q under %q\n", path, segs[i+1:], strings.Join(segs[:i+1], po.delim))
			}
			parent.Put(seg, chain(segs[i+1:], val))
			return nil
		}
		if !next.IsContainer() {
			return fmt.Errorf("%w: couldn't set a value at %q: %q holds a %s",
				ErrInvalidPath, path, strings.Join(segs[:i+1], po.delim), next.Type)
		}
		parent = next
	}
	if debug.Set() {
		debug.Logf("set %q to %v\n", path, val)
	}
	parent.Put(segs[n-1], val)
	return nil
}

// MustSet is like Set but panics on error. It returns t for chaining.
func (t *Tree) MustSet(path string, v any, opts ...PathOption) *Tree {
	if err := t.Set(path, v, opts...); err != nil {
		panic(err)
	}
	return t
}

// chain nests leaf under single key objects, one per segment.
func chain(segs []string, leaf *ir.Node) *ir.Node {
	res := leaf
	for i := len(segs) - 1; i >= 0; i-- {
		res = ir.FromKeyVals([]ir.KeyVal{{Key: segs[i], Val: res}})
	}
	return res
}
