package ptree

import (
	"fmt"
	"strings"

	"github.com/signadot/pathtree/debug"
)

// Delete unsets the key at path. A single segment path which is absent is
// not an error, and neither is an absent final key. Every other segment
// must resolve to a container or Delete fails with ErrMissingKey and the
// tree is unchanged.
func (t *Tree) Delete(path string, opts ...PathOption) error {
	po := t.pathOpts(opts)
	segs := splitPath(path, po.delim)
	if len(segs) == 0 {
		return fmt.Errorf("%w: no key in %q", ErrInvalidPath, path)
	}
	n := len(segs)
	parent := t.root
	for i, seg := range segs[:n-1] {
		next, ok := parent.Lookup(seg)
		if !ok || !next.IsContainer() {
			return fmt.Errorf("%w: %q", ErrMissingKey, strings.Join(segs[:i+1], po.delim))
		}
		parent = next
	}
	removed := parent.Remove(segs[n-1])
	if debug.Path() {
		debug.Logf("delete %q removed=%t\n", path, removed)
	}
	return nil
}
