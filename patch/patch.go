package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/pathtree/debug"
	"github.com/signadot/pathtree/ir"
	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/ptree"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply returns a copy of t with the JSON Patch operations in patch applied.
func Apply(t *ptree.Tree, patch []byte) (*ptree.Tree, error) {
	d, err := toJSON(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops\n", len(ops))
	}
	return apply(t, func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	})
}

// Merge returns a copy of t with the merge patch applied.
func Merge(t *ptree.Tree, patch []byte) (*ptree.Tree, error) {
	d, err := toJSON(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s\n", d)
	}
	return apply(t, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, d)
	})
}

func toJSON(patch []byte) ([]byte, error) {
	node, err := parse.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return node.MarshalJSON()
}

func apply(t *ptree.Tree, f func([]byte) ([]byte, error)) (*ptree.Tree, error) {
	orig := t.Container()
	d, err := orig.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	restoreOrder(orig, res)
	if debug.Patch() {
		debug.Logf("patched to %v\n", res)
	}
	return ptree.New(res, ptree.WithDelimiter(t.Delimiter()))
}

// restoreOrder reorders the object keys of res to follow those of orig
// where both have them, recursively.
func restoreOrder(orig, res *ir.Node) {
	switch {
	case orig.Type == ir.ObjectType && res.Type == ir.ObjectType:
		kvs := make([]ir.KeyVal, 0, res.Len())
		for key, o := range orig.Entries() {
			if r, ok := res.Lookup(key); ok {
				restoreOrder(o, r)
				kvs = append(kvs, ir.KeyVal{Key: key, Val: r})
			}
		}
		for key, r := range res.Entries() {
			if orig.Find(key) == -1 {
				kvs = append(kvs, ir.KeyVal{Key: key, Val: r})
			}
		}
		ordered := ir.FromKeyVals(kvs)
		res.Fields, res.Values = ordered.Fields, ordered.Values
	case orig.Type == ir.ArrayType && res.Type == ir.ArrayType:
		for i := range min(len(orig.Values), len(res.Values)) {
			restoreOrder(orig.Values[i], res.Values[i])
		}
	}
}

// CreateMerge returns a merge patch which turns from into to.
func CreateMerge(from, to *ptree.Tree) ([]byte, error) {
	a, err := from.Container().MarshalJSON()
	if err != nil {
		return nil, err
	}
	b, err := to.Container().MarshalJSON()
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return d, nil
}
