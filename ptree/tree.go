package ptree

import (
	"bytes"
	"fmt"

	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/ir"
)

// Tree is a path addressable accessor over one container. The container is
// owned by the tree: values passed in are copied, and containers handed out
// are copies wrapped in new trees.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root  *ir.Node
	delim string
	pos   int
}

// New creates a tree holding a copy of initial, which must be nil (an empty
// object) or convertible to an object or array by ir.FromAny: maps with
// string keys, slices, yaml.MapSlice, *ir.Node or *Tree.
func New(initial any, opts ...Option) (*Tree, error) {
	t := &Tree{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(t)
	}
	if initial == nil {
		t.root = ir.Object()
		return t, nil
	}
	node, err := ir.FromAny(initial)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if !node.IsContainer() {
		return nil, fmt.Errorf("%w: initial value is a %s, not a container", ErrInvalidArgument, node.Type)
	}
	t.root = node
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(initial any, opts ...Option) *Tree {
	t, err := New(initial, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// newOwned wraps node without copying it.
func newOwned(node *ir.Node, delim string) *Tree {
	return &Tree{root: node, delim: delim}
}

func (t *Tree) Delimiter() string {
	return t.delim
}

// SetDelimiter changes the delimiter used by calls which do not pass one.
func (t *Tree) SetDelimiter(d string) error {
	if d == "" {
		return fmt.Errorf("%w: empty delimiter", ErrInvalidArgument)
	}
	t.delim = d
	return nil
}

func (t *Tree) Keys() []string {
	return t.root.Keys()
}

// Len returns the number of top level entries.
func (t *Tree) Len() int {
	return t.root.Len()
}

// Size is the same as Len.
func (t *Tree) Size() int {
	return t.Len()
}

// Container returns a copy of the underlying container.
func (t *Tree) Container() *ir.Node {
	return t.root.Clone()
}

// ToIR implements ir.IRValue so trees can be stored in other trees.
func (t *Tree) ToIR() (*ir.Node, error) {
	if t == nil {
		return ir.Null(), nil
	}
	return t.root.Clone(), nil
}

// ToAny returns the container as plain Go values (see ir.ToAny).
func (t *Tree) ToAny() any {
	return ir.ToAny(t.root)
}

// Clone returns an independent copy with the same delimiter and a fresh
// cursor.
func (t *Tree) Clone() *Tree {
	return newOwned(t.root.Clone(), t.delim)
}

// Merge copies every top level entry of other into t, replacing entries
// with the same key.
func (t *Tree) Merge(other *Tree) error {
	if other == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidArgument)
	}
	for key, node := range other.root.Entries() {
		t.root.Put(key, node.Clone())
	}
	return nil
}

// String renders the container as a nested dump for debugging.
func (t *Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.root, buf); err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return buf.String()
}

func (t *Tree) wrap(node *ir.Node) Value {
	if node.IsContainer() {
		return Value{tree: newOwned(node.Clone(), t.delim)}
	}
	return Value{scalar: node.Scalar()}
}
