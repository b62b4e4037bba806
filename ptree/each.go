package ptree

import "fmt"

// ForEach calls fn with each top level value in order. It stops at and
// returns the first error from fn.
func (t *Tree) ForEach(fn func(v Value) error) error {
	if fn == nil {
		return fmt.Errorf("%w: nil callback", ErrInvalidArgument)
	}
	for v := range t.Values() {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// ForEachEntry is like ForEach but also passes the key.
func (t *Tree) ForEachEntry(fn func(key string, v Value) error) error {
	if fn == nil {
		return fmt.Errorf("%w: nil callback", ErrInvalidArgument)
	}
	for key, v := range t.All() {
		if err := fn(key, v); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a new tree with the top level entries for which pred is
// true, keeping their keys and order. t is not modified.
func (t *Tree) Filter(pred func(key string, v Value) bool) (*Tree, error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: nil predicate", ErrInvalidArgument)
	}
	var keep []entry
	for _, e := range t.entries() {
		if pred(e.key, t.wrap(e.node)) {
			keep = append(keep, e)
		}
	}
	return t.fromEntries(keep), nil
}
