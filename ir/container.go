package ir

import (
	"iter"
	"slices"
	"strconv"
)

// IndexKey reports whether key is the canonical decimal form of an array
// index ("0", "12" but not "01", "+1" or "-1") and returns the index.
func IndexKey(key string) (int, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Len returns the number of entries of a container and 0 for leaves.
func (y *Node) Len() int {
	if !y.IsContainer() {
		return 0
	}
	return len(y.Values)
}

// KeyAt returns the key of the i'th entry of a container.
func (y *Node) KeyAt(i int) string {
	if y.Type == ObjectType {
		return y.Fields[i].String
	}
	return strconv.Itoa(i)
}

func (y *Node) Keys() []string {
	n := y.Len()
	res := make([]string, n)
	for i := range n {
		res[i] = y.KeyAt(i)
	}
	return res
}

// Entries iterates over the entries of a container in order.
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i := range y.Len() {
			if !yield(y.KeyAt(i), y.Values[i]) {
				return
			}
		}
	}
}

// Find returns the position of key in a container, or -1.
func (y *Node) Find(key string) int {
	switch y.Type {
	case ObjectType:
		for i, f := range y.Fields {
			if f.String == key {
				return i
			}
		}
	case ArrayType:
		if i, ok := IndexKey(key); ok && i < len(y.Values) {
			return i
		}
	}
	return -1
}

func (y *Node) Lookup(key string) (*Node, bool) {
	i := y.Find(key)
	if i == -1 {
		return nil, false
	}
	return y.Values[i], true
}

func Get(y *Node, key string) *Node {
	res, _ := y.Lookup(key)
	return res
}

// Put sets key to v. An existing key keeps its position, a new key is
// appended. Arrays stay arrays when key addresses an existing element or
// the next one; otherwise they are first turned into objects keyed by their
// indices. Put panics on leaves.
func (y *Node) Put(key string, v *Node) {
	switch y.Type {
	case ArrayType:
		if i, ok := IndexKey(key); ok {
			if i < len(y.Values) {
				y.Values[i] = v
				return
			}
			if i == len(y.Values) {
				y.Values = append(y.Values, v)
				return
			}
		}
		y.indexKeys()
	case ObjectType:
	default:
		panic("put on " + y.Type.String())
	}
	if i := y.Find(key); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, v)
}

// Remove unsets key, reporting whether it was present. Removing anything
// but the last element of an array turns it into an object so the remaining
// keys are unchanged.
func (y *Node) Remove(key string) bool {
	i := y.Find(key)
	if i == -1 {
		return false
	}
	if y.Type == ArrayType {
		if i == len(y.Values)-1 {
			y.Values = y.Values[:i]
			return true
		}
		y.indexKeys()
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) indexKeys() {
	y.Fields = make([]*Node, len(y.Values))
	for i := range y.Values {
		y.Fields[i] = FromString(strconv.Itoa(i))
	}
	y.Type = ObjectType
}
