package ir

import (
	"cmp"
	"slices"
	"strings"
)

// typeOrder lists the kinds of node from lowest to highest. Leaves come
// before containers, and arrays before objects.
var typeOrder = []Type{NullType, BoolType, NumberType, StringType, ArrayType, ObjectType}

// Compare orders two nodes, returning -1, 0 or +1. Nodes of different kinds
// order by kind (null, bool, number, string, array, object). A nil node is
// lowest.
//
// Two containers compare entry by entry in their stored order: first the
// keys, then the values at those keys. Arrays use their indices as keys, so
// only values decide between arrays. When one container is a prefix of the
// other the shorter one is lower. Objects are not sorted before comparison,
// so {a: 1, b: 2} and {b: 2, a: 1} differ, as they do in a Tree.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(kindOf(a), kindOf(b)); c != 0 {
		return c
	}
	switch a.Type {
	case BoolType:
		return cmp.Compare(boolInt(a.Bool), boolInt(b.Bool))
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType, ObjectType:
		return compareEntries(a, b)
	}
	return 0
}

func kindOf(y *Node) int {
	if i := slices.Index(typeOrder, y.Type); i >= 0 {
		return i
	}
	return len(typeOrder)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// compareNumbers orders by value. Numbers whose literal cannot be parsed
// sort above all parseable ones and among themselves by literal.
func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	fa, okA := a.Float()
	fb, okB := b.Float()
	switch {
	case okA && okB:
		return cmp.Compare(fa, fb)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a.Number, b.Number)
}

func compareEntries(a, b *Node) int {
	n := min(a.Len(), b.Len())
	for i := range n {
		if c := strings.Compare(a.KeyAt(i), b.KeyAt(i)); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
