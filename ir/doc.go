// Package ir provides the storage representation for path trees.
//
// # Overview
//
// A tree is a recursive structure of Nodes. Every Node is a tagged union
// whose Type says which fields carry its value:
//
//   - NullType: null value
//   - BoolType: boolean (Bool)
//   - NumberType: numeric value (Int64, Float64, or Number as text fallback)
//   - StringType: string value (String)
//   - ArrayType: ordered list of nodes (Values)
//   - ObjectType: ordered key-value pairs (Fields and Values)
//
// # Containers
//
// Objects and arrays are containers. For ObjectType nodes, Fields[i] is a
// StringType node holding the key for Values[i], so there are always as many
// fields as values and insertion order is preserved. Keys occur once.
//
// Arrays have implicit keys: the canonical decimal form of each index
// ("0", "1", ...). Container methods (Find, Lookup, Put, Remove, Keys,
// Entries) address both kinds by string key:
//
//	obj := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
//	obj.Put("b", ir.FromString("x"))
//	v, ok := obj.Lookup("b")
//
// Putting a key which is neither an existing index nor the next one into an
// array, or removing an element other than the last, turns the array into an
// object whose keys are the former indices. Remaining entries therefore keep
// their keys, as with sparse arrays.
//
// # Go values
//
// FromAny and ToAny convert between nodes and plain Go values. ToMapSlice
// renders objects as yaml.MapSlice to keep key order through encoders.
//
// # Comparison
//
//	equal := ir.Compare(a, b) == 0
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
package ir
