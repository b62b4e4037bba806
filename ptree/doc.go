// Package ptree provides Tree, a path addressable accessor over nested
// objects and arrays.
//
// # Paths
//
// A path is a string of keys separated by a delimiter, "/" by default:
//
//	t := ptree.MustNew(nil)
//	t.MustSet("a/b/c", "X")        // {a: {b: {c: "X"}}}
//	v := t.Get("a/b/c")            // Value holding "X"
//	t.Exists("a/b")                // true
//	err := t.Delete("a/b/c")
//
// A path which does not contain the delimiter is one literal key. Otherwise
// empty segments are ignored, so "a//b" and "/a/b" name the same key as
// "a/b". There is no escaping: a key containing the delimiter is reached by
// using another delimiter for the call, or for the tree:
//
//	t.Get("x.y", ptree.Delimiter("."))
//	t.SetDelimiter(".")
//
// Array elements are addressed by their index in decimal ("0", "1", ...).
//
// # Reading
//
// Get never fails: a missing key, or a key looked up in a scalar, yields the
// Default option or null. Exists reports whether the whole path resolves.
//
// # Writing
//
// Set creates missing levels as objects. It refuses to descend through an
// existing scalar and returns ErrInvalidPath instead of replacing it. The
// tree is left unchanged whenever Set returns an error.
//
// Delete of a single key is idempotent. Deleting through a missing
// intermediate key returns ErrMissingKey.
//
// # Values
//
// Get, the cursor, iterators and callbacks hand out a Value: either a raw
// scalar (string, int64, float64, bool or nil) or a *Tree wrapping a copy of
// a nested container. Trees never share storage, so changes made through a
// returned Tree do not affect its source; write them back with Set.
//
// # Collections
//
// The top level entries can be walked with the cursor (Current, Key, Next,
// Rewind, Valid), ranged over with All and Values, or visited with ForEach
// and ForEachEntry. Filter, Sort, RSort, SortByValue and SortByKey return new
// trees and leave the receiver untouched. All sorts are stable.
//
// # Thread Safety
//
// A Tree has no internal locking. Callers must serialize calls which modify
// it, including cursor moves.
package ptree
