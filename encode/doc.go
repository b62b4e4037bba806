// Package encode writes ir nodes as text.
//
// # Usage
//
//	// nested dump, for people
//	s := encode.MustString(node)
//
//	// JSON or YAML with key order preserved
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// single line dump with terminal colors
//	err := encode.Encode(node, w, encode.EncodeWire(true), encode.EncodeColors(encode.NewColors()))
//
// The dump renders objects as `{ key: value ... }` and arrays as
// `[ value ... ]`, one entry per line, with strings quoted. It is a
// debugging aid; use JSON or YAML for anything that must be read back.
//
// # Related Packages
//
//   - github.com/signadot/pathtree/ir - node representation
//   - github.com/signadot/pathtree/parse - parse text to nodes
package encode
