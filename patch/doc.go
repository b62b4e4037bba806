// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to trees.
//
// Patch documents may be written in JSON or YAML. Object keys present
// before patching keep their order; keys added by a patch follow them.
package patch
