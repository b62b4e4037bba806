// Package parse decodes YAML and JSON documents into ir nodes, preserving
// the order of object keys.
//
// # Usage
//
//	node, err := parse.Parse(data)               // YAML or JSON
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// Parsing is only used at the edges of the module, for patch documents and
// by the command line tool. The ptree accessor works on in-memory values.
package parse
