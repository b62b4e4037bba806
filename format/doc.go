// Package format names the document formats understood by parse and
// encode.
//
// DumpFormat is the human-readable nested dump produced for debugging; it
// is output only. YAMLFormat and JSONFormat are read and written.
package format
