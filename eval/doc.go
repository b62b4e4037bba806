// Package eval compiles expressions into callbacks for ptree collection
// operations.
//
// Expressions use the expr language (github.com/expr-lang/expr). An entry
// is visible as key and value, where value is the plain Go form of the
// entry (maps, slices and scalars). Comparators see a and b instead.
//
// Besides the builtins of expr, expressions may call
//
//	get(x, path)          value at path within x, nil when absent
//	get(x, path, delim)   same, with another delimiter
//	has(x, path)          whether path resolves within x
//	num(x)                x as a float, for numbers and numeric strings
//	getenv(name)          environment variable
//
// # Related Packages
//
//   - github.com/signadot/pathtree/ptree - Filter, SortByValue, SortByKey
package eval
