// Package libdiff renders line diffs between trees.
package libdiff
