package ptree

import "strings"

// splitPath returns the segments of path. A path without delim is a single
// literal key, possibly empty. Otherwise empty segments are dropped, so a
// path made only of delimiters has no segments at all.
func splitPath(path, delim string) []string {
	if !strings.Contains(path, delim) {
		return []string{path}
	}
	parts := strings.Split(path, delim)
	res := parts[:0]
	for _, part := range parts {
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
