package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path  bool
	Set   bool
	Sort  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("PTREE_DEBUG_PATH")
	d.Set = boolEnv("PTREE_DEBUG_SET")
	d.Sort = boolEnv("PTREE_DEBUG_SORT")
	d.Patch = boolEnv("PTREE_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Set() bool {
	return d.Set
}
func Sort() bool {
	return d.Sort
}
func Patch() bool {
	return d.Patch
}
