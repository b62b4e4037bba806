package ptree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/pathtree/ir"
)

// Value is either a scalar (string, int64, float64, bool or nil) or a
// nested container wrapped in its own Tree. The zero Value is null.
type Value struct {
	scalar any
	tree   *Tree
}

// Scalar returns a Value holding v as is.
func Scalar(v any) Value {
	return Value{scalar: v}
}

func (v Value) IsTree() bool {
	return v.tree != nil
}

// Tree returns the wrapped container, or nil for scalars.
func (v Value) Tree() *Tree {
	return v.tree
}

func (v Value) IsNull() bool {
	return v.tree == nil && v.scalar == nil
}

// Any returns the *Tree for containers and the raw scalar otherwise.
func (v Value) Any() any {
	if v.tree != nil {
		return v.tree
	}
	return v.scalar
}

// Raw returns the value with containers unwrapped to plain Go values.
func (v Value) Raw() any {
	if v.tree != nil {
		return v.tree.ToAny()
	}
	return v.scalar
}

// ToIR implements ir.IRValue.
func (v Value) ToIR() (*ir.Node, error) {
	if v.tree != nil {
		return v.tree.ToIR()
	}
	return ir.FromAny(v.scalar)
}

func (v Value) String() string {
	if v.tree != nil {
		return v.tree.String()
	}
	return fmt.Sprint(v.scalar)
}

// Float returns the numeric value of numbers and of strings that look like
// numbers.
func (v Value) Float() (float64, bool) {
	if v.tree != nil {
		return 0, false
	}
	node, err := ir.FromAny(v.scalar)
	if err != nil {
		return 0, false
	}
	return numeric(node)
}

func numeric(node *ir.Node) (float64, bool) {
	switch node.Type {
	case ir.NumberType:
		return node.Float()
	case ir.StringType:
		return numericString(node.String)
	}
	return 0, false
}

// numericString accepts optionally signed decimal numbers with an optional
// exponent, surrounded by optional whitespace.
func numericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xXnNiIpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// text is the string form used for ordinal comparison.
func text(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		}
		return node.Number
	case ir.BoolType:
		if node.Bool {
			return "1"
		}
	}
	return ""
}
