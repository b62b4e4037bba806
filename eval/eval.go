package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/pathtree/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrEval = errors.New("eval error")

// Env holds the variables an expression sees.
type Env map[string]any

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string {
	return p.src
}

// Run evaluates the program and returns the result as a node.
func (p *Program) Run(env Env) (*ir.Node, error) {
	res, err := expr.Run(p.prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEval, p.src, err)
	}
	node, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %q returned %T: %w", ErrEval, p.src, res, err)
	}
	return node, nil
}
