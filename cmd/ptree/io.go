package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/ir"
	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/ptree"

	"github.com/scott-cotton/cli"
)

// inputArg returns the optional trailing file argument, "-" meaning stdin.
func inputArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: at most one input file, got %d", cli.ErrUsage, len(args))
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func readTree(cfg *MainConfig, cc *cli.Context, file string) (*ptree.Tree, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	if node.Type == ir.NullType {
		node = ir.Object()
	}
	t, err := ptree.New(node, cfg.treeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	theLog.Debug("loaded", "file", file, "entries", t.Len())
	return t, nil
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node, opts ...encode.EncodeOption) error {
	opts = append(cfg.encOpts(w), opts...)
	if err := encode.Encode(node, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func writeTree(cfg *MainConfig, w io.Writer, t *ptree.Tree) error {
	return writeNode(cfg, w, t.Container())
}
