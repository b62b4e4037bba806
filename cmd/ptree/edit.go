package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pathtree/ir"
	"github.com/signadot/pathtree/libdiff"
	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/ptree"

	"github.com/scott-cotton/cli"
)

type setArg struct {
	path string
	val  *ir.Node
}

// parseSetArg splits a path=val argument, decoding val as yaml.
func parseSetArg(a string) (setArg, error) {
	path, val, ok := strings.Cut(a, "=")
	if !ok {
		return setArg{}, fmt.Errorf("%w: argument %q expected path=val", cli.ErrUsage, a)
	}
	node, err := parse.ParseValue(val)
	if err != nil {
		return setArg{}, fmt.Errorf("%w: value of %q: %w", cli.ErrUsage, path, err)
	}
	return setArg{path: path, val: node}, nil
}

func (cfg *SetConfig) setOpt(_ *cli.Context, a string) (any, error) {
	sa, err := parseSetArg(a)
	if err != nil {
		return nil, err
	}
	cfg.Sets = append(cfg.Sets, sa)
	return 0, nil
}

func (cfg *DeleteConfig) pathOpt(_ *cli.Context, a string) (any, error) {
	cfg.Paths = append(cfg.Paths, a)
	return 0, nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(cfg.Sets) == 0 {
		return fmt.Errorf("%w: set requires at least one -e path=val", cli.ErrUsage)
	}
	file, err := inputArg(args)
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	before := t.Clone()
	for _, sa := range cfg.Sets {
		theLog.Debug("set", "path", sa.path)
		if err := t.Set(sa.path, sa.val); err != nil {
			return err
		}
	}
	return writeResult(cfg.MainConfig, cc.Out, before, t, cfg.Diff)
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(cfg.Paths) == 0 {
		return fmt.Errorf("%w: delete requires at least one -p path", cli.ErrUsage)
	}
	file, err := inputArg(args)
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	before := t.Clone()
	for _, path := range cfg.Paths {
		theLog.Debug("delete", "path", path)
		if err := t.Delete(path); err != nil {
			return err
		}
	}
	return writeResult(cfg.MainConfig, cc.Out, before, t, cfg.Diff)
}

// writeResult writes after, or the diff from before to after.
func writeResult(cfg *MainConfig, w io.Writer, before, after *ptree.Tree, diff bool) error {
	if !diff {
		return writeTree(cfg, w, after)
	}
	d, err := libdiff.Diff(before.Container(), after.Container())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, d)
	return err
}
