package main

import (
	"fmt"

	"github.com/signadot/pathtree/libdiff"
	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/patch"
	"github.com/signadot/pathtree/ptree"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	file, err := inputArg(args[1:])
	if err != nil {
		return err
	}
	if file == "-" && args[0] == "-" {
		return fmt.Errorf("%w: patch and document cannot both be stdin", cli.ErrUsage)
	}
	p, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var res *ptree.Tree
	if cfg.Merge {
		res, err = patch.Merge(t, p)
	} else {
		res, err = patch.Apply(t, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeResult(cfg.MainConfig, cc.Out, t, res, cfg.Diff)
}

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := readTree(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := readTree(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if !cfg.Merge {
		d, err := libdiff.Diff(from.Container(), to.Container())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cc.Out, d)
		return err
	}
	d, err := patch.CreateMerge(from, to)
	if err != nil {
		return err
	}
	node, err := parse.Parse(d, parse.ParseJSON())
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, cc.Out, node)
}
