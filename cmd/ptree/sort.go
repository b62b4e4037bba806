package main

import (
	"fmt"

	"github.com/signadot/pathtree/eval"
	"github.com/signadot/pathtree/ptree"

	"github.com/scott-cotton/cli"
)

func sortCmd(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if count(cfg.SubPath != "", cfg.By != "", cfg.Cmp != "") > 1 {
		return fmt.Errorf("%w: must specify at most one of -k -by -cmp", cli.ErrUsage)
	}
	file, err := inputArg(args)
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var res *ptree.Tree
	switch {
	case cfg.By != "":
		res, err = eval.SortBy(t, cfg.By, cfg.Reverse)
	case cfg.Cmp != "":
		res, err = eval.SortWith(t, cfg.Cmp, cfg.Reverse)
	case cfg.Reverse:
		res = t.RSort(cfg.SubPath)
	default:
		res = t.Sort(cfg.SubPath)
	}
	if err != nil {
		return err
	}
	return writeTree(cfg.MainConfig, cc.Out, res)
}

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	file, err := inputArg(args[1:])
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	res, err := eval.Filter(t, args[0])
	if err != nil {
		return err
	}
	theLog.Debug("filtered", "from", t.Len(), "to", res.Len())
	return writeTree(cfg.MainConfig, cc.Out, res)
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
