package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path := args[0]
	file, err := inputArg(args[1:])
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if !t.Exists(path) {
		theLog.Debug("no value", "path", path)
		return cli.ExitCodeErr(1)
	}
	node, err := t.Get(path).ToIR()
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, cc.Out, node)
}

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		cfg.Has.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: has requires a path", cli.ErrUsage)
	}
	file, err := inputArg(args[1:])
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, strconv.FormatBool(t.Exists(args[0])))
	return err
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file, err := inputArg(args)
	if err != nil {
		return err
	}
	t, err := readTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	for _, k := range t.Keys() {
		if _, err := fmt.Fprintln(cc.Out, k); err != nil {
			return err
		}
	}
	return nil
}
