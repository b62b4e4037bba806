package main

import (
	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
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
	return writeNode(cfg.MainConfig, cc.Out, t.Container(), encode.EncodeFormat(format.DumpFormat))
}
