package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/pathtree/encode"
	"github.com/signadot/pathtree/format"
	"github.com/signadot/pathtree/parse"
	"github.com/signadot/pathtree/ptree"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

// delimEnv names the environment variable holding the default delimiter.
const delimEnv = "PTREE_DELIM"

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Delim   string `cli:"name=d aliases=delim desc='path delimiter (default $PTREE_DELIM or /)'"`
	Verbose bool   `cli:"name=v desc='log what is being done'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) delim() string {
	if cfg.Delim != "" {
		return cfg.Delim
	}
	if d := os.Getenv(delimEnv); d != "" {
		return d
	}
	return ptree.DefaultDelimiter
}

func (cfg *MainConfig) treeOpts() []ptree.Option {
	return []ptree.Option{ptree.WithDelimiter(cfg.delim())}
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

// inFormat picks the input format from the flags, then the file suffix.
// YAML is the default and also reads JSON.
func (cfg *MainConfig) inFormat(file string) format.Format {
	fmat := format.YAMLFormat
	if f, ok := format.FromSuffix(filepath.Ext(file)); ok {
		fmat = f
	}
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	if fmat == format.DumpFormat {
		fmat = format.YAMLFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmt := format.YAMLFormat
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type HasConfig struct {
	*MainConfig

	Has *cli.Command
}

type SetConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a diff instead of the result'"`
	Sets []setArg

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='show a diff instead of the result'"`
	Paths []string

	Delete *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type SortConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='sort in descending order'"`
	SubPath string `cli:"name=k desc='sub path of container entries to sort by'"`
	By      string `cli:"name=by desc='expression computing the sort key from key and value'"`
	Cmp     string `cli:"name=cmp desc='expression comparing entries a and b'"`

	Sort *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as a merge patch'"`
	Diff  bool `cli:"name=diff desc='show a diff instead of the result'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='output a merge patch instead of a line diff'"`

	Diff *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}
