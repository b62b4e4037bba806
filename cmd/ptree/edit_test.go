package main

import (
	"errors"
	"testing"

	"github.com/signadot/pathtree/format"
	"github.com/signadot/pathtree/ir"
	"github.com/signadot/pathtree/ptree"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestParseSetArg(t *testing.T) {
	tests := []struct {
		arg  string
		path string
		want any
	}{
		{"a/b=1", "a/b", int64(1)},
		{"a=x=y", "a", "x=y"},
		{"a=", "a", nil},
		{"a=[1, two]", "a", []any{int64(1), "two"}},
		{"a={b: true}", "a", map[string]any{"b": true}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			sa, err := parseSetArg(tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			if sa.path != tt.path {
				t.Errorf("path %q, want %q", sa.path, tt.path)
			}
			if diff := cmp.Diff(tt.want, ir.ToAny(sa.val)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if _, err := parseSetArg("novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("error = %v, want %v", err, cli.ErrUsage)
	}
}

func TestInputArg(t *testing.T) {
	if f, err := inputArg(nil); err != nil || f != "-" {
		t.Errorf("inputArg(nil) = %q, %v", f, err)
	}
	if f, err := inputArg([]string{"x.yaml"}); err != nil || f != "x.yaml" {
		t.Errorf("inputArg(x.yaml) = %q, %v", f, err)
	}
	if _, err := inputArg([]string{"a", "b"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("error = %v, want %v", err, cli.ErrUsage)
	}
}

func TestDelim(t *testing.T) {
	cfg := &MainConfig{}
	t.Setenv(delimEnv, "")
	if got := cfg.delim(); got != ptree.DefaultDelimiter {
		t.Errorf("got %q", got)
	}
	t.Setenv(delimEnv, ".")
	if got := cfg.delim(); got != "." {
		t.Errorf("got %q, want env delimiter", got)
	}
	cfg.Delim = ":"
	if got := cfg.delim(); got != ":" {
		t.Errorf("got %q, want flag delimiter", got)
	}
}

func TestCount(t *testing.T) {
	if n := count(true, false, true); n != 2 {
		t.Errorf("count = %d", n)
	}
}

func TestInputFormat(t *testing.T) {
	jf := format.JSONFormat
	tests := []struct {
		name string
		cfg  MainConfig
		file string
		want format.Format
	}{
		{"default", MainConfig{}, "-", format.YAMLFormat},
		{"suffix", MainConfig{}, "x.json", format.JSONFormat},
		{"flag", MainConfig{Y: true}, "x.json", format.YAMLFormat},
		{"explicit", MainConfig{InFormat: &jf}, "x.yaml", format.JSONFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.inFormat(tt.file); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
