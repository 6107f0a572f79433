package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='color summaries'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log fold and reconstruction details to stderr'"`
	Gops    bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	return newLogger(os.Stderr, cfg.Verbose)
}

// summary returns the color used for summary lines written to w.
func (cfg *MainConfig) summary(w io.Writer) *color.Color {
	c := color.New(color.FgCyan)
	if cfg.useColor(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ApplyConfig struct {
	*MainConfig
	Chunks bool `cli:"name=z desc='inputs are stored chunks (zlib, zstd or literal)'"`
	Jobs   int  `cli:"name=j desc='concurrent subtree folds'"`

	Apply *cli.Command
}

type SizeConfig struct {
	*MainConfig
	BaseLen int `cli:"name=n desc='base length, instead of reading a base file'"`

	Size *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression selecting fragments, e.g. Len > 10 && Start < 100'"`

	Dump *cli.Command
}

type MakeConfig struct {
	*MainConfig
	Make *cli.Command
}

type CombineConfig struct {
	*MainConfig
	Combine *cli.Command
}

type ChunkConfig struct {
	*MainConfig
	Decompress bool `cli:"name=d desc='decompress instead of compress'"`
	Zstd       bool `cli:"name=zstd desc='compress with zstd instead of zlib'"`

	Chunk *cli.Command
}
