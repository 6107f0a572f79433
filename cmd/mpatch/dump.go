package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch/frag"
)

// fragment is the yaml and expression view of a frag.Fragment.
type fragment struct {
	Index int    `yaml:"index"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Len   int    `yaml:"len"`
	Delta int    `yaml:"delta"`
	Data  string `yaml:"data"`
}

type dumpDoc struct {
	Fragments []fragment `yaml:"fragments"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires exactly one delta", cli.ErrUsage)
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.Env(fragment{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	d, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	l, err := frag.Decode(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := selectFragments(l, where)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding fragments: %w", err)
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	if cfg.useColor(cc.Out) {
		cfg.summary(cc.Out).Fprintf(cc.Out, "# %d of %d fragments\n", len(doc.Fragments), l.Len())
	}
	return nil
}

func selectFragments(l *frag.List, where *vm.Program) (*dumpDoc, error) {
	doc := &dumpDoc{Fragments: []fragment{}}
	for i, f := range l.Fragments() {
		v := fragment{
			Index: i,
			Start: f.Start,
			End:   f.End,
			Len:   f.Len(),
			Delta: f.Delta(),
			Data:  string(f.Data),
		}
		if where != nil {
			ok, err := expr.Run(where, v)
			if err != nil {
				return nil, fmt.Errorf("error evaluating -where on fragment %d: %w", i, err)
			}
			if !ok.(bool) {
				continue
			}
		}
		doc.Fragments = append(doc.Fragments, v)
	}
	return doc, nil
}
