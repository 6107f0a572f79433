package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch/frag"
)

// record is one replace record of a yaml delta description.
type record struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Data  string `yaml:"data"`
}

func makeDelta(cfg *MakeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Make.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: make requires exactly one yaml file", cli.ErrUsage)
	}
	d, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	blob, err := encodeRecords(d)
	if err != nil {
		return fmt.Errorf("error in %s: %w", args[0], err)
	}
	_, err = cc.Out.Write(blob)
	return err
}

func encodeRecords(d []byte) ([]byte, error) {
	var recs []record
	if err := yaml.Unmarshal(d, &recs); err != nil {
		return nil, err
	}
	var blob []byte
	last := 0
	for i, r := range recs {
		if r.Start < last || r.End < r.Start {
			return nil, fmt.Errorf("%w: record %d [%d,%d) after end %d", frag.ErrInvalidPatch, i, r.Start, r.End, last)
		}
		var err error
		blob, err = frag.AppendRecord(blob, r.Start, r.End, []byte(r.Data))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		last = r.End
	}
	return blob, nil
}
