package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch"
)

func combine(cfg *CombineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Combine.Parse(cc, args)
	if err != nil {
		return err
	}
	deltas, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	d, err := mpatch.CombineDeltas(deltas)
	if err != nil {
		return fmt.Errorf("error combining deltas: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
