package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch"
)

func size(cfg *SizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Size.Parse(cc, args)
	if err != nil {
		return err
	}
	baseLen := cfg.BaseLen
	switch {
	case baseLen >= 0 && len(args) == 1:
	case baseLen < 0 && len(args) == 2:
	default:
		return fmt.Errorf("%w: size requires a delta and either -n or a base file", cli.ErrUsage)
	}
	inputs, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	if len(inputs) == 2 {
		baseLen = len(inputs[0])
	}
	d := inputs[len(inputs)-1]
	n, err := mpatch.PatchedSize(baseLen, d)
	if err != nil {
		return fmt.Errorf("error sizing %s: %w", args[len(args)-1], err)
	}
	fmt.Fprintln(cc.Out, n)
	if cfg.useColor(cc.Out) {
		cfg.summary(cc.Out).Fprintf(cc.Out, "# base %d, delta %+d\n", baseLen, n-baseLen)
	}
	return nil
}
