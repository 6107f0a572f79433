package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: apply requires a base and zero or more deltas", cli.ErrUsage)
	}
	inputs, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	base, deltas := inputs[0], inputs[1:]

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	p := mpatch.New(
		mpatch.WithLogger(cfg.logger()),
		mpatch.WithParallelism(cfg.Jobs))
	var text []byte
	if cfg.Chunks {
		text, err = p.ApplyChunks(ctx, base, deltas)
	} else {
		text, err = p.ApplyPatches(ctx, base, deltas)
	}
	if err != nil {
		return fmt.Errorf("error applying deltas to %s: %w", args[0], err)
	}
	_, err = cc.Out.Write(text)
	return err
}
