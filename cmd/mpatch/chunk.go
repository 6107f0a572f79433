package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/mpatch/chunk"
)

func chunkCmd(cfg *ChunkConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Chunk.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: chunk requires exactly one file", cli.ErrUsage)
	}
	d, err := readInput(cc, args[0])
	if err != nil {
		return err
	}
	if cfg.Decompress {
		d, err = chunk.Decompress(d)
		if err != nil {
			return fmt.Errorf("error decompressing %s: %w", args[0], err)
		}
	} else {
		engine := chunk.Zlib
		if cfg.Zstd {
			engine = chunk.Zstd
		}
		d = chunk.Compress(d, engine)
	}
	_, err = cc.Out.Write(d)
	return err
}
