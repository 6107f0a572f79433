package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "mpatch").
		WithSynopsis("mpatch [opts] command [opts]").
		WithDescription("mpatch reconstructs texts from chains of binary deltas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mpatchMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			SizeCommand(cfg),
			DumpCommand(cfg),
			MakeCommand(cfg),
			CombineCommand(cfg),
			ChunkCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg, Jobs: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply [-z] [-j n] base delta...").
		WithDescription("apply a chain of deltas, oldest first, to a base text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func SizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SizeConfig{MainConfig: mainCfg, BaseLen: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Size, "size").
		WithAliases("s").
		WithSynopsis("size (-n len | base) delta").
		WithDescription("print the size of the text a single delta produces").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return size(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-where expr] delta").
		WithDescription("list the fragments of a delta as yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func MakeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MakeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Make, "make").
		WithSynopsis("make records.yaml").
		WithDescription("build a binary delta from a yaml list of {start, end, data} records").
		WithRun(func(cc *cli.Context, args []string) error {
			return makeDelta(cfg, cc, args)
		})
}

func CombineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CombineConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Combine, "combine").
		WithAliases("c").
		WithSynopsis("combine delta...").
		WithDescription("fold a chain of deltas into one delta").
		WithRun(func(cc *cli.Context, args []string) error {
			return combine(cfg, cc, args)
		})
}

func ChunkCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ChunkConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Chunk, "chunk").
		WithSynopsis("chunk [-d] [-zstd] file").
		WithDescription("compress a text into a stored chunk, or decompress one").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chunkCmd(cfg, cc, args)
		})
}
