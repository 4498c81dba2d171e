package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/pokerhands/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Deal hands from a shuffled deck and rank them"`
	File    FileCmd          `cmd:"" help:"Rank hands read from a file, one comma-separated hand per line"`
	Rank    RankCmd          `cmd:"" help:"Rank hands given as arguments"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Five-card poker hand analyzer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
