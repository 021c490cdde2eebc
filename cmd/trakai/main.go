package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/trakai/cmd/trakai/commands"
	"git.home.luguber.info/inful/trakai/internal/foundation/errors"
	"git.home.luguber.info/inful/trakai/internal/version"
)

func main() {
	cli := &commands.CLI{}
	globals := &commands.Global{Out: os.Stdout}

	parser := kong.Parse(cli,
		kong.Name("trakai"),
		kong.Description("A static blog generator."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(globals),
	)

	err := parser.Run(globals, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, globals.Logger).HandleError(err)
}
