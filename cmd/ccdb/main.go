// ccdb generates a compilation database from an intercepted build.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "ccdb",
	Title: "compilation database generator",
	Commands: []*subcommands.Command{
		cmdCollect,
		cmdVersion,
		subcommands.CmdHelp,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
