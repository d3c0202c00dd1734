package main

import (
	"fmt"
	"runtime/debug"

	"github.com/maruel/subcommands"
)

const version = "0.1.0"

var cmdVersion = &subcommands.Command{
	UsageLine: "version",
	ShortDesc: "prints the executable version",
	LongDesc:  "Prints the executable version and the build information.",
	CommandRun: func() subcommands.CommandRun {
		return &versionRun{}
	},
}

type versionRun struct {
	subcommands.CommandRunBase
}

func (c *versionRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) != 0 {
		fmt.Fprintf(a.GetErr(), "%s: position arguments not expected\n", a.GetName())
		return 1
	}
	fmt.Println(version)
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return 0
	}
	if buildInfo.GoVersion != "" {
		fmt.Printf("go\t%s\n", buildInfo.GoVersion)
	}
	for _, s := range buildInfo.Settings {
		if s.Key == "vcs.revision" || s.Key == "vcs.time" {
			fmt.Printf("build\t%s=%s\n", s.Key, s.Value)
		}
	}
	return 0
}
