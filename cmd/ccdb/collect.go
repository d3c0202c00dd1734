package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
	"github.com/maruel/subcommands"

	"ccdb/internal/clangdb"
	"ccdb/internal/collector"
	"ccdb/internal/config"
	"ccdb/internal/intercept"
	"ccdb/internal/recognition"
)

var cmdCollect = &subcommands.Command{
	UsageLine: "collect [flags] -- <build command> [build args...]",
	ShortDesc: "runs a build and writes its compilation database",
	LongDesc: `Starts the event collector, runs the given build command with the
collector address exported in the environment, and writes the recognized
compiler calls as a compilation database when the build finishes.

The build is expected to call the stand-in executables instead of the real
tools; setting up the stand-in link directory and PATH is left to the
caller. The exit code is the build command's exit code.`,
	CommandRun: func() subcommands.CommandRun {
		c := &collectRun{}
		c.Flags.StringVar(&c.configPath, "config", "", "path of the configuration file")
		c.Flags.StringVar(&c.address, "addr", "127.0.0.1:0", "address the collector listens on")
		c.Flags.StringVar(&c.outputPath, "output", "", "path of the compilation database, overrides the config")
		c.Flags.BoolVar(&c.verbose, "verbose", false, "log at debug level")
		return c
	},
}

type collectRun struct {
	subcommands.CommandRunBase
	configPath string
	address    string
	outputPath string
	verbose    bool
}

func (c *collectRun) Run(a subcommands.Application, args []string, _ subcommands.Env) int {
	if len(args) == 0 {
		fmt.Fprintf(a.GetErr(), "%s: expected a build command after --\n", a.GetName())
		return 2
	}
	if c.verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			fmt.Fprintf(a.GetErr(), "%s: %v\n", a.GetName(), err)
			return 1
		}
		cfg = loaded
	}
	if c.outputPath != "" {
		cfg.Output.Path = c.outputPath
	}

	exitCode, err := c.collect(cfg, args)
	if err != nil {
		fmt.Fprintf(a.GetErr(), "%s: %v\n", a.GetName(), err)
		return 1
	}
	return exitCode
}

// collect runs the build against a live collector and writes the database.
// The returned exit code is the build command's exit code.
func (c *collectRun) collect(cfg *config.Config, buildArgs []string) (int, error) {
	server, err := collector.Listen(c.address, recognition.New(cfg))
	if err != nil {
		return 0, fmt.Errorf("cannot start the collector: %w", err)
	}
	log.Info("collector listening", "address", server.Address())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() {
		served <- server.Serve(ctx)
	}()

	build := exec.Command(buildArgs[0], buildArgs[1:]...)
	build.Stdin = os.Stdin
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	build.Env = append(os.Environ(), intercept.DestinationKey+"="+server.Address())
	buildErr := build.Run()

	// Stand-ins report before they run their tool, so no event can arrive
	// after the build command has exited.
	server.Close()
	if err := <-served; err != nil {
		log.Error("collector stopped with failure", "error", err)
	}

	var entries []clangdb.Entry
	for _, call := range server.Calls() {
		entries = append(entries, clangdb.Entries(call)...)
	}
	if err := clangdb.Write(cfg.Output.Path, entries); err != nil {
		return 0, err
	}
	log.Info("compilation database written", "path", cfg.Output.Path, "entries", len(entries))

	if buildErr != nil {
		if exitErr, ok := buildErr.(*exec.ExitError); ok {
			if code := exitErr.ExitCode(); code >= 0 {
				return code, nil
			}
			return 1, nil
		}
		return 0, fmt.Errorf("cannot run the build command: %w", buildErr)
	}
	return 0, nil
}
