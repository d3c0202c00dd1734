// Package wrapper implements the stand-in process: it transparently
// substitutes for a real tool, reports the observed invocation and runs
// the real tool with an unchanged outcome.
package wrapper

import (
	"os"
)

// env gives access to the process-global state the stand-in needs. The
// protocol only talks to this interface, so it can run against a fake
// environment in tests.
type env interface {
	args() []string
	getenv(key string) string
	environ() []string
	getwd() string
	// Path of the running stand-in binary itself.
	executable() (string, error)
	pid() int
	run(cmd *command) error
}

type processEnv struct {
	wd string
}

var _ env = (*processEnv)(nil)

// newProcessEnv captures the state of the current process.
func newProcessEnv() (*processEnv, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, wrapErrorwithSourceLocf(err, "failed to read working directory")
	}
	return &processEnv{wd: wd}, nil
}

func (e *processEnv) args() []string {
	return os.Args
}

func (e *processEnv) getenv(key string) string {
	return os.Getenv(key)
}

func (e *processEnv) environ() []string {
	return os.Environ()
}

func (e *processEnv) getwd() string {
	return e.wd
}

func (e *processEnv) executable() (string, error) {
	return os.Executable()
}

func (e *processEnv) pid() int {
	return os.Getpid()
}

func (e *processEnv) run(cmd *command) error {
	execCmd := newExecCmd(e, cmd)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}
