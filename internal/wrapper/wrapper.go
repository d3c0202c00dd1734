package wrapper

import (
	"github.com/charmbracelet/log"

	"ccdb/internal/intercept"
)

// Run executes the stand-in protocol and returns the exit code for the
// enclosing process: resolve the real tool, report the observed
// invocation, run the real tool and relay its outcome.
func Run() int {
	env, err := newProcessEnv()
	if err != nil {
		log.Error("cannot capture the process environment", "error", err)
		return 1
	}
	return run(env)
}

func run(env env) int {
	name, err := invokedName(env.args())
	if err != nil {
		log.Error("cannot determine the invoked name", "error", err)
		return 1
	}
	log.Debug("executable as called", "name", name)

	realExecutable, err := resolveReal(env, name)
	if err != nil {
		log.Error("cannot resolve the real executable", "error", err)
		return 1
	}
	log.Debug("executable to call", "path", realExecutable)

	// Reporting is best-effort and fully contained: the real tool runs
	// whatever happened here.
	report(env, realExecutable)

	err = env.run(&command{path: realExecutable, args: env.args()[1:]})
	exitCode, ok := getExitCode(err)
	if !ok {
		log.Error("cannot run the real executable", "path", realExecutable, "error", err)
		return 1
	}
	if exitCode < 0 {
		// Terminated by a signal; no exit code is available.
		return 1
	}
	log.Debug("execution finished", "code", exitCode)
	return exitCode
}

// report sends the observed invocation to the collector. Every failure is
// logged and absorbed; a missed record is acceptable, a broken build is
// not.
func report(env env, realExecutable string) {
	address := env.getenv(intercept.DestinationKey)
	if address == "" {
		log.Debug("collector address not set, reporting skipped", "key", intercept.DestinationKey)
		return
	}
	reporter, err := intercept.NewTCPReporter(address)
	if err != nil {
		log.Error("cannot create the execution reporter", "error", err)
		return
	}
	event := &intercept.Event{
		Pid:       uint32(env.pid()),
		Execution: *newExecution(env, realExecutable),
	}
	if err := reporter.Report(event); err != nil {
		log.Error("execution reporting failed", "error", err)
		return
	}
	log.Debug("execution reported")
}

// newExecution snapshots the invocation. The argument vector keeps the
// invoked name at index 0; the resolved path is carried in Executable.
func newExecution(env env, realExecutable string) *intercept.Execution {
	return &intercept.Execution{
		Executable:  realExecutable,
		Arguments:   append([]string(nil), env.args()...),
		WorkingDir:  env.getwd(),
		Environment: intercept.EnvironMap(env.environ()),
	}
}
