package wrapper

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
)

// startupError means the stand-in cannot tell what tool it stands in for.
// Fatal to the stand-in process.
type startupError struct {
	reason string
}

var _ error = startupError{}

func (err startupError) Error() string {
	return err.reason
}

func newStartupErrorf(format string, v ...interface{}) startupError {
	return startupError{reason: fmt.Sprintf(format, v...)}
}

// resolutionError means no real executable could be found for the invoked
// name. Fatal to the stand-in process.
type resolutionError struct {
	name       string
	searchPath string
}

var _ error = resolutionError{}

func (err resolutionError) Error() string {
	return fmt.Sprintf("cannot find the real executable for %q in %q", err.name, err.searchPath)
}

func wrapErrorwithSourceLocf(err error, format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, "%s: %s", fmt.Sprintf(format, v...), err.Error())
}

// Based on the implementation of log.Output
func newErrorwithSourceLocfInternal(skip int, format string, v ...interface{}) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "???"
		line = 0
	}
	if lastSlash := strings.LastIndex(file, "/"); lastSlash >= 0 {
		file = file[lastSlash+1:]
	}

	return fmt.Errorf("%s:%d: %s", file, line, fmt.Sprintf(format, v...))
}

// getExitCode extracts the wait status of a finished child. The code is
// negative when the child was terminated by a signal. ok is false when err
// does not carry a wait status at all, e.g. the spawn itself failed.
func getExitCode(err error) (exitCode int, ok bool) {
	if err == nil {
		return 0, true
	}
	if exiterr, ok := err.(*exec.ExitError); ok {
		if status, ok := exiterr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus(), true
		}
	}
	return 0, false
}
