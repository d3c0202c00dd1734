package wrapper

import (
	"errors"
	"os/exec"
	"testing"
)

func TestGetExitCodeOfNilError(t *testing.T) {
	exitCode, ok := getExitCode(nil)
	if !ok || exitCode != 0 {
		t.Errorf("expected (0, true). Got: (%d, %v)", exitCode, ok)
	}
}

func TestGetExitCodeOfFailedCommand(t *testing.T) {
	err := exec.Command("/bin/sh", "-c", "exit 4").Run()
	exitCode, ok := getExitCode(err)
	if !ok || exitCode != 4 {
		t.Errorf("expected (4, true). Got: (%d, %v)", exitCode, ok)
	}
}

func TestGetExitCodeOfUnrelatedError(t *testing.T) {
	if _, ok := getExitCode(errors.New("spawn failed")); ok {
		t.Errorf("expected no exit code for an unrelated error")
	}
}

func TestStartupErrorMessage(t *testing.T) {
	err := newStartupErrorf("a%sc", "b")
	if err.Error() != "abc" {
		t.Errorf("Error message incorrect. Got: %s", err.Error())
	}
}
