package wrapper

import "os/exec"

// command describes the real tool invocation: the resolved path and the
// arguments that followed the stand-in's own name.
type command struct {
	path string
	args []string
}

func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.path, cmd.args...)
	execCmd.Env = env.environ()
	execCmd.Dir = env.getwd()
	return execCmd
}
