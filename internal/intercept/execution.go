// Package intercept holds the data model and the transport for reporting
// intercepted process executions to a collector.
package intercept

// Execution describes one observed process invocation. It is built once at
// interception time and never mutated afterwards.
type Execution struct {
	// Resolved path of the real executable.
	Executable string `json:"executable"`
	// Full original argument vector. Index 0 is the program name as
	// invoked. Never empty.
	Arguments []string `json:"arguments"`
	// Working directory at interception time.
	WorkingDir string `json:"working_dir"`
	// Full snapshot of the process environment.
	Environment map[string]string `json:"environment"`
}

// Event is the wire payload sent to the collector, one per intercepted
// invocation.
type Event struct {
	Pid       uint32    `json:"pid"`
	Execution Execution `json:"execution"`
}

// Equal reports whether two executions describe the same invocation.
func (e *Execution) Equal(other *Execution) bool {
	if e.Executable != other.Executable || e.WorkingDir != other.WorkingDir {
		return false
	}
	if len(e.Arguments) != len(other.Arguments) {
		return false
	}
	for i, arg := range e.Arguments {
		if other.Arguments[i] != arg {
			return false
		}
	}
	if len(e.Environment) != len(other.Environment) {
		return false
	}
	for key, value := range e.Environment {
		otherValue, ok := other.Environment[key]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// EnvironMap converts environ-style "key=value" entries to a map. The first
// "=" separates key and value, so values may contain "=" or be empty.
// Entries without "=" are skipped.
func EnvironMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		for i := 0; i < len(entry); i++ {
			if entry[i] == '=' {
				env[entry[:i]] = entry[i+1:]
				break
			}
		}
	}
	return env
}
