package interpreters

import (
	"strings"

	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
)

// genericCompiler covers user-declared compiler wrappers with an unknown
// flag grammar. The whole invocation becomes a single compilation pass:
// the source is a best-effort guess (first non-flag argument) and every
// trailing argument is kept as a flag.
type genericCompiler struct {
	executables map[string]bool
}

var _ semantic.Interpreter = genericCompiler{}

func newGenericCompiler(paths []string) genericCompiler {
	compiler := genericCompiler{executables: make(map[string]bool, len(paths))}
	for _, path := range paths {
		compiler.executables[path] = true
	}
	return compiler
}

func (g genericCompiler) Recognize(execution *intercept.Execution) (semantic.Meaning, error) {
	if !g.executables[execution.Executable] {
		return nil, nil
	}
	arguments := execution.Arguments[1:]
	source := ""
	for _, arg := range arguments {
		if !strings.HasPrefix(arg, "-") {
			source = arg
			break
		}
	}
	return semantic.CompilerCall{
		Compiler:   execution.Executable,
		WorkingDir: execution.WorkingDir,
		Passes: []semantic.CompilerPass{
			semantic.Compile{Source: source, Flags: arguments},
		},
	}, nil
}
