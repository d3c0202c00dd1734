// Package semantic defines the meaning of an intercepted execution and the
// interpreter capability that recognizes it.
package semantic

import "ccdb/internal/intercept"

// Meaning is the recognized semantic of an executed command. It is either a
// CompilerCall or Ignored.
type Meaning interface {
	isMeaning()
}

// CompilerCall is an execution recognized as a compiler invocation,
// decomposed into its compilation passes.
type CompilerCall struct {
	Compiler   string
	WorkingDir string
	// One entry per compilation unit, in the order the sources appear in
	// the original argument list.
	Passes []CompilerPass
}

// Ignored is an execution we recognized but deliberately keep out of the
// compilation database, e.g. an explicitly excluded compiler.
type Ignored struct{}

func (CompilerCall) isMeaning() {}
func (Ignored) isMeaning()      {}

// CompilerPass is one unit of compiler work extracted from an invocation.
type CompilerPass interface {
	isPass()
}

// Preprocess marks an invocation that only runs the preprocessor. It
// contributes nothing to the compilation database.
type Preprocess struct{}

// Compile is a single source-to-output compilation step.
type Compile struct {
	Source string
	// Empty when the invocation does not name an output.
	Output string
	// Pass-relevant flags, in original order.
	Flags []string
}

func (Preprocess) isPass() {}
func (Compile) isPass()    {}

// Interpreter attempts to classify one execution.
//
// The three outcomes are: (meaning, nil) when the execution is recognized,
// (nil, err) when it is recognized but cannot be decomposed, and (nil, nil)
// when the interpreter does not know this kind of execution. Interpreters
// hold no mutable state; Recognize is safe for concurrent use.
type Interpreter interface {
	Recognize(execution *intercept.Execution) (Meaning, error)
}
