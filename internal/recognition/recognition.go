// Package recognition applies the interpreter chain to reported executions
// and absorbs every outcome that is not a usable compiler call.
package recognition

import (
	"github.com/charmbracelet/log"

	"ccdb/internal/config"
	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
	"ccdb/internal/semantic/interpreters"
)

// Recognizer owns one interpreter chain for the lifetime of a build run.
// Apply is safe for concurrent use.
type Recognizer struct {
	interpreter semantic.Interpreter
}

// New builds a recognizer from the configured inclusion and exclusion
// lists.
func New(cfg *config.Config) *Recognizer {
	interpreter := interpreters.NewBuilder().
		CompilersToRecognize(cfg.CompilersToRecognize()...).
		CompilersToExclude(cfg.CompilersToExclude()...).
		Build()
	return &Recognizer{interpreter: interpreter}
}

// Apply classifies one execution and returns its meaning, or nil when the
// execution contributes nothing to the compilation database. Recognition
// failures are logged and absorbed; they are never escalated.
func (r *Recognizer) Apply(execution *intercept.Execution) semantic.Meaning {
	meaning, err := r.interpreter.Recognize(execution)
	switch {
	case err != nil:
		log.Debug("execution recognized with failure", "reason", err, "arguments", execution.Arguments)
		return nil
	case meaning == nil:
		log.Debug("execution not recognized", "arguments", execution.Arguments)
		return nil
	default:
		if _, ignored := meaning.(semantic.Ignored); ignored {
			log.Debug("execution recognized, but ignored", "executable", execution.Executable)
			return nil
		}
		log.Debug("execution recognized as compiler call", "executable", execution.Executable)
		return meaning
	}
}
