// Package interpreters implements the classifiers that recognize compiler
// calls, and the builder that assembles them into one interpreter chain.
package interpreters

import (
	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
)

// Builder assembles the interpreter chain from the two configured path
// sets. The resulting interpreter is immutable and safe for concurrent use.
type Builder struct {
	compilersToRecognize []string
	compilersToExclude   []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// CompilersToRecognize adds executables that must be treated as compiler
// calls even when no built-in classifier knows them.
func (b *Builder) CompilersToRecognize(paths ...string) *Builder {
	b.compilersToRecognize = append(b.compilersToRecognize, paths...)
	return b
}

// CompilersToExclude adds executables that classify as ignored even when a
// built-in classifier would otherwise recognize them.
func (b *Builder) CompilersToExclude(paths ...string) *Builder {
	b.compilersToExclude = append(b.compilersToExclude, paths...)
	return b
}

// Build returns the interpreter chain. Priority order: the exclusion
// filter first, then the built-in family classifiers in a fixed order,
// then the explicit-inclusion matcher. The first classifier that returns
// a meaning or an error wins.
func (b *Builder) Build() semantic.Interpreter {
	return chain{
		newExcludeFilter(b.compilersToExclude),
		gccFamily{},
		newGenericCompiler(b.compilersToRecognize),
	}
}

// chain tries each interpreter in order and short-circuits on the first
// one that does not answer "unknown".
type chain []semantic.Interpreter

var _ semantic.Interpreter = (chain)(nil)

func (c chain) Recognize(execution *intercept.Execution) (semantic.Meaning, error) {
	for _, interpreter := range c {
		meaning, err := interpreter.Recognize(execution)
		if meaning != nil || err != nil {
			return meaning, err
		}
	}
	return nil, nil
}
