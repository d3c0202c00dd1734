package interpreters

import (
	"ccdb/internal/intercept"
	"ccdb/internal/semantic"
)

// excludeFilter classifies explicitly excluded executables as ignored.
// It runs first in the chain, so the exclusion wins over every built-in
// classifier.
type excludeFilter struct {
	paths map[string]bool
}

var _ semantic.Interpreter = excludeFilter{}

func newExcludeFilter(paths []string) excludeFilter {
	filter := excludeFilter{paths: make(map[string]bool, len(paths))}
	for _, path := range paths {
		filter.paths[path] = true
	}
	return filter
}

func (f excludeFilter) Recognize(execution *intercept.Execution) (semantic.Meaning, error) {
	if f.paths[execution.Executable] {
		return semantic.Ignored{}, nil
	}
	return nil, nil
}
